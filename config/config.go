// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		// Log is the logging config
		Log Logger `yaml:"log"`

		// Database is the database to be (re)initialized
		Database DatabaseConfig `yaml:"database"`

		// Schema is where the table statements come from
		Schema SchemaConfig `yaml:"schema"`
	}

	DatabaseConfig struct {
		// SQL is the SQL database config
		// Only SQL is supported for now.
		SQL *SQL `yaml:"sql"`
	}

	SchemaConfig struct {
		// File is the path of a YAML statement file with "drop" and "create" lists.
		// If empty, the built-in sparkify statements are used
		File string `yaml:"file"`
	}
)

// NewConfig returns a new decoded Config struct
func NewConfig(configPath string) (*Config, error) {
	log.Printf("Loading configFile=%v\n", configPath)

	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)

	if err := d.Decode(&config); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) ValidateAndSetDefaults() error {
	if c.Database.SQL == nil {
		return fmt.Errorf("sql config is required")
	}
	sql := c.Database.SQL
	if anyAbsent(sql.DatabaseName, sql.DBExtensionName, sql.ConnectAddr) {
		return fmt.Errorf("some required configs are missing: sql.DatabaseName, sql.DBExtensionName, sql.ConnectAddr")
	}
	if sql.DatabaseName == sql.AdminDatabaseName {
		return fmt.Errorf("sql.DatabaseName cannot be the same as sql.AdminDatabaseName: %v", sql.DatabaseName)
	}
	if sql.Encoding == "" {
		sql.Encoding = DefaultEncoding
	}
	if sql.Template == "" {
		sql.Template = DefaultTemplate
	}
	return nil
}

func anyAbsent(strs ...string) bool {
	for _, s := range strs {
		if s == "" {
			return true
		}
	}
	return false
}

// String converts the config object into a string, with the password masked
func (c *Config) String() string {
	masked := *c
	if c.Database.SQL != nil {
		sql := *c.Database.SQL
		if sql.Password != "" {
			sql.Password = "******"
		}
		masked.Database.SQL = &sql
	}
	out, err := json.MarshalIndent(masked, "", "    ")
	if err != nil {
		panic(err)
	}
	return string(out)
}
