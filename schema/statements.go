// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Statements are the ordered DDL lists to run against the target database.
// They are opaque to the initializer: nothing is validated or reordered.
type Statements struct {
	// Drop is executed first. Every statement should tolerate a missing table
	Drop []string `yaml:"drop"`
	// Create is executed after Drop, in order. A table referenced by a foreign key
	// must be created before the table referencing it
	Create []string `yaml:"create"`
}

// LoadStatements reads the statements from a YAML file like
//
//	drop:
//	  - DROP TABLE IF EXISTS users
//	create:
//	  - CREATE TABLE users (user_id INT PRIMARY KEY)
func LoadStatements(path string) (Statements, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Statements{}, fmt.Errorf("error reading contents of file %v: %w", path, err)
	}
	var stmts Statements
	if err := yaml.Unmarshal(content, &stmts); err != nil {
		return Statements{}, fmt.Errorf("error decoding statement file %v: %w", path, err)
	}
	return stmts, nil
}

var createTableRegexp = regexp.MustCompile(`(?is)^\s*CREATE\s+(?:TEMP\s+|TEMPORARY\s+|UNLOGGED\s+)?TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?("?[\w.]+"?)`)

// TableName returns the table created by a CREATE TABLE statement.
// ok is false for any other statement.
func TableName(createStmt string) (name string, ok bool) {
	m := createTableRegexp.FindStringSubmatch(createStmt)
	if m == nil {
		return "", false
	}
	name = strings.Trim(m[1], `"`)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name), true
}

// CreatedTables returns the tables created by the Create list, in order
func (s Statements) CreatedTables() []string {
	var tables []string
	for _, stmt := range s.Create {
		if name, ok := TableName(stmt); ok {
			tables = append(tables, name)
		}
	}
	return tables
}

// Len is the total number of statements
func (s Statements) Len() int {
	return len(s.Drop) + len(s.Create)
}
