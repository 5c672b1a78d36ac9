// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package extensions

import (
	"fmt"
	"sort"

	"github.com/xcherryio/sparkifydb/config"
)

var sqlRegistry = map[string]SQLDBExtension{}

// RegisterSQLDBExtension will register a SQL extension
func RegisterSQLDBExtension(name string, ext SQLDBExtension) {
	if _, ok := sqlRegistry[name]; ok {
		panic("SQL extension " + name + " already registered")
	}
	sqlRegistry[name] = ext
}

// GetSQLDBExtension returns the registered extension by name
func GetSQLDBExtension(name string) (SQLDBExtension, error) {
	ext, ok := sqlRegistry[name]
	if !ok {
		return nil, fmt.Errorf("not supported SQLDBExtensionName %v, only supported: %v", name, RegisteredSQLDBExtensions())
	}
	return ext, nil
}

// GetErrorChecker returns the error checker of the registered extension
func GetErrorChecker(name string) (ErrorChecker, error) {
	return GetSQLDBExtension(name)
}

// RegisteredSQLDBExtensions returns the names of all registered extensions
func RegisteredSQLDBExtensions() []string {
	names := make([]string, 0, len(sqlRegistry))
	for name := range sqlRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSQLSession returns a regular session
func NewSQLSession(cfg *config.SQL) (SQLDBSession, error) {
	ext, err := GetSQLDBExtension(cfg.DBExtensionName)
	if err != nil {
		return nil, err
	}
	return ext.StartDBSession(cfg)
}

// NewSQLAdminSession returns an admin session
func NewSQLAdminSession(cfg *config.SQL) (SQLAdminDBSession, error) {
	ext, err := GetSQLDBExtension(cfg.DBExtensionName)
	if err != nil {
		return nil, err
	}
	return ext.StartAdminDBSession(cfg)
}
