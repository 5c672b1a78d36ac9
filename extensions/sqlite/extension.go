// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jmoiron/sqlx"
	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
	_ "modernc.org/sqlite" // load the SQL driver for sqlite
)

const ExtensionName = "sqlite"

const (
	fileSuffix = ".db"
	// foreign keys are off by default in sqlite and the pragma is per connection
	dsnParams = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
)

type extension struct {
	errorChecker
}

var _ extensions.SQLDBExtension = (*extension)(nil)

func init() {
	extensions.RegisterSQLDBExtension(ExtensionName, &extension{})
}

func (d *extension) StartDBSession(cfg *config.SQL) (extensions.SQLDBSession, error) {
	path := databasePath(cfg.ConnectAddr, cfg.DatabaseName)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database %v does not exist: %w", cfg.DatabaseName, err)
	}
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	return newDBSession(db), nil
}

// StartAdminDBSession doesn't connect to anything, a database is a file in the data directory
func (d *extension) StartAdminDBSession(cfg *config.SQL) (extensions.SQLAdminDBSession, error) {
	info, err := os.Stat(cfg.ConnectAddr)
	if err != nil {
		return nil, fmt.Errorf("invalid data directory %v: %w", cfg.ConnectAddr, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid data directory %v: not a directory", cfg.ConnectAddr)
	}
	return newAdminDBSession(cfg.ConnectAddr), nil
}

func (d *extension) ValidateConfig(cfg *config.SQL) error {
	if cfg.ConnectAddr == "" {
		return fmt.Errorf("missing data directory argument (--%v)", extensions.CLIFlagDataDir)
	}
	if strings.ContainsAny(cfg.DatabaseName, `/\`) || cfg.DatabaseName == "." || cfg.DatabaseName == ".." {
		return fmt.Errorf("invalid database name %v, it must be a plain file name", cfg.DatabaseName)
	}
	if _, err := sqliteEncoding(cfg.Encoding); err != nil {
		return fmt.Errorf("invalid (--%v): %w", extensions.CLIFlagEncoding, err)
	}
	return nil
}

func openDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(ExtensionName, path+dsnParams)
	if err != nil {
		return nil, err
	}
	// a single writer avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)
	// Maps struct names in CamelCase to snake without need for db struct tags.
	db.MapperFunc(strcase.ToSnake)
	return db, nil
}

func databasePath(dataDir, database string) string {
	return filepath.Join(dataDir, database+fileSuffix)
}
