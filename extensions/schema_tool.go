// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package extensions

import (
	"context"
	"fmt"

	"github.com/xcherryio/sparkifydb/config"
)

// CreateDatabase creates the database from an admin session, without dropping it first
func CreateDatabase(cfg config.SQL, name string) error {
	adminSession, err := NewSQLAdminSession(&cfg)
	if err != nil {
		return err
	}
	defer adminSession.Close()
	return adminSession.CreateDatabase(context.Background(), name, cfg.CreateDatabaseOptions())
}

// DropDatabase drops the database if it exists.
// In Postgres, all connections to the database must be closed before dropping it
func DropDatabase(cfg config.SQL, name string) error {
	adminSession, err := NewSQLAdminSession(&cfg)
	if err != nil {
		return err
	}
	defer adminSession.Close()
	return adminSession.DropDatabase(context.Background(), name)
}

// ValidateConnectConfig validates params against the extension
func ValidateConnectConfig(cfg *config.SQL) error {
	ext, err := GetSQLDBExtension(cfg.DBExtensionName)
	if err != nil {
		return err
	}
	if cfg.DatabaseName == "" {
		return fmt.Errorf("missing %v argument", flag(CLIFlagDatabase))
	}
	return ext.ValidateConfig(cfg)
}

func flag(opt string) string {
	return "(--" + opt + ")"
}
