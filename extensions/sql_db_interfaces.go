// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package extensions

import (
	"context"

	"github.com/xcherryio/sparkifydb/config"
)

type SQLDBExtension interface {
	// StartDBSession starts the session on cfg.DatabaseName for table level DDL
	StartDBSession(cfg *config.SQL) (SQLDBSession, error)
	// StartAdminDBSession starts the session on the admin database for database level DDL.
	// The session runs in autocommit mode because CREATE DATABASE cannot run inside a transaction
	StartAdminDBSession(cfg *config.SQL) (SQLAdminDBSession, error)
	// ValidateConfig checks the connection config is usable by this extension
	ValidateConfig(cfg *config.SQL) error
	ErrorChecker
}

type SQLDBSession interface {
	// StartTransaction starts a transaction, the caller must Commit or Rollback it
	StartTransaction(ctx context.Context) (SQLTransaction, error)
	// ExecuteSchemaDDL executes the DDL in autocommit mode, outside of any transaction.
	// The initializer never calls it, it runs every statement through StartTransaction.
	// It's for tests and tooling that seed a database directly
	ExecuteSchemaDDL(ctx context.Context, ddlQuery string) error
	// SelectTableNames returns the names of the user tables, sorted
	SelectTableNames(ctx context.Context) ([]string, error)
	Close() error
}

type SQLTransaction interface {
	ExecuteDDL(ctx context.Context, ddlQuery string) error
	Commit() error
	Rollback() error
}

type SQLAdminDBSession interface {
	CreateDatabase(ctx context.Context, database string, opts config.CreateDatabaseOptions) error
	// DropDatabase drops the database if it exists
	DropDatabase(ctx context.Context, database string) error
	Close() error
}

type ErrorChecker interface {
	IsDupDatabaseError(err error) bool
	IsDupTableError(err error) bool
	IsUndefinedTableError(err error) bool
	// IsForeignKeyError reports a reference to a table or row that doesn't exist yet
	IsForeignKeyError(err error) bool
	IsTimeoutError(err error) bool
	IsThrottlingError(err error) bool
}
