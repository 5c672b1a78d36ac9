// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
)

// NOTE identifiers cannot be bind parameters, they are quoted with pq.QuoteIdentifier instead
const createDatabaseQuery = "CREATE DATABASE %v WITH ENCODING %v TEMPLATE %v"

const dropDatabaseQuery = "DROP DATABASE IF EXISTS %v"

type adminDBSession struct {
	db *sqlx.DB
}

var _ extensions.SQLAdminDBSession = (*adminDBSession)(nil)

func newAdminDBSession(db *sqlx.DB) *adminDBSession {
	return &adminDBSession{
		db: db,
	}
}

func (a adminDBSession) DropDatabase(ctx context.Context, database string) error {
	_, err := a.db.ExecContext(ctx, buildDropDatabaseQuery(database))
	return err
}

func (a adminDBSession) CreateDatabase(ctx context.Context, database string, opts config.CreateDatabaseOptions) error {
	_, err := a.db.ExecContext(ctx, buildCreateDatabaseQuery(database, opts))
	return err
}

func (a adminDBSession) Close() error {
	return a.db.Close()
}

func buildCreateDatabaseQuery(database string, opts config.CreateDatabaseOptions) string {
	return fmt.Sprintf(createDatabaseQuery,
		pq.QuoteIdentifier(database), pq.QuoteLiteral(opts.Encoding), pq.QuoteIdentifier(opts.Template))
}

func buildDropDatabaseQuery(database string) string {
	return fmt.Sprintf(dropDatabaseQuery, pq.QuoteIdentifier(database))
}
