// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/xcherryio/sparkifydb/extensions"
)

const selectTableNamesQuery = `SELECT table_name FROM information_schema.tables
WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
ORDER BY table_name`

type dbSession struct {
	db *sqlx.DB
}

var _ extensions.SQLDBSession = (*dbSession)(nil)

func newDBSession(db *sqlx.DB) *dbSession {
	return &dbSession{
		db: db,
	}
}

type tableRow struct {
	TableName string
}

func (d dbSession) StartTransaction(ctx context.Context) (extensions.SQLTransaction, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return dbTx{
		tx: tx,
	}, nil
}

func (d dbSession) ExecuteSchemaDDL(ctx context.Context, ddlQuery string) error {
	_, err := d.db.ExecContext(ctx, ddlQuery)
	return err
}

func (d dbSession) SelectTableNames(ctx context.Context) ([]string, error) {
	var rows []tableRow
	if err := d.db.SelectContext(ctx, &rows, selectTableNamesQuery); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.TableName)
	}
	return names, nil
}

func (d dbSession) Close() error {
	return d.db.Close()
}
