// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/xcherryio/sparkifydb/extensions"
)

const selectTableNamesQuery = `SELECT name AS table_name FROM sqlite_master
WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
ORDER BY name`

type dbSession struct {
	db *sqlx.DB
}

type dbTx struct {
	tx *sqlx.Tx
}

var _ extensions.SQLDBSession = (*dbSession)(nil)
var _ extensions.SQLTransaction = (*dbTx)(nil)

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

func (d dbTx) ExecuteDDL(ctx context.Context, ddlQuery string) error {
	_, err := d.tx.ExecContext(ctx, ddlQuery)
	return err
}

func (d dbTx) Commit() error {
	return d.tx.Commit()
}

func (d dbTx) Rollback() error {
	return d.tx.Rollback()
}
