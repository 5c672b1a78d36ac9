// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/xcherryio/sparkifydb/extensions"
)

type dbTx struct {
	tx *sqlx.Tx
}

var _ extensions.SQLTransaction = (*dbTx)(nil)

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
