// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"context"
	"errors"
	"strings"

	"modernc.org/sqlite"
)

// sqlite reports schema errors as the generic SQLITE_ERROR,
// the message is the only way to tell them apart
const (
	msgAlreadyExists = "already exists"
	msgNoSuchTable   = "no such table"
	msgForeignKey    = "FOREIGN KEY constraint failed"
	msgLocked        = "database is locked"
	msgBusy          = "SQLITE_BUSY"
)

type errorChecker struct{}

func (errorChecker) IsDupDatabaseError(err error) bool {
	return errors.Is(err, errDatabaseExists)
}

func (errorChecker) IsDupTableError(err error) bool {
	return hasMessage(err, msgAlreadyExists)
}

func (errorChecker) IsUndefinedTableError(err error) bool {
	return hasMessage(err, msgNoSuchTable)
}

func (errorChecker) IsForeignKeyError(err error) bool {
	return hasMessage(err, msgForeignKey)
}

func (errorChecker) IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// busy_timeout already waits on a locked database, so a lock error that still
// comes back means another writer holds the file
func (errorChecker) IsThrottlingError(err error) bool {
	return hasMessage(err, msgLocked) || hasMessage(err, msgBusy)
}

func hasMessage(err error, msg string) bool {
	var sqlErr *sqlite.Error
	return errors.As(err, &sqlErr) && strings.Contains(sqlErr.Error(), msg)
}
