// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"
)

// check http://www.postgresql.org/docs/current/static/errcodes-appendix.html
const (
	ErrDupTable             = "42P07"
	ErrDupDatabase          = "42P04"
	ErrUndefinedTable       = "42P01"
	ErrForeignKeyViolation  = "23503"
	ErrInvalidForeignKey    = "42830"
	ErrQueryCanceled        = "57014"
	ErrInsufficientResource = "53000"
	ErrTooManyConnections   = "53300"
)

type errorChecker struct{}

func (errorChecker) IsDupDatabaseError(err error) bool {
	return hasCode(err, ErrDupDatabase)
}

func (errorChecker) IsDupTableError(err error) bool {
	return hasCode(err, ErrDupTable)
}

func (errorChecker) IsUndefinedTableError(err error) bool {
	return hasCode(err, ErrUndefinedTable)
}

func (errorChecker) IsForeignKeyError(err error) bool {
	return hasCode(err, ErrForeignKeyViolation) || hasCode(err, ErrInvalidForeignKey)
}

func (errorChecker) IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || hasCode(err, ErrQueryCanceled)
}

func (errorChecker) IsThrottlingError(err error) bool {
	return hasCode(err, ErrInsufficientResource) || hasCode(err, ErrTooManyConnections)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var sqlErr *pq.Error
	return errors.As(err, &sqlErr) && sqlErr.Code == code
}
