// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package initializer

import (
	"context"
	"errors"
	"fmt"

	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
)

const fakeExtensionName = "fake"

var errFakeDupTable = errors.New("fake: relation already exists")

// fake records what the initializer does, in order
var fake = &fakeStore{}

func init() {
	extensions.RegisterSQLDBExtension(fakeExtensionName, fakeExtension{})
}

type fakeStore struct {
	events []string
	// failOn fails the statement with the error
	failOn map[string]error
	// failCreateDatabase fails CREATE DATABASE with the error
	failCreateDatabase error
}

func (f *fakeStore) reset() {
	*f = fakeStore{failOn: map[string]error{}}
}

func (f *fakeStore) record(format string, args ...interface{}) {
	f.events = append(f.events, fmt.Sprintf(format, args...))
}

type fakeExtension struct{}

func (fakeExtension) StartDBSession(cfg *config.SQL) (extensions.SQLDBSession, error) {
	fake.record("session-open %v", cfg.DatabaseName)
	return fakeSession{}, nil
}

func (fakeExtension) StartAdminDBSession(cfg *config.SQL) (extensions.SQLAdminDBSession, error) {
	fake.record("admin-open")
	return fakeAdminSession{}, nil
}

func (fakeExtension) ValidateConfig(cfg *config.SQL) error {
	return nil
}

func (fakeExtension) IsDupDatabaseError(err error) bool {
	return false
}

func (fakeExtension) IsDupTableError(err error) bool {
	return errors.Is(err, errFakeDupTable)
}

func (fakeExtension) IsUndefinedTableError(err error) bool {
	return false
}

func (fakeExtension) IsForeignKeyError(err error) bool {
	return false
}

func (fakeExtension) IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func (fakeExtension) IsThrottlingError(err error) bool {
	return false
}

type fakeAdminSession struct{}

func (fakeAdminSession) CreateDatabase(ctx context.Context, database string, opts config.CreateDatabaseOptions) error {
	fake.record("create-database %v %v %v", database, opts.Encoding, opts.Template)
	return fake.failCreateDatabase
}

func (fakeAdminSession) DropDatabase(ctx context.Context, database string) error {
	fake.record("drop-database %v", database)
	return nil
}

func (fakeAdminSession) Close() error {
	fake.record("admin-close")
	return nil
}

type fakeSession struct{}

func (fakeSession) StartTransaction(ctx context.Context) (extensions.SQLTransaction, error) {
	return fakeTx{}, nil
}

func (fakeSession) ExecuteSchemaDDL(ctx context.Context, ddlQuery string) error {
	fake.record("exec-autocommit %v", ddlQuery)
	return fake.failOn[ddlQuery]
}

func (fakeSession) SelectTableNames(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (fakeSession) Close() error {
	fake.record("session-close")
	return nil
}

type fakeTx struct{}

func (fakeTx) ExecuteDDL(ctx context.Context, ddlQuery string) error {
	fake.record("exec %v", ddlQuery)
	return fake.failOn[ddlQuery]
}

func (fakeTx) Commit() error {
	fake.record("commit")
	return nil
}

func (fakeTx) Rollback() error {
	fake.record("rollback")
	return nil
}
