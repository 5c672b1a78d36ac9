// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package initializer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/xcherryio/sparkifydb/common/log"
	"github.com/xcherryio/sparkifydb/common/log/tag"
	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
	"github.com/xcherryio/sparkifydb/schema"
)

// Initializer drops and recreates a database, then drops and recreates its tables
// from the given statements. It is meant to be the only writer during a run.
type Initializer struct {
	cfg    config.SQL
	stmts  schema.Statements
	logger log.Logger
	out    io.Writer
	phase  Phase
}

type Option func(*Initializer)

// WithOutput sets where every statement is printed before it's executed, os.Stdout by default
func WithOutput(w io.Writer) Option {
	return func(i *Initializer) {
		i.out = w
	}
}

func New(cfg config.SQL, stmts schema.Statements, logger log.Logger, opts ...Option) *Initializer {
	logger = logger.WithTags(
		tag.RunID(uuid.NewString()),
		tag.Extension(cfg.DBExtensionName),
		tag.Database(cfg.DatabaseName))
	i := &Initializer{
		cfg:    cfg,
		stmts:  stmts,
		logger: logger,
		out:    os.Stdout,
		phase:  PhaseStart,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Phase returns the last completed step
func (i *Initializer) Phase() Phase {
	return i.phase
}

// Run creates the database, drops and creates the tables, and closes the session.
// The session to the new database is closed on every path, including failures.
func (i *Initializer) Run(ctx context.Context) (retErr error) {
	i.logger.Info("initializing database", tag.StatementCount(i.stmts.Len()))

	session, err := i.CreateDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			i.logger.Warn("failed to close database session", tag.Error(err))
			if retErr == nil {
				retErr = fmt.Errorf("error closing database session: %w", err)
			}
			return
		}
		if retErr == nil {
			i.setPhase(PhaseClosed)
		}
	}()

	if err := i.DropTables(ctx, session); err != nil {
		return err
	}
	return i.CreateTables(ctx, session)
}

// CreateDatabase drops the database if it exists and creates it again from an admin session,
// then returns a session to the new database. The caller must close the returned session.
func (i *Initializer) CreateDatabase(ctx context.Context) (extensions.SQLDBSession, error) {
	if err := extensions.ValidateConnectConfig(&i.cfg); err != nil {
		return nil, err
	}

	adminSession, err := extensions.NewSQLAdminSession(&i.cfg)
	if err != nil {
		return nil, fmt.Errorf("error connecting to admin database: %w", err)
	}
	err = i.recreateDatabase(ctx, adminSession)
	// the admin session is done either way, and Postgres can't drop a database
	// later while another session is still open on the server
	if closeErr := adminSession.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("error closing admin session: %w", closeErr)
	}
	if err != nil {
		return nil, err
	}

	session, err := i.Connect()
	if err != nil {
		return nil, err
	}
	i.setPhase(PhaseDatabaseCreated)
	return session, nil
}

func (i *Initializer) recreateDatabase(ctx context.Context, adminSession extensions.SQLAdminDBSession) error {
	name := i.cfg.DatabaseName
	i.logger.Info("dropping database", i.adminTags()...)
	if err := adminSession.DropDatabase(ctx, name); err != nil {
		i.logFailure("failed to drop database", err)
		return fmt.Errorf("error dropping database %v: %w", name, err)
	}

	opts := i.cfg.CreateDatabaseOptions()
	i.logger.Info("creating database", tag.Value(opts))
	if err := adminSession.CreateDatabase(ctx, name, opts); err != nil {
		i.logFailure("failed to create database", err)
		return fmt.Errorf("error creating database %v: %w", name, err)
	}
	return nil
}

// DropDatabase drops the database if it exists
func (i *Initializer) DropDatabase(ctx context.Context) error {
	if err := extensions.ValidateConnectConfig(&i.cfg); err != nil {
		return err
	}
	adminSession, err := extensions.NewSQLAdminSession(&i.cfg)
	if err != nil {
		return fmt.Errorf("error connecting to admin database: %w", err)
	}
	defer adminSession.Close()

	i.logger.Info("dropping database", i.adminTags()...)
	if err := adminSession.DropDatabase(ctx, i.cfg.DatabaseName); err != nil {
		i.logFailure("failed to drop database", err)
		return fmt.Errorf("error dropping database %v: %w", i.cfg.DatabaseName, err)
	}
	return nil
}

func (i *Initializer) adminTags() []tag.Tag {
	return []tag.Tag{tag.AdminDatabase(i.cfg.AdminDatabaseName), tag.ConnectAddr(i.cfg.ConnectAddr)}
}

// Connect opens a session to the existing database
func (i *Initializer) Connect() (extensions.SQLDBSession, error) {
	if err := extensions.ValidateConnectConfig(&i.cfg); err != nil {
		return nil, err
	}
	session, err := extensions.NewSQLSession(&i.cfg)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database %v: %w", i.cfg.DatabaseName, err)
	}
	return session, nil
}

// DropTables executes the drop statements in order, each one in its own transaction
func (i *Initializer) DropTables(ctx context.Context, session extensions.SQLDBSession) error {
	if err := i.executeAll(ctx, session, "drop", i.stmts.Drop); err != nil {
		return err
	}
	i.setPhase(PhaseTablesDropped)
	return nil
}

// CreateTables executes the create statements in order, each one in its own transaction.
// It stops at the first failure, the statements after it are not executed.
func (i *Initializer) CreateTables(ctx context.Context, session extensions.SQLDBSession) error {
	if err := i.executeAll(ctx, session, "create", i.stmts.Create); err != nil {
		return err
	}
	i.setPhase(PhaseTablesCreated)
	return nil
}

// ListTables returns the tables of the database, sorted by name
func (i *Initializer) ListTables(ctx context.Context, session extensions.SQLDBSession) ([]string, error) {
	names, err := session.SelectTableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tables: %w", err)
	}
	return names, nil
}

func (i *Initializer) executeAll(ctx context.Context, session extensions.SQLDBSession, kind string, stmts []string) error {
	logger := i.logger.WithTags(tag.Value(kind))
	logger.Info("executing statements", tag.StatementCount(len(stmts)))
	for idx, stmt := range stmts {
		if _, err := fmt.Fprintln(i.out, stmt); err != nil {
			return fmt.Errorf("error printing statement: %w", err)
		}
		logger.Debug("executing statement", tag.StatementIndex(idx), tag.Statement(stmt))
		if err := executeInTransaction(ctx, session, stmt); err != nil {
			i.logFailure("failed to execute statement", err, tag.Value(kind), tag.StatementIndex(idx), tag.Statement(stmt))
			return fmt.Errorf("error executing %v statement %d: %w", kind, idx, err)
		}
	}
	return nil
}

// executeInTransaction commits every statement on its own, one statement per transaction
func executeInTransaction(ctx context.Context, session extensions.SQLDBSession, stmt string) error {
	txn, err := session.StartTransaction(ctx)
	if err != nil {
		return err
	}
	if err := txn.ExecuteDDL(ctx, stmt); err != nil {
		_ = txn.Rollback()
		return err
	}
	return txn.Commit()
}

func (i *Initializer) setPhase(p Phase) {
	i.phase = p
	i.logger.Debug("phase completed", tag.Phase(p))
}

// logFailure logs the error with a hint of what went wrong when the extension can tell
func (i *Initializer) logFailure(msg string, err error, tags ...tag.Tag) {
	tags = append(tags, tag.Error(err))
	checker, checkerErr := extensions.GetErrorChecker(i.cfg.DBExtensionName)
	if checkerErr != nil {
		i.logger.Error(msg, tags...)
		return
	}
	switch {
	case checker.IsDupTableError(err):
		tags = append(tags, tag.Message("table already exists"))
	case checker.IsUndefinedTableError(err), checker.IsForeignKeyError(err):
		tags = append(tags, tag.Message("referenced table does not exist, check the statement order"))
	case checker.IsDupDatabaseError(err):
		tags = append(tags, tag.Message("database already exists"))
	case checker.IsTimeoutError(err):
		tags = append(tags, tag.Message("timed out"))
	case checker.IsThrottlingError(err):
		tags = append(tags, tag.Message("server is out of resources"))
	}
	i.logger.Error(msg, tags...)
}
