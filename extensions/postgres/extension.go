// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"fmt"
	"net"
	"net/url"

	"github.com/iancoleman/strcase"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // load the SQL driver for postgres
	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
)

const ExtensionName = "postgres"

const (
	dsnFmt = "postgres://%s@%s:%s/%s"
	// defaultAdminDatabaseName is used when the admin database is not configured,
	// postgres doesn't allow to connect without a database
	defaultAdminDatabaseName = "postgres"
)

type extension struct {
	errorChecker
}

var _ extensions.SQLDBExtension = (*extension)(nil)

func init() {
	extensions.RegisterSQLDBExtension(ExtensionName, &extension{})
}

func (d *extension) StartDBSession(cfg *config.SQL) (extensions.SQLDBSession, error) {
	db, err := d.createSingleDBConn(cfg, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}
	return newDBSession(db), nil
}

func (d *extension) StartAdminDBSession(cfg *config.SQL) (extensions.SQLAdminDBSession, error) {
	db, err := d.createSingleDBConn(cfg, adminDatabaseName(cfg))
	if err != nil {
		return nil, err
	}
	// autocommit DDL on exactly one connection
	db.SetMaxOpenConns(1)
	return newAdminDBSession(db), nil
}

func (d *extension) ValidateConfig(cfg *config.SQL) error {
	host, _, err := net.SplitHostPort(cfg.ConnectAddr)
	if err != nil {
		return fmt.Errorf("invalid host and port %v: %w", cfg.ConnectAddr, err)
	}
	if len(host) == 0 {
		return fmt.Errorf("missing sql endpoint argument (--%v)", extensions.CLIFlagEndpoint)
	}
	if cfg.User == "" {
		return fmt.Errorf("missing (--%v) argument", extensions.CLIFlagUser)
	}
	if cfg.DatabaseName == adminDatabaseName(cfg) {
		return fmt.Errorf("database %v cannot be both the admin and the target database", cfg.DatabaseName)
	}
	return nil
}

// createSingleDBConn creates a returns a reference to a logical connection to the
// underlying SQL database. The returned object is tied to a single
// SQL database
func (d *extension) createSingleDBConn(cfg *config.SQL, dbName string) (*sqlx.DB, error) {
	host, port, err := net.SplitHostPort(cfg.ConnectAddr)
	if err != nil {
		return nil, fmt.Errorf("invalid connect address, it must be in host:port format, %v, err: %v", cfg.ConnectAddr, err)
	}

	sslParams := url.Values{}
	sslParams.Set("sslmode", "disable")
	db, err := sqlx.Connect(ExtensionName, buildDSN(cfg.User, cfg.Password, host, port, dbName, sslParams))
	if err != nil {
		return nil, err
	}

	// Maps struct names in CamelCase to snake without need for db struct tags.
	db.MapperFunc(strcase.ToSnake)
	return db, nil
}

func adminDatabaseName(cfg *config.SQL) string {
	if cfg.AdminDatabaseName == "" {
		return defaultAdminDatabaseName
	}
	return cfg.AdminDatabaseName
}

func buildDSN(user, password, host, port, dbName string, params url.Values) string {
	credentialString := generateCredentialString(user, password)
	dsn := fmt.Sprintf(dsnFmt, credentialString, host, port, url.PathEscape(dbName))
	if attrs := params.Encode(); attrs != "" {
		dsn += "?" + attrs
	}
	return dsn
}

func generateCredentialString(user string, password string) string {
	userPass := url.PathEscape(user)
	if password != "" {
		userPass += ":" + url.PathEscape(password)
	}
	return userPass
}
