// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package config

type (
	// SQL is the configuration for connecting to a SQL backed datastore
	SQL struct {
		// User is the username to be used for connecting to database
		User string `yaml:"user"`
		// Password is the password corresponding to the username
		Password string `yaml:"password"`
		// DatabaseName is the name of SQL database to connect to
		DatabaseName string `yaml:"databaseName"`
		// AdminDatabaseName is the database used for database level DDL like CREATE DATABASE.
		// It's up to the extension to pick a default when empty, e.g. Postgres uses "postgres"
		AdminDatabaseName string `yaml:"adminDatabaseName"`
		// ConnectAddr is the remote addr of the database in host:port format.
		// For the sqlite extension it is the directory that holds the database files
		ConnectAddr string `yaml:"connectAddr"`
		// DBExtensionName is the name of the extension
		DBExtensionName string `yaml:"dbExtensionName"`
		// Encoding is the character encoding of a newly created database
		Encoding string `yaml:"encoding"`
		// Template is the template database a new database is copied from.
		// Only meaningful for Postgres
		Template string `yaml:"template"`
	}
)

const (
	DefaultEncoding = "utf8"
	// DefaultTemplate is the blank template so that the new database
	// doesn't inherit anything added to template1
	DefaultTemplate = "template0"
)

// CreateDatabaseOptions returns the options to create the database with,
// filling in the defaults for empty fields
func (s SQL) CreateDatabaseOptions() CreateDatabaseOptions {
	opts := CreateDatabaseOptions{
		Encoding: s.Encoding,
		Template: s.Template,
	}
	if opts.Encoding == "" {
		opts.Encoding = DefaultEncoding
	}
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	return opts
}

// CreateDatabaseOptions are the database level options used by CREATE DATABASE
type CreateDatabaseOptions struct {
	Encoding string
	Template string
}
