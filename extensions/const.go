// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package extensions

const (
	// CLIFlagEndpoint is the cli flag for endpoint
	CLIFlagEndpoint = "endpoint"
	// CLIFlagPort is the cli flag for port
	CLIFlagPort = "port"
	// CLIFlagUser is the cli flag for user
	CLIFlagUser = "user"
	// CLIFlagPassword is the cli flag for password
	CLIFlagPassword = "password"
	// CLIFlagDatabase is the cli flag for the target database
	CLIFlagDatabase = "database"
	// CLIFlagAdminDatabase is the cli flag for the admin database
	CLIFlagAdminDatabase = "admin-database"
	CLIFlagEncoding      = "encoding"
	CLIFlagTemplate      = "template"
	// CLIFlagDataDir is the cli flag for the directory of the database files, sqlite only
	CLIFlagDataDir = "data-dir"
	// CLIFlagSchemaFile is the cli flag for the YAML statement file
	CLIFlagSchemaFile = "schema-file"
	// CLIFlagConfig is the cli flag for the YAML config file
	CLIFlagConfig   = "config"
	CLIFlagEnvFile  = "env-file"
	CLIFlagLogLevel = "log-level"

	// EnvVarPrefix is the prefix of the environment variables backing the cli flags
	EnvVarPrefix = "SPARKIFY_"
)
