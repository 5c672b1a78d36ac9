// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package postgrestool

import (
	"net"
	"strconv"

	"github.com/urfave/cli/v2"
	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
	"github.com/xcherryio/sparkifydb/extensions/postgres"
	"github.com/xcherryio/sparkifydb/initializer"
)

const DefaultEndpoint = "127.0.0.1"
const DefaultPort = 5432
const DefaultUserName = "student"
const DefaultPassword = "student"
const DefaultAdminDatabaseName = "studentdb"
const DefaultDatabaseName = "sparkifydb"

// BuildCLIOptions builds the options for cli
func BuildCLIOptions() *cli.App {
	return initializer.BuildCLIApp(initializer.CLIToolOptions{
		Name:                "sparkify postgres tool",
		Usage:               "tool to (re)initialize the sparkify database on postgres",
		ExtensionName:       postgres.ExtensionName,
		DefaultDatabaseName: DefaultDatabaseName,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    extensions.CLIFlagEndpoint,
				Aliases: []string{"e"},
				Value:   DefaultEndpoint,
				Usage:   "hostname or ip address of sql host to connect to postgres",
				EnvVars: []string{initializer.EnvVar(extensions.CLIFlagEndpoint)},
			},
			&cli.IntFlag{
				Name:    extensions.CLIFlagPort,
				Aliases: []string{"p"},
				Value:   DefaultPort,
				Usage:   "port of sql host to connect to postgres",
				EnvVars: []string{initializer.EnvVar(extensions.CLIFlagPort)},
			},
			&cli.StringFlag{
				Name:    extensions.CLIFlagUser,
				Aliases: []string{"u"},
				Value:   DefaultUserName,
				Usage:   "user name used for authentication when connecting to postgres",
				EnvVars: []string{initializer.EnvVar(extensions.CLIFlagUser)},
			},
			&cli.StringFlag{
				Name:    extensions.CLIFlagPassword,
				Aliases: []string{"pw"},
				Value:   DefaultPassword,
				Usage:   "password used for authentication when connecting to postgres",
				EnvVars: []string{initializer.EnvVar(extensions.CLIFlagPassword)},
			},
			&cli.StringFlag{
				Name:    extensions.CLIFlagAdminDatabase,
				Value:   DefaultAdminDatabaseName,
				Usage:   "name of the postgres database to connect to for CREATE/DROP DATABASE",
				EnvVars: []string{initializer.EnvVar(extensions.CLIFlagAdminDatabase)},
			},
			&cli.StringFlag{
				Name:    extensions.CLIFlagTemplate,
				Value:   config.DefaultTemplate,
				Usage:   "template database the new database is created from",
				EnvVars: []string{initializer.EnvVar(extensions.CLIFlagTemplate)},
			},
		},
		ApplyFlags: applyFlags,
	})
}

func applyFlags(c *cli.Context, sql *config.SQL) {
	sql.ConnectAddr = connectAddr(c, sql.ConnectAddr)
	initializer.OverrideString(c, extensions.CLIFlagUser, &sql.User)
	initializer.OverrideString(c, extensions.CLIFlagPassword, &sql.Password)
	initializer.OverrideString(c, extensions.CLIFlagAdminDatabase, &sql.AdminDatabaseName)
	initializer.OverrideString(c, extensions.CLIFlagTemplate, &sql.Template)
}

// connectAddr replaces only the host or port of the configured address whose flag is set.
// An empty or malformed address is rebuilt from the flags
func connectAddr(c *cli.Context, configured string) string {
	host := c.String(extensions.CLIFlagEndpoint)
	port := strconv.Itoa(c.Int(extensions.CLIFlagPort))
	configuredHost, configuredPort, err := net.SplitHostPort(configured)
	if err != nil {
		return net.JoinHostPort(host, port)
	}
	if !c.IsSet(extensions.CLIFlagEndpoint) {
		host = configuredHost
	}
	if !c.IsSet(extensions.CLIFlagPort) {
		port = configuredPort
	}
	return net.JoinHostPort(host, port)
}
