// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package sqlitetool

import (
	"github.com/urfave/cli/v2"
	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
	"github.com/xcherryio/sparkifydb/extensions/sqlite"
	"github.com/xcherryio/sparkifydb/initializer"
)

const DefaultDataDir = "."
const DefaultDatabaseName = "sparkifydb"

// BuildCLIOptions builds the options for cli
func BuildCLIOptions() *cli.App {
	return initializer.BuildCLIApp(initializer.CLIToolOptions{
		Name:                "sparkify sqlite tool",
		Usage:               "tool to (re)initialize the sparkify database as a sqlite file",
		ExtensionName:       sqlite.ExtensionName,
		DefaultDatabaseName: DefaultDatabaseName,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    extensions.CLIFlagDataDir,
				Aliases: []string{"d"},
				Value:   DefaultDataDir,
				Usage:   "directory of the sqlite database files",
				EnvVars: []string{initializer.EnvVar(extensions.CLIFlagDataDir)},
			},
		},
		ApplyFlags: func(c *cli.Context, sql *config.SQL) {
			initializer.OverrideString(c, extensions.CLIFlagDataDir, &sql.ConnectAddr)
		},
	})
}
