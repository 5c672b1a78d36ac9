// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package initializer

import (
	"context"
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/xcherryio/sparkifydb/common/log"
	"github.com/xcherryio/sparkifydb/common/log/tag"
	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
	"github.com/xcherryio/sparkifydb/schema"
)

// CLIToolOptions describes an extension specific tool
type CLIToolOptions struct {
	Name          string
	Usage         string
	ExtensionName string
	// DefaultDatabaseName is the database to (re)initialize when not configured
	DefaultDatabaseName string
	// Flags are the extension specific connection flags
	Flags []cli.Flag
	// ApplyFlags copies the extension specific flags into the config
	ApplyFlags func(c *cli.Context, sql *config.SQL)
}

// BuildCLIApp builds the tool. Running it without a command initializes the database
func BuildCLIApp(opts CLIToolOptions) *cli.App {
	app := cli.NewApp()
	app.Name = opts.Name
	app.Usage = opts.Usage

	app.Flags = append(append([]cli.Flag{}, opts.Flags...),
		&cli.StringFlag{
			Name:    extensions.CLIFlagDatabase,
			Aliases: []string{"db"},
			Value:   opts.DefaultDatabaseName,
			Usage:   "name of the database to (re)initialize",
			EnvVars: []string{EnvVar(extensions.CLIFlagDatabase)},
		},
		&cli.StringFlag{
			Name:    extensions.CLIFlagEncoding,
			Value:   config.DefaultEncoding,
			Usage:   "character encoding of the new database",
			EnvVars: []string{EnvVar(extensions.CLIFlagEncoding)},
		},
		&cli.StringFlag{
			Name:    extensions.CLIFlagSchemaFile,
			Aliases: []string{"f"},
			Usage:   "YAML file with the drop and create statements, the built-in sparkify tables if empty",
			EnvVars: []string{EnvVar(extensions.CLIFlagSchemaFile)},
		},
		&cli.StringFlag{
			Name:    extensions.CLIFlagConfig,
			Aliases: []string{"c"},
			Usage:   "YAML config file, flags set explicitly take precedence",
			EnvVars: []string{EnvVar(extensions.CLIFlagConfig)},
		},
		&cli.StringFlag{
			Name:  extensions.CLIFlagEnvFile,
			Usage: "dotenv file with SPARKIFY_* variables, used for the flags that are not set",
		},
		&cli.StringFlag{
			Name:    extensions.CLIFlagLogLevel,
			Value:   "info",
			Usage:   "log level: debug, info, warn, error",
			EnvVars: []string{EnvVar(extensions.CLIFlagLogLevel)},
		},
	)

	app.Before = func(c *cli.Context) error {
		if path := c.String(extensions.CLIFlagEnvFile); path != "" {
			return applyEnvFile(c, path)
		}
		return nil
	}

	app.Action = func(c *cli.Context) error {
		return runByCli(c, opts, func(ctx context.Context, i *Initializer) error {
			return i.Run(ctx)
		})
	}

	app.Commands = []*cli.Command{
		{
			Name:  "init",
			Usage: "drops and creates the database, then drops and creates the tables",
			Action: func(c *cli.Context) error {
				return runByCli(c, opts, func(ctx context.Context, i *Initializer) error {
					return i.Run(ctx)
				})
			},
		},
		{
			Name:    "create-database",
			Aliases: []string{"create"},
			Usage:   "drops and creates the database without touching any table",
			Action: func(c *cli.Context) error {
				return runByCli(c, opts, func(ctx context.Context, i *Initializer) error {
					session, err := i.CreateDatabase(ctx)
					if err != nil {
						return err
					}
					return session.Close()
				})
			},
		},
		{
			Name:  "drop-database",
			Usage: "drops the database if it exists",
			Action: func(c *cli.Context) error {
				return runByCli(c, opts, func(ctx context.Context, i *Initializer) error {
					return i.DropDatabase(ctx)
				})
			},
		},
		{
			Name:  "drop-tables",
			Usage: "executes the drop statements against the existing database",
			Action: func(c *cli.Context) error {
				return runByCli(c, opts, withSession(func(ctx context.Context, i *Initializer, session extensions.SQLDBSession) error {
					return i.DropTables(ctx, session)
				}))
			},
		},
		{
			Name:  "create-tables",
			Usage: "executes the create statements against the existing database",
			Action: func(c *cli.Context) error {
				return runByCli(c, opts, withSession(func(ctx context.Context, i *Initializer, session extensions.SQLDBSession) error {
					return i.CreateTables(ctx, session)
				}))
			},
		},
		{
			Name:    "list-tables",
			Aliases: []string{"ls"},
			Usage:   "prints the tables of the existing database",
			Action: func(c *cli.Context) error {
				return runByCli(c, opts, withSession(func(ctx context.Context, i *Initializer, session extensions.SQLDBSession) error {
					names, err := i.ListTables(ctx, session)
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(c.App.Writer, name)
					}
					return nil
				}))
			},
		},
	}

	return app
}

// EnvVar returns the environment variable backing the flag
func EnvVar(flag string) string {
	return extensions.EnvVarPrefix + strcase.ToScreamingSnake(flag)
}

// OverrideString copies the flag into dst when it's set explicitly, or when dst is still empty
func OverrideString(c *cli.Context, flag string, dst *string) {
	if c.IsSet(flag) || *dst == "" {
		*dst = c.String(flag)
	}
}

// applyEnvFile sets the flags that are not set from the variables of the dotenv file.
// The process environment is left untouched
func applyEnvFile(c *cli.Context, path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("error loading env file %v: %w", path, err)
	}
	for _, flag := range c.App.Flags {
		name := flag.Names()[0]
		if c.IsSet(name) {
			continue
		}
		if value, ok := env[EnvVar(name)]; ok {
			if err := c.Set(name, value); err != nil {
				return fmt.Errorf("invalid value %v of %v: %w", value, EnvVar(name), err)
			}
		}
	}
	return nil
}

type sessionAction func(ctx context.Context, i *Initializer, session extensions.SQLDBSession) error

func withSession(action sessionAction) func(ctx context.Context, i *Initializer) error {
	return func(ctx context.Context, i *Initializer) error {
		session, err := i.Connect()
		if err != nil {
			return err
		}
		defer session.Close()
		return action(ctx, i, session)
	}
}

func runByCli(c *cli.Context, opts CLIToolOptions, action func(ctx context.Context, i *Initializer) error) error {
	cfg, err := parseConfig(c, opts)
	if err != nil {
		return err
	}

	zapLogger, err := cfg.Log.NewZapLogger()
	if err != nil {
		return err
	}
	defer zapLogger.Sync()
	logger := log.NewLogger(zapLogger)

	stmts, err := loadStatements(cfg, logger)
	if err != nil {
		return err
	}

	i := New(*cfg.Database.SQL, stmts, logger, WithOutput(c.App.Writer))
	return action(c.Context, i)
}

func parseConfig(c *cli.Context, opts CLIToolOptions) (*config.Config, error) {
	cfg := &config.Config{}
	if path := c.String(extensions.CLIFlagConfig); path != "" {
		var err error
		cfg, err = config.NewConfig(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config file %v: %w", path, err)
		}
	}
	if cfg.Database.SQL == nil {
		cfg.Database.SQL = &config.SQL{}
	}
	sql := cfg.Database.SQL
	if sql.DBExtensionName == "" {
		sql.DBExtensionName = opts.ExtensionName
	}
	if opts.ApplyFlags != nil {
		opts.ApplyFlags(c, sql)
	}
	OverrideString(c, extensions.CLIFlagDatabase, &sql.DatabaseName)
	OverrideString(c, extensions.CLIFlagEncoding, &sql.Encoding)
	OverrideString(c, extensions.CLIFlagSchemaFile, &cfg.Schema.File)
	OverrideString(c, extensions.CLIFlagLogLevel, &cfg.Log.Level)

	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadStatements(cfg *config.Config, logger log.Logger) (schema.Statements, error) {
	if cfg.Schema.File == "" {
		logger.Debug("using the built-in sparkify statements")
		return schema.Sparkify(), nil
	}
	logger.Debug("loading statements", tag.Path(cfg.Schema.File))
	return schema.LoadStatements(cfg.Schema.File)
}
