// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig("./testdata/sparkify-postgres.yaml")
	require.NoError(t, err)

	ass := assert.New(t)
	ass.Equal("debug", cfg.Log.Level)
	ass.Equal("json", cfg.Log.Encoding)
	ass.Equal("./schema/testdata/sparkify.yaml", cfg.Schema.File)

	sql := cfg.Database.SQL
	require.NotNil(t, sql)
	ass.Equal("student", sql.User)
	ass.Equal("student", sql.Password)
	ass.Equal("sparkifydb", sql.DatabaseName)
	ass.Equal("studentdb", sql.AdminDatabaseName)
	ass.Equal("127.0.0.1:5432", sql.ConnectAddr)
	ass.Equal("postgres", sql.DBExtensionName)
	ass.Empty(sql.Encoding)

	ass.NoError(cfg.ValidateAndSetDefaults())
	ass.Equal(DefaultEncoding, sql.Encoding)
	ass.Equal(DefaultTemplate, sql.Template)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig("./testdata/not-exists.yaml")
	assert.Error(t, err)
}

func TestValidateAndSetDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ValidateAndSetDefaults())

	cfg.Database.SQL = &SQL{
		DatabaseName:    "sparkifydb",
		DBExtensionName: "postgres",
	}
	assert.Error(t, cfg.ValidateAndSetDefaults(), "connectAddr is required")

	cfg.Database.SQL.ConnectAddr = "127.0.0.1:5432"
	cfg.Database.SQL.AdminDatabaseName = "sparkifydb"
	assert.Error(t, cfg.ValidateAndSetDefaults(), "the admin database cannot be the target")

	cfg.Database.SQL.AdminDatabaseName = "studentdb"
	cfg.Database.SQL.Encoding = "latin1"
	assert.NoError(t, cfg.ValidateAndSetDefaults())
	assert.Equal(t, "latin1", cfg.Database.SQL.Encoding)
	assert.Equal(t, DefaultTemplate, cfg.Database.SQL.Template)
}

func TestStringMasksPassword(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			SQL: &SQL{User: "student", Password: "secret"},
		},
	}
	out := cfg.String()
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "student")
	// the original config is untouched
	assert.Equal(t, "secret", cfg.Database.SQL.Password)
}

func TestCreateDatabaseOptions(t *testing.T) {
	opts := SQL{}.CreateDatabaseOptions()
	assert.Equal(t, CreateDatabaseOptions{Encoding: "utf8", Template: "template0"}, opts)

	opts = SQL{Encoding: "SQL_ASCII", Template: "template1"}.CreateDatabaseOptions()
	assert.Equal(t, CreateDatabaseOptions{Encoding: "SQL_ASCII", Template: "template1"}, opts)
}

func TestParseZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseZapLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseZapLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseZapLevel("unknown"))
	assert.Equal(t, zapcore.InfoLevel, parseZapLevel(""))
}

func TestLogEncoding(t *testing.T) {
	encoding, err := (&Logger{}).encoding()
	require.NoError(t, err)
	assert.Equal(t, "console", encoding)

	encoding, err = (&Logger{Encoding: "json"}).encoding()
	require.NoError(t, err)
	assert.Equal(t, "json", encoding)

	_, err = (&Logger{Encoding: "xml"}).encoding()
	assert.ErrorContains(t, err, "xml")
}

func TestNewZapLogger(t *testing.T) {
	lg := &Logger{Level: "debug"}
	zl, err := lg.NewZapLogger()
	require.NoError(t, err)
	assert.True(t, zl.Core().Enabled(zapcore.DebugLevel))

	lg = &Logger{Encoding: "xml"}
	_, err = lg.NewZapLogger()
	assert.Error(t, err)

	assert.Equal(t, "stderr", (&Logger{}).outputPath())
	assert.Equal(t, "stdout", (&Logger{Stdout: true, OutputFile: "/tmp/x.log"}).outputPath())
	assert.Equal(t, "/tmp/x.log", (&Logger{OutputFile: "/tmp/x.log"}).outputPath())
}
