// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package sqlitetool

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcherryio/sparkifydb/schema"
)

func runTool(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := BuildCLIOptions()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = out
	err := app.Run(append([]string{"sqlite-tool", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestRunWithoutCommand(t *testing.T) {
	dir := t.TempDir()
	db := fmt.Sprintf("test%v", time.Now().UnixNano())

	out, err := runTool(t, "--data-dir", dir, "--database", db)
	require.NoError(t, err)
	stmts := schema.Sparkify()
	assert.Equal(t, strings.Join(append(stmts.Drop, stmts.Create...), "\n")+"\n", out)
	assert.FileExists(t, filepath.Join(dir, db+".db"))

	out, err = runTool(t, "--data-dir", dir, "--database", db, "list-tables")
	require.NoError(t, err)
	assert.Equal(t, "artists\nsongplays\nsongs\ntime\nusers\n", out)
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	db := fmt.Sprintf("test%v", time.Now().UnixNano())
	flags := []string{"--data-dir", dir, "--db", db}

	_, err := runTool(t, append(flags, "create-database")...)
	require.NoError(t, err)
	out, err := runTool(t, append(flags, "ls")...)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = runTool(t, append(flags, "create-tables")...)
	require.NoError(t, err)
	out, err = runTool(t, append(flags, "ls")...)
	require.NoError(t, err)
	assert.Equal(t, "artists\nsongplays\nsongs\ntime\nusers\n", out)

	_, err = runTool(t, append(flags, "drop-tables")...)
	require.NoError(t, err)
	out, err = runTool(t, append(flags, "ls")...)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = runTool(t, append(flags, "drop-database")...)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, db+".db"))

	_, err = runTool(t, append(flags, "create-tables")...)
	assert.Error(t, err, "the database was dropped")
}

func TestSchemaFileAndEnvVars(t *testing.T) {
	dir := t.TempDir()
	schemaFile := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaFile, []byte(`
drop:
  - DROP TABLE IF EXISTS users
create:
  - CREATE TABLE users (user_id INT PRIMARY KEY)
`), 0o644))

	t.Setenv("SPARKIFY_DATA_DIR", dir)
	t.Setenv("SPARKIFY_DATABASE", "fromenv")

	out, err := runTool(t, "-f", schemaFile)
	require.NoError(t, err)
	assert.Equal(t, "DROP TABLE IF EXISTS users\nCREATE TABLE users (user_id INT PRIMARY KEY)\n", out)

	out, err = runTool(t, "list-tables")
	require.NoError(t, err)
	assert.Equal(t, "users\n", out)
	assert.FileExists(t, filepath.Join(dir, "fromenv.db"))
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(fmt.Sprintf(
		"SPARKIFY_DATA_DIR=%v\nSPARKIFY_DATABASE=fromenvfile\n", dir)), 0o644))

	_, err := runTool(t, "--env-file", envFile, "create-database")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "fromenvfile.db"))

	_, err = runTool(t, "--env-file", envFile, "--database", "fromflag", "create-database")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "fromflag.db"))

	_, err = runTool(t, "--env-file", filepath.Join(dir, "not-exists.env"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(fmt.Sprintf(`
log:
  level: error
database:
  sql:
    databaseName: fromconfig
    connectAddr: %v
`, dir)), 0o644))

	_, err := runTool(t, "--config", configFile, "create-database")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "fromconfig.db"))

	// flags set explicitly win over the config file
	_, err = runTool(t, "--config", configFile, "--database", "fromflag", "create-database")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "fromflag.db"))
}

func TestInvalidSchemaFile(t *testing.T) {
	_, err := runTool(t, "--data-dir", t.TempDir(), "-f", "./not-exists.yaml")
	assert.Error(t, err)
}
