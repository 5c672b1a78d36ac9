// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparkifyTables(t *testing.T) {
	stmts := Sparkify()
	assert.Equal(t, 10, stmts.Len())

	want := []string{"users", "songs", "artists", "time", "songplays"}
	if diff := cmp.Diff(want, stmts.CreatedTables()); diff != "" {
		t.Errorf("CreatedTables() mismatch (-want +got):\n%s", diff)
	}

	// every created table has a drop statement
	for _, table := range want {
		assert.Contains(t, stmts.Drop, "DROP TABLE IF EXISTS "+table)
	}
	// the fact table goes first on drop and last on create
	assert.Equal(t, songplayTableDrop, stmts.Drop[0])
	assert.Equal(t, songplayTableCreate, stmts.Create[len(stmts.Create)-1])
}

func TestSparkifyReturnsCopy(t *testing.T) {
	stmts := Sparkify()
	stmts.Create[0] = "changed"
	assert.Equal(t, userTableCreate, CreateTableQueries[0])
}

func TestTableName(t *testing.T) {
	tests := []struct {
		stmt string
		name string
		ok   bool
	}{
		{"CREATE TABLE users (id INT)", "users", true},
		{"create table if not exists Songs(id INT)", "songs", true},
		{"\n  CREATE TEMP TABLE scratch (id INT)", "scratch", true},
		{`CREATE TABLE "Artists" (id INT)`, "artists", true},
		{"CREATE TABLE public.time (start_time TIMESTAMP)", "time", true},
		{"DROP TABLE IF EXISTS users", "", false},
		{"CREATE INDEX idx ON users (id)", "", false},
	}
	for _, tt := range tests {
		name, ok := TableName(tt.stmt)
		assert.Equal(t, tt.ok, ok, tt.stmt)
		assert.Equal(t, tt.name, name, tt.stmt)
	}
}

func TestLoadStatements(t *testing.T) {
	stmts, err := LoadStatements("./testdata/sparkify.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"DROP TABLE IF EXISTS songplays", "DROP TABLE IF EXISTS users"}, stmts.Drop)
	assert.Equal(t, []string{"users", "songplays"}, stmts.CreatedTables())

	_, err = LoadStatements("./testdata/not-exists.yaml")
	assert.Error(t, err)

	_, err = LoadStatements("./testdata/broken.yaml")
	assert.Error(t, err)
}
