// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package schema

// DROP TABLES

const songplayTableDrop = "DROP TABLE IF EXISTS songplays"
const userTableDrop = "DROP TABLE IF EXISTS users"
const songTableDrop = "DROP TABLE IF EXISTS songs"
const artistTableDrop = "DROP TABLE IF EXISTS artists"
const timeTableDrop = "DROP TABLE IF EXISTS time"

// CREATE TABLES

const userTableCreate = `CREATE TABLE IF NOT EXISTS users (
    user_id INT PRIMARY KEY,
    first_name VARCHAR,
    last_name VARCHAR,
    gender CHAR(1),
    level VARCHAR NOT NULL
)`

const songTableCreate = `CREATE TABLE IF NOT EXISTS songs (
    song_id VARCHAR PRIMARY KEY,
    title VARCHAR NOT NULL,
    artist_id VARCHAR NOT NULL,
    year INT,
    duration NUMERIC NOT NULL
)`

const artistTableCreate = `CREATE TABLE IF NOT EXISTS artists (
    artist_id VARCHAR PRIMARY KEY,
    name VARCHAR NOT NULL,
    location VARCHAR,
    latitude NUMERIC,
    longitude NUMERIC
)`

const timeTableCreate = `CREATE TABLE IF NOT EXISTS time (
    start_time TIMESTAMP PRIMARY KEY,
    hour INT NOT NULL,
    day INT NOT NULL,
    week INT NOT NULL,
    month INT NOT NULL,
    year INT NOT NULL,
    weekday INT NOT NULL
)`

// songplays is the fact table, it must be created after all the dimension tables it references
const songplayTableCreate = `CREATE TABLE IF NOT EXISTS songplays (
    songplay_id SERIAL PRIMARY KEY,
    start_time TIMESTAMP NOT NULL REFERENCES time (start_time),
    user_id INT NOT NULL REFERENCES users (user_id),
    level VARCHAR NOT NULL,
    song_id VARCHAR REFERENCES songs (song_id),
    artist_id VARCHAR REFERENCES artists (artist_id),
    session_id INT NOT NULL,
    location VARCHAR,
    user_agent VARCHAR
)`

// CreateTableQueries creates the sparkify star schema, dimension tables first
var CreateTableQueries = []string{
	userTableCreate,
	songTableCreate,
	artistTableCreate,
	timeTableCreate,
	songplayTableCreate,
}

// DropTableQueries drops the sparkify star schema, the fact table first
var DropTableQueries = []string{
	songplayTableDrop,
	userTableDrop,
	songTableDrop,
	artistTableDrop,
	timeTableDrop,
}

// Sparkify returns a copy of the built-in sparkify statements
func Sparkify() Statements {
	return Statements{
		Drop:   append([]string(nil), DropTableQueries...),
		Create: append([]string(nil), CreateTableQueries...),
	}
}
