// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xcherryio/sparkifydb/config"
	"github.com/xcherryio/sparkifydb/extensions"
)

var (
	errDatabaseExists      = errors.New("database already exists")
	errUnsupportedEncoding = errors.New("unsupported encoding")
)

const utf8Encoding = "UTF-8"

// sidecar files sqlite may leave next to the database file
var sidecarSuffixes = []string{"-journal", "-wal", "-shm"}

type adminDBSession struct {
	dataDir string
}

var _ extensions.SQLAdminDBSession = (*adminDBSession)(nil)

func newAdminDBSession(dataDir string) *adminDBSession {
	return &adminDBSession{
		dataDir: dataDir,
	}
}

func (a adminDBSession) CreateDatabase(ctx context.Context, database string, opts config.CreateDatabaseOptions) error {
	encoding, err := sqliteEncoding(opts.Encoding)
	if err != nil {
		return err
	}
	path := databasePath(a.dataDir, database)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %v", errDatabaseExists, database)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	// the encoding can only be set before the database has any content,
	// and the template has no meaning for sqlite
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA encoding = '%v'", encoding)); err != nil {
		return err
	}
	// writing the header persists the encoding
	_, err = db.ExecContext(ctx, "PRAGMA user_version = 0")
	return err
}

func (a adminDBSession) DropDatabase(ctx context.Context, database string) error {
	path := databasePath(a.dataDir, database)
	for _, p := range append([]string{path}, sidecars(path)...) {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func (a adminDBSession) Close() error {
	return nil
}

func sidecars(path string) []string {
	files := make([]string, 0, len(sidecarSuffixes))
	for _, suffix := range sidecarSuffixes {
		files = append(files, path+suffix)
	}
	return files
}

// sqliteEncoding returns the sqlite name of a UTF-8 encoding name.
// modernc.org/sqlite keeps new databases in UTF-8 whatever PRAGMA encoding asks for,
// so any other encoding is rejected rather than silently replaced
func sqliteEncoding(encoding string) (string, error) {
	switch strings.ToLower(strings.ReplaceAll(encoding, "-", "")) {
	case "", "utf8", "unicode":
		return utf8Encoding, nil
	default:
		return "", fmt.Errorf("%w: %v, only %v is supported", errUnsupportedEncoding, encoding, utf8Encoding)
	}
}
