// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcherryio/sparkifydb/common/log/tag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerTags(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := NewLogger(zap.New(core)).WithTags(tag.Database("sparkifydb"))

	logger.Debug("dropped because of the level")
	logger.Info("", tag.StatementIndex(2), tag.Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, defaultMsgForEmpty, entry.Message)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "sparkifydb", fields["database"])
	assert.Equal(t, int64(2), fields["statementIndex"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields[tag.LoggingCallAtKey], "logger_test.go")
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("nothing", tag.Database("x"))
	logger.WithTags(tag.RunID("id")).Warn("still nothing")
}
