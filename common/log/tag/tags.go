// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package tag

import (
	"fmt"

	"go.uber.org/zap"
)

const LoggingCallAtKey = "logging-call-at"

// Tag is the interface for logging system
type Tag struct {
	// keep this field private
	field zap.Field
}

// Field returns a zap field
func (t *Tag) Field() zap.Field {
	return t.field
}

func newStringTag(key string, value string) Tag {
	return Tag{
		field: zap.String(key, value),
	}
}

func newInt(key string, value int) Tag {
	return Tag{
		field: zap.Int(key, value),
	}
}

func newObjectTag(key string, value interface{}) Tag {
	return Tag{
		field: zap.String(key, fmt.Sprintf("%v", value)),
	}
}

func newErrorTag(key string, value error) Tag {
	//NOTE zap already chosen "error" as key
	return Tag{
		field: zap.Error(value),
	}
}

// TAGS

func Error(err error) Tag {
	return newErrorTag("error", err)
}

func Database(name string) Tag {
	return newStringTag("database", name)
}

func AdminDatabase(name string) Tag {
	return newStringTag("adminDatabase", name)
}

func Extension(name string) Tag {
	return newStringTag("extension", name)
}

func ConnectAddr(addr string) Tag {
	return newStringTag("connectAddr", addr)
}

func Phase(p fmt.Stringer) Tag {
	return newStringTag("phase", p.String())
}

func Statement(stmt string) Tag {
	return newStringTag("statement", stmt)
}

func StatementIndex(i int) Tag {
	return newInt("statementIndex", i)
}

func StatementCount(n int) Tag {
	return newInt("statementCount", n)
}

func RunID(id string) Tag {
	return newStringTag("runId", id)
}

func Path(p string) Tag {
	return newStringTag("path", p)
}

func Value(v interface{}) Tag {
	return newObjectTag("value", v)
}

func Message(msg string) Tag {
	return newStringTag("message", msg)
}
