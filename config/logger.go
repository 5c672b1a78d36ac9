// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logEncodingConsole = "console"
	logEncodingJSON    = "json"
)

type (
	// Logger configures where the tool logs to. Standard out is reserved for
	// the statements being executed, so logs go to standard error by default
	Logger struct {
		// Stdout sends the logs to standard out, mixed with the statements
		Stdout bool `yaml:"stdout"`
		// Level is one of debug, info, warn, error, fatal. Defaults to info
		Level string `yaml:"level"`
		// OutputFile is a file to log to. Ignored when Stdout is true
		OutputFile string `yaml:"outputFile"`
		// LevelKey is the key of the level field, defaults to "level"
		LevelKey string `yaml:"levelKey"`
		// Encoding is "console" (default) or "json"
		Encoding string `yaml:"encoding"`
	}
)

// NewZapLogger builds the zap logger of this config
func (cfg *Logger) NewZapLogger() (*zap.Logger, error) {
	encoding, err := cfg.encoding()
	if err != nil {
		return nil, err
	}
	outputPath := cfg.outputPath()

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseZapLevel(cfg.Level)),
		Development:      false,
		Sampling:         nil,
		Encoding:         encoding,
		EncoderConfig:    cfg.encoderConfig(),
		OutputPaths:      []string{outputPath},
		ErrorOutputPaths: []string{outputPath},
	}
	return config.Build()
}

func (cfg *Logger) encoderConfig() zapcore.EncoderConfig {
	levelKey := cfg.LevelKey
	if levelKey == "" {
		levelKey = "level"
	}
	// no caller key, the logger tags every entry with logging-call-at
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       levelKey,
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
}

func (cfg *Logger) encoding() (string, error) {
	switch cfg.Encoding {
	case "":
		return logEncodingConsole, nil
	case logEncodingConsole, logEncodingJSON:
		return cfg.Encoding, nil
	default:
		return "", fmt.Errorf("invalid log encoding %q, only %v or %v is supported",
			cfg.Encoding, logEncodingConsole, logEncodingJSON)
	}
}

func (cfg *Logger) outputPath() string {
	if cfg.Stdout {
		return "stdout"
	}
	if len(cfg.OutputFile) > 0 {
		return cfg.OutputFile
	}
	return "stderr"
}

// parseZapLevel falls back to info for an empty or unknown level
func parseZapLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}
