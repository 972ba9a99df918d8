package main

import (
	"log/slog"
	"os"
	"strings"
)

var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// initLogging sets the default slog logger to a JSON handler over stderr,
// mirroring the file-backed JSON handler setup ixstore's teacher uses, but
// writing to stderr since this demo has no persistent working directory of
// its own (spec.md's Non-goals exclude persistence for the store itself;
// this keeps that boundary for the CLI too).
func initLogging(levelName string) *slog.Logger {
	level, ok := logLevelMap[strings.ToLower(levelName)]
	if !ok {
		level = slog.LevelWarn
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
