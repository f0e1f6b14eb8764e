// Package logger builds configured slog loggers.
//
// Output format and level come from functional options or from an
// environment-driven Config:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
// JSON output suits production log aggregation; text output suits local
// development.
package logger
