// Package logger provides a structured logging interface for igstats.
//
// It wraps zerolog with a small interface so that packages can accept a
// Logger, tests can capture output with NewTestLogger, and quiet paths can use
// NewNopLogger.
//
//	log, err := logger.New(&cfg.Logging)
//	log.WithField("handle", "johndoe").Info("Profile resolved")
//
// Console output is written to stderr. When LoggingConfig.File is set, lines
// are also appended to that file as JSON.
package logger
