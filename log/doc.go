// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable log levels, output formats, timestamp
// layouts, and optional caller information, applied at logger creation
// time using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// A package-level default logger writes to standard error and is
// reconfigured with [Config]:
//
//	log.Config(log.WithLevel(log.ParseLevel("debug")))
//	log.Info("toolchain resolved", slog.String("rustc", path))
//
// Two output formats are supported, [FormatJSON] (default) and
// [FormatText]. Text output can additionally be colorized for terminals
// with [WithPretty].
package log
