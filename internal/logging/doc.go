// Package logging provides structured logging utilities for taskdeck.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "tasks.list")
//	logger.Info("listing tasks",
//	    logging.Status(logging.StatusSuccess))
//
// # Security Considerations
//
// Session tokens are never logged directly; use SanitizeToken when a
// credential needs to appear in a log line.
package logging
