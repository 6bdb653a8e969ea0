// Package logger builds slog loggers for the mailer: a JSON stdout logger,
// a no-op logger for when logging is not configured, and an optional Sentry
// mirror for warnings and errors.
package logger
