// Package logger builds configured slog loggers and provides attribute
// helpers for the keys this module logs under.
package logger
