// Package logger provides structured logging for admintok.
//
// It wraps log/slog to provide structured logging with automatic
// redaction of sensitive fields. Redaction matters more than usual
// here: the process handles a shared admin credential, and a log line
// that captures it defeats the tool's purpose.
//
// Logs go to stderr so stdout stays clean for the token output.
package logger
