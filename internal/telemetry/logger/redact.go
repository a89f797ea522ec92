// Package logger provides structured logging for admintok.
package logger

import (
	"log/slog"
	"strings"
)

// Key patterns whose string values are redacted. The admin secret can
// surface under several names (flag, env var, composed plaintext), so
// the net is wide on purpose.
var sensitiveKeyPatterns = []string{
	"secret",
	"password",
	"passphrase",
	"credential",
	"plaintext",
	"key",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive replaces the value of any attribute whose key looks
// like it carries credential material. Non-string values pass through;
// lengths and counts are safe to log.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		keyLower := strings.ToLower(a.Key)
		for _, pattern := range sensitiveKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				if a.Value.String() != "" {
					return slog.String(a.Key, redactedValue)
				}
				break
			}
		}
	}

	// Handle nested groups recursively.
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}
