// Package shared holds small cross-cutting helpers used by the mock server,
// the dispatch harness, and the ambient logging/tracing packages.
package shared

import "regexp"

const redactedPlaceholder = "[REDACTED]"

// botTokenPattern matches a Telegram bot token shape (digits:alnum). Handlers
// never validate the token, but it must never leak into a log line verbatim.
var botTokenPattern = regexp.MustCompile(`\b\d{6,12}:[A-Za-z0-9_-]{30,40}\b`)

// bearerPattern matches "Bearer <token>" fragments in case a test logs a raw
// request header.
var bearerPattern = regexp.MustCompile(`(?i)(Bearer\s+)([A-Za-z0-9_\-./+=]{16,})`)

// Redact replaces bot tokens and bearer-style credentials in a log string
// with a fixed placeholder. internal/telemetry applies it to every string
// attribute value before handing a record to the slog handler.
func Redact(input string) string {
	if input == "" {
		return input
	}
	result := botTokenPattern.ReplaceAllString(input, redactedPlaceholder)
	result = bearerPattern.ReplaceAllString(result, "${1}"+redactedPlaceholder)
	return result
}

// RedactKey reports whether a log attribute key is sensitive by name alone,
// regardless of its value.
func RedactKey(key string) bool {
	switch key {
	case "token", "bot_token", "authorization":
		return true
	default:
		return false
	}
}
