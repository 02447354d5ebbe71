// Package urlconfig reads the environment-variable knobs the parser
// and its CLI accept, in the thin os.Getenv-wrapper style of
// PhilipKram-gms-foundation/pkg/envconfig (no reflection or
// struct-tag library).
package urlconfig

import (
	"os"
	"strconv"
	"strings"
)

// DefaultMaxInputLength is used when URLPARSER_MAX_INPUT_LENGTH is
// unset, empty, or not a valid positive integer.
const DefaultMaxInputLength = 8 * 1024 * 1024

// OptionalInt returns the environment variable value parsed as an
// integer, or defaultValue if the variable is not set, empty, or not
// a valid integer.
func OptionalInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// OptionalBool returns true if the environment variable is set to
// "true", "1", or "yes" (case-insensitive), false if set to "false",
// "0", or "no", and defaultValue for unset or unrecognized values.
func OptionalBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

// MaxInputLength reads URLPARSER_MAX_INPUT_LENGTH, the implementation
// limit spec.md §5 allows before a parse fails with Overflow.
func MaxInputLength() int {
	n := OptionalInt("URLPARSER_MAX_INPUT_LENGTH", DefaultMaxInputLength)
	if n <= 0 {
		return DefaultMaxInputLength
	}
	return n
}

// ReportValidationErrors reads URLPARSER_REPORT_VALIDATION_ERRORS,
// the CLI's switch for logging non-fatal validation errors (§7) at
// Debug level instead of staying silent.
func ReportValidationErrors() bool {
	return OptionalBool("URLPARSER_REPORT_VALIDATION_ERRORS", false)
}
