package common

import (
	"fmt"
	"path/filepath"
)

// FormatValue renders a default or constant value for inclusion in help text.
// Strings are shown bare rather than quoted.
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ProgName reduces an invocation path to its display name.
func ProgName(argv0 string) string {
	if argv0 == "" {
		return ""
	}
	return filepath.Base(argv0)
}
