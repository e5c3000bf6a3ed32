// Package constants defines the closed string enumerations shared across
// the import pipeline. Values are stable: they are stored verbatim and
// appear verbatim in spreadsheet cells.
package constants

import (
	"fmt"
	"strings"
)

// InvalidEnumError reports a value outside an enumeration's closed set.
type InvalidEnumError struct {
	Enum    string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Enum, e.Value, strings.Join(e.Allowed, ", "))
}

// parseEnum resolves a trimmed, lowercased input against the allowed set.
// A blank input falls back to def; enums without a default pass an empty
// def and treat blank as invalid.
func parseEnum[T ~string](enum string, input string, def T, allowed []T) (T, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" && def != "" {
		return def, nil
	}
	for _, a := range allowed {
		if s == string(a) {
			return a, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return def, &InvalidEnumError{Enum: enum, Value: input, Allowed: names}
}
