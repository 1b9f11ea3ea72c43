// internal/config/error.go
package config

import (
	"fmt"
	"strings"
)

// ConfigError carries everything wrong with one config file at once:
// environment references that did not resolve and validation problems.
// Reporting them together lets the user repair the file in a single
// pass instead of replaying Load failure by failure.
type ConfigError struct {
	Path    string   // the file that was loaded
	Missing []string // unresolved environment variable references
	Errors  []string // validation problems, one message per finding
}

func (e *ConfigError) Error() string {
	if len(e.Missing) == 0 && len(e.Errors) == 0 {
		return ""
	}

	var parts []string

	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing environment variables: %s", strings.Join(e.Missing, ", ")))
	}

	if len(e.Errors) > 0 {
		parts = append(parts, "validation failed:")
		for _, err := range e.Errors {
			parts = append(parts, fmt.Sprintf("  - %s", err))
		}
	}

	return strings.Join(parts, "\n")
}

// HasErrors reports whether anything was actually collected.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
