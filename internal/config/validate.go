// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// knownKeys are the schema's table and key names, used to suggest a fix
// for near-miss keys in the file.
var knownKeys = []string{
	"extract", "extract.workers", "extract.skip_info_plist", "extract.follow_symlinks",
	"extensions", "extensions.loctable", "extensions.image", "extensions.plist",
	"history", "history.enabled", "history.path",
	"log", "log.level",
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Extract.Workers < 0 {
		errs = append(errs, fmt.Sprintf("extract.workers: must be zero or positive, got %d", c.Extract.Workers))
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	errs = append(errs, validateSuffixes("extensions.loctable", c.Extensions.LocTable)...)
	errs = append(errs, validateSuffixes("extensions.image", c.Extensions.Image)...)
	errs = append(errs, validateSuffixes("extensions.plist", c.Extensions.Plist)...)

	for _, key := range c.undecoded {
		msg := fmt.Sprintf("unknown key %q", key)
		if suggestion := suggestKey(key); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		errs = append(errs, msg)
	}

	return errs
}

func validateSuffixes(key string, suffixes []string) []string {
	var errs []string
	if len(suffixes) == 0 {
		errs = append(errs, fmt.Sprintf("%s: at least one suffix required", key))
	}
	for _, s := range suffixes {
		if !strings.HasPrefix(s, ".") {
			errs = append(errs, fmt.Sprintf("%s: suffix %q must start with a dot", key, s))
		}
	}
	return errs
}

// suggestKey returns the closest schema key when it is similar enough to
// be a likely typo.
func suggestKey(key string) string {
	best := ""
	bestScore := float32(0)
	for _, candidate := range knownKeys {
		score := edlib.JaroWinklerSimilarity(strings.ToLower(key), candidate)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if bestScore < 0.85 {
		return ""
	}
	return best
}
