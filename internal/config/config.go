// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"assetmirror/internal/assets"
)

// Config is the root configuration structure.
type Config struct {
	Extract    ExtractConfig    `toml:"extract"`
	Extensions ExtensionsConfig `toml:"extensions"`
	History    HistoryConfig    `toml:"history"`
	Log        LogConfig        `toml:"log"`

	// keys present in the file but absent from the schema, kept for
	// validation suggestions
	undecoded []string
}

type ExtractConfig struct {
	Workers        int  `toml:"workers"`
	SkipInfoPlist  bool `toml:"skip_info_plist"`
	FollowSymlinks bool `toml:"follow_symlinks"`
}

type ExtensionsConfig struct {
	LocTable []string `toml:"loctable"`
	Image    []string `toml:"image"`
	Plist    []string `toml:"plist"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{
		Extract: ExtractConfig{FollowSymlinks: true},
		History: HistoryConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	defaults := assets.DefaultExtensions()
	if c.Extensions.LocTable == nil {
		c.Extensions.LocTable = defaults.LocTable
	}
	if c.Extensions.Image == nil {
		c.Extensions.Image = defaults.Image
	}
	if c.Extensions.Plist == nil {
		c.Extensions.Plist = defaults.PropertyList
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// AssetExtensions converts the configured suffix sets to the classifier's
// form.
func (c *Config) AssetExtensions() assets.Extensions {
	return assets.Extensions{
		LocTable:     c.Extensions.LocTable,
		Image:        c.Extensions.Image,
		PropertyList: c.Extensions.Plist,
	}
}

// Load reads and parses the configuration file. Missing required
// environment variables and validation problems are aggregated into a
// *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	// booleans that default to true must be seeded before decoding
	cfg := Config{
		Extract: ExtractConfig{FollowSymlinks: true},
		History: HistoryConfig{Enabled: true},
	}
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	for _, key := range md.Undecoded() {
		cfg.undecoded = append(cfg.undecoded, key.String())
	}

	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return &cfg, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default}, and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)((:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment variable references and returns
// the substituted content plus the names that could not be resolved.
// Plain ${VAR} references are left unchanged when unset; ${VAR:-default}
// falls back when the variable is unset or empty; ${VAR:?message} records
// the variable as required.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[3], m[4]
		value, set := os.LookupEnv(name)

		switch op {
		case ":-":
			if set && value != "" {
				return value
			}
			return arg
		case ":?":
			if set && value != "" {
				return value
			}
			if arg != "" {
				missing = append(missing, fmt.Sprintf("%s (%s)", name, arg))
			} else {
				missing = append(missing, name)
			}
			return match
		default:
			if set {
				return value
			}
			missing = append(missing, name)
			return match
		}
	})
	return out, missing
}

// Summary returns a short human-readable rendering of effective settings.
func (c *Config) Summary() string {
	var b strings.Builder
	workers := "auto"
	if c.Extract.Workers > 0 {
		workers = fmt.Sprintf("%d", c.Extract.Workers)
	}
	fmt.Fprintf(&b, "  Workers:         %s\n", workers)
	fmt.Fprintf(&b, "  Skip Info.plist: %t\n", c.Extract.SkipInfoPlist)
	fmt.Fprintf(&b, "  Follow symlinks: %t\n", c.Extract.FollowSymlinks)
	fmt.Fprintf(&b, "  Extensions:      loctable=%s image=%s plist=%s\n",
		strings.Join(c.Extensions.LocTable, ","),
		strings.Join(c.Extensions.Image, ","),
		strings.Join(c.Extensions.Plist, ","))
	historyPath := c.History.Path
	if historyPath == "" {
		historyPath = "(default)"
	}
	fmt.Fprintf(&b, "  History:         enabled=%t path=%s\n", c.History.Enabled, historyPath)
	fmt.Fprintf(&b, "  Log level:       %s", c.Log.Level)
	return b.String()
}
