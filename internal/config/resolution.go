package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/eslintkit/pkg/eslintconfig"
)

// Sources a resolved value can come from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds flag values together with whether each was set explicitly.
// Unset flags do not override lower-priority sources.
type CliFlags struct {
	Options eslintconfig.Options
	Format  string
	Theme   string

	TypeScriptSet bool
	NodeSet       bool
	ReactSet      bool
	JestSet       bool
	CypressSet    bool
}

// ResolvedConfig is the final configuration after applying all sources.
type ResolvedConfig struct {
	Options eslintconfig.Options
	Format  string
	Theme   string

	// Sources records where each value came from, keyed by option name
	// ("typescript", ..., "format", "theme").
	Sources map[string]string
}

// ResolveConfig loads the config file and resolves every value with
// priority CLI > env > file > default.
func ResolveConfig(flags CliFlags) (*ResolvedConfig, error) {
	appCfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return Resolve(appCfg, flags)
}

// Resolve applies env and flags on top of appCfg.
func Resolve(appCfg *AppConfig, flags CliFlags) (*ResolvedConfig, error) {
	resolved := &ResolvedConfig{
		Format: FormatJSON,
		Theme:  ThemeDefault,
		Sources: map[string]string{
			"typescript": SourceDefault,
			"node":       SourceDefault,
			"react":      SourceDefault,
			"jest":       SourceDefault,
			"cypress":    SourceDefault,
			"format":     SourceDefault,
			"theme":      SourceDefault,
		},
	}

	appCfg.apply(&resolved.Options, resolved.Sources)
	if appCfg.Format != "" {
		resolved.Format = appCfg.Format
		resolved.Sources["format"] = SourceFile
	}
	if appCfg.Theme != "" {
		resolved.Theme = appCfg.Theme
		resolved.Sources["theme"] = SourceFile
	}

	resolveBool(resolved, "typescript", "ESLINTCFG_TYPESCRIPT", flags.TypeScriptSet, flags.Options.TypeScript, &resolved.Options.TypeScript)
	resolveBool(resolved, "node", "ESLINTCFG_NODE", flags.NodeSet, flags.Options.Node, &resolved.Options.Node)
	resolveBool(resolved, "react", "ESLINTCFG_REACT", flags.ReactSet, flags.Options.React, &resolved.Options.React)
	resolveBool(resolved, "jest", "ESLINTCFG_JEST", flags.JestSet, flags.Options.Jest, &resolved.Options.Jest)
	resolveBool(resolved, "cypress", "ESLINTCFG_CYPRESS", flags.CypressSet, flags.Options.Cypress, &resolved.Options.Cypress)

	switch {
	case flags.Format != "":
		resolved.Format = flags.Format
		resolved.Sources["format"] = SourceCLI
	case os.Getenv("ESLINTCFG_FORMAT") != "":
		resolved.Format = os.Getenv("ESLINTCFG_FORMAT")
		resolved.Sources["format"] = SourceEnv
	}

	switch {
	case flags.Theme != "":
		resolved.Theme = flags.Theme
		resolved.Sources["theme"] = SourceCLI
	case os.Getenv("NO_COLOR") != "":
		resolved.Theme = ThemeMono
		resolved.Sources["theme"] = SourceEnv
	case os.Getenv("ESLINTCFG_THEME") != "":
		resolved.Theme = os.Getenv("ESLINTCFG_THEME")
		resolved.Sources["theme"] = SourceEnv
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if Debug() {
		fmt.Fprintf(os.Stderr, "[DEBUG ResolveConfig] options=%+v format=%s theme=%s sources=%v\n",
			resolved.Options, resolved.Format, resolved.Theme, resolved.Sources)
	}
	return resolved, nil
}

func resolveBool(resolved *ResolvedConfig, name, envKey string, cliSet, cliVal bool, dst *bool) {
	if cliSet {
		*dst = cliVal
		resolved.Sources[name] = SourceCLI
		return
	}
	if v := getEnvBool(envKey); v != nil {
		*dst = *v
		resolved.Sources[name] = SourceEnv
	}
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set to a parseable value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validateResolvedConfig(cfg *ResolvedConfig) error {
	switch cfg.Format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return fmt.Errorf("invalid format: %s (must be: json, yaml, text)", cfg.Format)
	}
	switch cfg.Theme {
	case ThemeDefault, ThemeMono:
	default:
		return fmt.Errorf("invalid theme: %s (must be: default, mono)", cfg.Theme)
	}
	return nil
}
