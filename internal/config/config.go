package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/eslintkit/pkg/eslintconfig"
)

// FileName is the name of the config file looked up on disk.
const FileName = ".eslintcfg.yaml"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Themes for the text format.
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// AppConfig is the content of .eslintcfg.yaml. Option fields are pointers so
// that a file can leave a feature unset rather than forcing it off.
type AppConfig struct {
	TypeScript *bool  `yaml:"typescript"`
	Node       *bool  `yaml:"node"`
	React      *bool  `yaml:"react"`
	Jest       *bool  `yaml:"jest"`
	Cypress    *bool  `yaml:"cypress"`
	Format     string `yaml:"format"`
	Theme      string `yaml:"theme"`

	path string
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *AppConfig) Path() string { return c.path }

// Debug reports whether debug output is enabled.
func Debug() bool {
	return os.Getenv("ESLINTKIT_DEBUG") != ""
}

// LoadConfig loads .eslintcfg.yaml. A missing file yields an empty config;
// a file that exists but cannot be read or parsed is an error.
func LoadConfig() (*AppConfig, error) {
	configPath := getConfigPath()
	if configPath == "" {
		if Debug() {
			fmt.Fprintln(os.Stderr, "[DEBUG LoadConfig] No config file found, using defaults only.")
		}
		return &AppConfig{}, nil
	}
	return LoadFile(configPath)
}

// LoadFile parses the config file at path.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.path = path

	if Debug() {
		fmt.Fprintf(os.Stderr, "[DEBUG LoadConfig] Loaded config from %s.\n", path)
	}
	return &cfg, nil
}

// apply copies the options the file sets onto opts.
func (c *AppConfig) apply(opts *eslintconfig.Options, sources map[string]string) {
	set := func(name string, v *bool, dst *bool) {
		if v != nil {
			*dst = *v
			sources[name] = SourceFile
		}
	}
	set("typescript", c.TypeScript, &opts.TypeScript)
	set("node", c.Node, &opts.Node)
	set("react", c.React, &opts.React)
	set("jest", c.Jest, &opts.Jest)
	set("cypress", c.Cypress, &opts.Cypress)
}

// getConfigPath finds the config file. It checks the working directory
// first, then the user config dir.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		if Debug() {
			abs, _ := filepath.Abs(FileName)
			fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] Using local config file: %s\n", abs)
		}
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		if Debug() {
			fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] UserConfigDir unusable. Error: %v, Path: '%s'\n", err, configHome)
		}
		return ""
	}

	xdgPath := filepath.Join(configHome, "eslintkit", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		if Debug() {
			fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] Using XDG config file: %s\n", xdgPath)
		}
		return xdgPath
	}
	return ""
}
