// Package eslintconfig builds ESLint configuration records from a handful of
// feature flags.
//
// The record has the shape ESLint's config loader expects from a
// .eslintrc.json or .eslintrc.yml file: parser, parserOptions, env, extends,
// plugins, settings, rules and overrides.
package eslintconfig

// Options selects which parts of the configuration are switched on.
// The zero value is a plain JavaScript project.
type Options struct {
	TypeScript bool `json:"typescript" yaml:"typescript"`
	Node       bool `json:"node" yaml:"node"`
	React      bool `json:"react" yaml:"react"`
	Jest       bool `json:"jest" yaml:"jest"`
	Cypress    bool `json:"cypress" yaml:"cypress"`
}

// Config is a complete ESLint configuration record.
type Config struct {
	Parser        string         `json:"parser" yaml:"parser"`
	ParserOptions ParserOptions  `json:"parserOptions" yaml:"parserOptions"`
	Env           Env            `json:"env" yaml:"env"`
	Extends       []string       `json:"extends" yaml:"extends"`
	Plugins       []string       `json:"plugins" yaml:"plugins"`
	Settings      map[string]any `json:"settings" yaml:"settings"`
	Rules         Rules          `json:"rules" yaml:"rules"`
	Overrides     []Override     `json:"overrides" yaml:"overrides"`
}

// ParserOptions points the parser at the project's type declarations.
type ParserOptions struct {
	Project []string `json:"project" yaml:"project"`
}

// Env lists the predefined global environments.
type Env struct {
	Browser bool `json:"browser" yaml:"browser"`
	ES6     bool `json:"es6" yaml:"es6"`
	Node    bool `json:"node" yaml:"node"`
	Jest    bool `json:"jest" yaml:"jest"`
}

// Override scopes a rule mapping to the files matching any of Files.
type Override struct {
	Files []string `json:"files" yaml:"files"`
	Rules Rules    `json:"rules" yaml:"rules"`
}
