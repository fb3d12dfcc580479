package eslintconfig

// Parser is the parser every configuration uses.
const Parser = "@typescript-eslint/parser"

// TSConfigPath is the type-declaration manifest handed to the parser.
const TSConfigPath = "./tsconfig.json"

// Build returns the configuration for opts. It has no side effects; calling
// it twice with the same options yields equal records that share no state.
func Build(opts Options) Config {
	return Config{
		Parser:        Parser,
		ParserOptions: ParserOptions{Project: []string{TSConfigPath}},
		Env: Env{
			Browser: opts.React || opts.Cypress,
			ES6:     opts.Cypress,
			Node:    opts.Node,
			Jest:    opts.Jest,
		},
		Extends:   extends(opts),
		Plugins:   plugins(opts),
		Settings:  settings(opts),
		Rules:     rules(opts),
		Overrides: overrides(opts),
	}
}

// Preset returns the configuration for a project that uses every feature,
// leaving only React up to the caller.
func Preset(react bool) Config {
	return Build(PresetOptions(react))
}

// PresetOptions returns the options Preset builds with.
func PresetOptions(react bool) Options {
	return Options{
		TypeScript: true,
		Node:       true,
		React:      react,
		Jest:       true,
		Cypress:    true,
	}
}

// BaseStyleGuide returns the style guide the configuration extends first.
func BaseStyleGuide(opts Options) string {
	switch {
	case opts.TypeScript && opts.React:
		return "airbnb-typescript"
	case opts.TypeScript:
		return "airbnb-typescript/base"
	case opts.React:
		return "airbnb"
	default:
		return "airbnb-base"
	}
}

// list accumulates names, skipping the ones whose condition is false.
type list []string

func (l *list) add(name string) { *l = append(*l, name) }

func (l *list) addIf(cond bool, name string) {
	if cond {
		l.add(name)
	}
}

func extends(opts Options) []string {
	var l list
	l.add(BaseStyleGuide(opts))
	l.addIf(opts.React, "airbnb/hooks")
	l.add("plugin:import/errors")
	l.add("plugin:import/warnings")
	l.addIf(opts.TypeScript, "plugin:import/typescript")
	l.addIf(opts.TypeScript, "plugin:@typescript-eslint/eslint-recommended")
	l.addIf(opts.TypeScript, "plugin:@typescript-eslint/recommended")
	l.addIf(opts.TypeScript, "plugin:@typescript-eslint/recommended-requiring-type-checking")
	l.addIf(opts.Jest, "plugin:jest/recommended")
	l.addIf(opts.Cypress, "plugin:cypress/recommended")
	l.add("plugin:promise/recommended")
	l.add("plugin:unicorn/recommended")
	l.add("plugin:prettier/recommended")
	l.addIf(opts.React, "prettier/react")
	l.addIf(opts.TypeScript, "prettier/@typescript-eslint")
	return l
}

func plugins(opts Options) []string {
	var l list
	l.addIf(opts.TypeScript, "@typescript-eslint/eslint-plugin")
	l.addIf(opts.React, "react-hooks")
	l.addIf(opts.Jest, "jest")
	l.addIf(opts.Cypress, "cypress")
	l.add("promise")
	l.add("unicorn")
	return l
}

func settings(opts Options) map[string]any {
	s := map[string]any{
		// Loads <rootdir>/tsconfig.json into the import resolver.
		"import/resolver": map[string]any{
			"typescript": map[string]any{},
		},
	}
	if opts.React {
		s["react"] = map[string]any{"version": "detect"}
	}
	return s
}
