package eslintconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reactOnly = []string{"airbnb", "airbnb-typescript", "airbnb/hooks", "prettier/react"}

func TestBuild_TypeScriptWithoutReact(t *testing.T) {
	t.Parallel()

	cfg := Build(Options{TypeScript: true})

	assert.Equal(t, "airbnb-typescript/base", cfg.Extends[0])
	for _, name := range reactOnly {
		assert.NotContains(t, cfg.Extends, name)
	}
	assert.Contains(t, cfg.Extends, "plugin:@typescript-eslint/recommended-requiring-type-checking")
	assert.Contains(t, cfg.Extends, "prettier/@typescript-eslint")
	assert.Equal(t, []string{"@typescript-eslint/eslint-plugin", "promise", "unicorn"}, cfg.Plugins)
}

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	cfg := Build(Options{})

	assert.Equal(t, []string{
		"airbnb-base",
		"plugin:import/errors",
		"plugin:import/warnings",
		"plugin:promise/recommended",
		"plugin:unicorn/recommended",
		"plugin:prettier/recommended",
	}, cfg.Extends)
	assert.Equal(t, []string{"promise", "unicorn"}, cfg.Plugins)
	assert.Equal(t, Env{}, cfg.Env)
	assert.Equal(t, Parser, cfg.Parser)
	assert.Equal(t, []string{"./tsconfig.json"}, cfg.ParserOptions.Project)
	assert.NotContains(t, cfg.Settings, "react")
	assert.Contains(t, cfg.Settings, "import/resolver")
}

func TestBaseStyleGuide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts Options
		want string
	}{
		{Options{}, "airbnb-base"},
		{Options{React: true}, "airbnb"},
		{Options{TypeScript: true}, "airbnb-typescript/base"},
		{Options{TypeScript: true, React: true}, "airbnb-typescript"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseStyleGuide(tt.opts), "%+v", tt.opts)
		assert.Equal(t, tt.want, Build(tt.opts).Extends[0])
	}
}

func TestBuild_EveryFlagCombinationIsWellFormed(t *testing.T) {
	t.Parallel()

	for mask := 0; mask < 32; mask++ {
		opts := Options{
			TypeScript: mask&1 != 0,
			Node:       mask&2 != 0,
			React:      mask&4 != 0,
			Jest:       mask&8 != 0,
			Cypress:    mask&16 != 0,
		}
		cfg := Build(opts)

		for _, name := range append(append([]string{}, cfg.Extends...), cfg.Plugins...) {
			assert.NotEmpty(t, name, "%+v", opts)
		}
		assert.Equal(t, opts.React || opts.Cypress, cfg.Env.Browser)
		assert.Equal(t, opts.Cypress, cfg.Env.ES6)
		assert.Equal(t, opts.Node, cfg.Env.Node)
		assert.Equal(t, opts.Jest, cfg.Env.Jest)
		assert.Equal(t, opts.Jest, contains(cfg.Extends, "plugin:jest/recommended"))
		assert.Equal(t, opts.Jest, contains(cfg.Plugins, "jest"))
		assert.Equal(t, opts.Cypress, contains(cfg.Extends, "plugin:cypress/recommended"))
		assert.Equal(t, opts.Cypress, contains(cfg.Plugins, "cypress"))
		assert.Equal(t, opts.React, contains(cfg.Plugins, "react-hooks"))

		for _, o := range cfg.Overrides {
			assert.NotEmpty(t, o.Files)
			assert.NotZero(t, o.Rules.Len())
		}
	}
}

func TestBuild_IsPure(t *testing.T) {
	t.Parallel()

	opts := Options{TypeScript: true, React: true, Jest: true}
	a := Build(opts)
	b := Build(opts)
	require.Equal(t, a, b)

	a.Extends[0] = "mutated"
	a.Settings["react"] = "mutated"
	a.Rules.Set("curly", Off)
	assert.Equal(t, Build(opts), b)
}

func TestBuild_ModeDependentRuleIDs(t *testing.T) {
	t.Parallel()

	js := Build(Options{})
	ts := Build(Options{TypeScript: true})

	for _, id := range []string{"no-unused-vars", "no-non-null-assertion", "no-use-before-define"} {
		_, inJS := js.Rules.Get(id)
		_, inTS := ts.Rules.Get(id)
		assert.True(t, inJS, id)
		assert.False(t, inTS, id)

		_, prefixedInTS := ts.Rules.Get(RuleID(id, true))
		_, prefixedInJS := js.Rules.Get(RuleID(id, true))
		assert.True(t, prefixedInTS, id)
		assert.False(t, prefixedInJS, id)
	}

	shadow, ok := ts.Rules.Get("no-shadow")
	require.True(t, ok)
	assert.Equal(t, Off, shadow.Level)
	shadow, ok = js.Rules.Get("no-shadow")
	require.True(t, ok)
	assert.Equal(t, Warn, shadow.Level)

	ubd, _ := ts.Rules.Get("@typescript-eslint/no-use-before-define")
	assert.Equal(t, true, ubd.Options[0].(map[string]any)["typedefs"])
	ubd, _ = js.Rules.Get("no-use-before-define")
	assert.NotContains(t, ubd.Options[0].(map[string]any), "typedefs")
}

func TestRuleID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "@typescript-eslint/no-unused-vars", RuleID("no-unused-vars", true))
	assert.Equal(t, "no-unused-vars", RuleID("no-unused-vars", false))
	assert.Equal(t, "curly", RuleID("curly", true))
}

func TestBuild_ReactRules(t *testing.T) {
	t.Parallel()

	cfg := Build(Options{React: true})
	_, ok := cfg.Rules.Get("react/prop-types")
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"version": "detect"}, cfg.Settings["react"])

	_, ok = Build(Options{}).Rules.Get("react/prop-types")
	assert.False(t, ok)
}

func TestBuild_RuleOrderFollowsBaseline(t *testing.T) {
	t.Parallel()

	ids := Build(Options{TypeScript: true, React: true}).Rules.IDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, "curly", ids[0])
	assert.Equal(t, "react/no-unescaped-entities", ids[len(ids)-1])
	assert.Less(t, indexOf(ids, "radix"), indexOf(ids, "@typescript-eslint/no-floating-promises"))
	assert.Less(t, indexOf(ids, "@typescript-eslint/no-unsafe-return"), indexOf(ids, "no-restricted-syntax"))
	assert.Less(t, indexOf(ids, "no-shadow"), indexOf(ids, "@typescript-eslint/no-shadow"))
}

func TestBuild_Overrides(t *testing.T) {
	t.Parallel()

	files := func(cfg Config) [][]string {
		var out [][]string
		for _, o := range cfg.Overrides {
			out = append(out, o.Files)
		}
		return out
	}

	js := Build(Options{})
	assert.Len(t, js.Overrides, 5)
	assert.NotContains(t, files(js), []string{"*.ts", "*.tsx"})

	ts := Build(Options{TypeScript: true})
	assert.Len(t, ts.Overrides, 7)
	assert.Equal(t, []string{"*.d.ts"}, ts.Overrides[0].Files)
	assert.Equal(t, []string{"*.ts", "*.tsx"}, ts.Overrides[4].Files)

	gqlJS := js.Overrides[3]
	assert.Equal(t, []string{"src/api/**/module.{js,ts}"}, gqlJS.Files)
	assert.Equal(t, []string{"unicorn/no-null"}, gqlJS.Rules.IDs())

	gqlTS := ts.Overrides[5]
	assert.Equal(t, []string{"@typescript-eslint/explicit-module-boundary-types", "unicorn/no-null"}, gqlTS.Rules.IDs())
}

func TestPreset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Build(Options{TypeScript: true, Node: true, Jest: true, Cypress: true}), Preset(false))
	cfg := Preset(true)
	assert.Equal(t, "airbnb-typescript", cfg.Extends[0])
	assert.True(t, cfg.Env.Browser)
	assert.True(t, PresetOptions(false).TypeScript)
	assert.False(t, PresetOptions(false).React)
}

func contains(list []string, s string) bool {
	return indexOf(list, s) >= 0
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
