package eslintconfig

// modeRule is a rule whose id depends on whether TypeScript is enabled.
type modeRule struct {
	js string
	ts string
}

func (r modeRule) id(typescript bool) string {
	if typescript {
		return r.ts
	}
	return r.js
}

var (
	ruleNonNullAssertion = modeRule{js: "no-non-null-assertion", ts: "@typescript-eslint/no-non-null-assertion"}
	ruleUseBeforeDefine  = modeRule{js: "no-use-before-define", ts: "@typescript-eslint/no-use-before-define"}
	ruleUnusedVars       = modeRule{js: "no-unused-vars", ts: "@typescript-eslint/no-unused-vars"}
	ruleShadow           = modeRule{js: "no-shadow", ts: "@typescript-eslint/no-shadow"}
)

// RuleID resolves the id a mode-dependent rule goes by. Ids that do not
// depend on the mode are returned unchanged.
func RuleID(jsID string, typescript bool) string {
	for _, r := range []modeRule{ruleNonNullAssertion, ruleUseBeforeDefine, ruleUnusedVars, ruleShadow} {
		if r.js == jsID {
			return r.id(typescript)
		}
	}
	return jsID
}

type obj = map[string]any

// restrictedSyntax is airbnb's list without ForOfStatement: for await is
// worth keeping.
func restrictedSyntax() []any {
	return []any{
		obj{
			"selector": "ForInStatement",
			"message":  "for..in loops iterate over the entire prototype chain, which is virtually never what you want. Use Object.{keys,values,entries}, and iterate over the resulting array.",
		},
		obj{
			"selector": "LabeledStatement",
			"message":  "Labels are a form of GOTO; using them makes code confusing and hard to maintain and understand.",
		},
		obj{
			"selector": "WithStatement",
			"message":  "`with` is disallowed in strict mode because it makes code impossible to predict and optimize.",
		},
	}
}

func rules(opts Options) Rules {
	ts := opts.TypeScript
	var r Rules

	r.Set("curly", Error)
	r.Set("no-plusplus", Off)
	r.Set("no-prototype-builtins", Off)
	r.Set("import/prefer-default-export", Off)
	r.Set("import/no-default-export", Error)
	r.Set("import/order", Warn)
	r.Set("no-void", Error, obj{"allowAsStatement": true})
	r.Set("no-debugger", Warn)
	r.Set(ruleNonNullAssertion.id(ts), Off)
	r.Set("unicorn/no-reduce", Off)
	r.Set("max-classes-per-file", Off)
	r.Set("no-underscore-dangle", Off)
	// cause is what e.g. the Sentry SDK calls it.
	r.Set("unicorn/catch-error-name", Error, obj{"ignore": []string{"cause"}})
	r.Set("no-nested-ternary", Off)
	r.Set("unicorn/no-nested-ternary", Off)

	// Function hoisting is allowed.
	useBeforeDefine := obj{"functions": false, "classes": true, "variables": true}
	if ts {
		useBeforeDefine["typedefs"] = true
	}
	r.Set(ruleUseBeforeDefine.id(ts), Error, useBeforeDefine)

	r.Set(ruleUnusedVars.id(ts), Warn, obj{
		"argsIgnorePattern":  "^_",
		"vars":               "all",
		"args":               "after-used",
		"ignoreRestSiblings": true,
	})
	r.Set("unicorn/prevent-abbreviations", Off)
	r.Set("unicorn/filename-case", Off)
	r.Set("unicorn/no-abusive-eslint-disable", Off)
	r.Set("unicorn/no-for-loop", Off)
	r.Set("import/no-cycle", Off)
	r.Set("class-methods-use-this", Off)
	r.Set("unicorn/no-useless-undefined", Off)
	r.Set("unicorn/no-fn-reference-in-iterator", Off)
	r.Set("radix", Off)

	if ts {
		typescriptRules(&r)
	}

	r.Set("no-restricted-syntax", Error, restrictedSyntax()...)

	// trx is the conventional name inside transact(trx, trx => ...).
	if ts {
		r.Set("no-shadow", Off)
	}
	r.Set(ruleShadow.id(ts), Warn, obj{"allow": []string{"trx"}})

	if opts.React {
		reactRules(&r)
	}

	return r
}

func typescriptRules(r *Rules) {
	r.Set("@typescript-eslint/no-floating-promises", Warn)
	r.Set("@typescript-eslint/explicit-function-return-type", Off)
	// https://github.com/typescript-eslint/typescript-eslint/issues/522
	r.Set("@typescript-eslint/unbound-method", Off)
	r.Set("@typescript-eslint/no-inferrable-types", Warn, obj{"ignoreParameters": true})
	r.Set("@typescript-eslint/restrict-template-expressions", Off)
	r.Set("@typescript-eslint/no-unsafe-member-access", Off)
	r.Set("@typescript-eslint/no-unsafe-assignment", Off)
	r.Set("@typescript-eslint/no-unsafe-call", Off)
	r.Set("@typescript-eslint/no-unsafe-return", Off)
}

func reactRules(r *Rules) {
	r.Set("react/no-array-index-key", Off)
	r.Set("react/prop-types", Off)
	r.Set("react/destructuring-assignment", Off)
	r.Set("react/jsx-filename-extension", Off)
	r.Set("react/jsx-props-no-spreading", Off)
	// https://github.com/evcohen/eslint-plugin-jsx-a11y/issues/402#issuecomment-368305051
	r.Set("jsx-a11y/anchor-is-valid", Error, obj{
		"components":  []string{"Link"},
		"specialLink": []string{"hrefLeft", "hrefRight"},
		"aspects":     []string{"invalidHref", "preferButton"},
	})
	r.Set("react/no-unescaped-entities", Off)
}

func overrides(opts Options) []Override {
	ts := opts.TypeScript
	var out []Override
	add := func(cond bool, files []string, set func(r *Rules)) {
		if !cond {
			return
		}
		o := Override{Files: files}
		set(&o.Rules)
		out = append(out, o)
	}

	// Triple-slash directives in declaration files.
	add(true, []string{"*.d.ts"}, func(r *Rules) {
		r.Set("spaced-comment", Off)
	})

	// Plain node scripts that are not transpiled still use require.
	add(ts, []string{".*.js", "*.js", "*.*.js", "database/**/*.js", "ops/**/*.js"}, func(r *Rules) {
		r.Set("@typescript-eslint/no-var-requires", Off)
	})

	// Knex generates anonymous migration functions.
	add(true, []string{"database/migrations/*"}, func(r *Rules) {
		r.Set("func-names", Off)
	})

	add(true, []string{
		"**/{test,test_utils,test-utils,test_modules,test-modules}/**/*",
		"**.test.{js,jsx,ts,tsx}",
	}, func(r *Rules) {
		r.Set("import/no-extraneous-dependencies", Error, obj{"devDependencies": true})
		r.Set("@typescript-eslint/no-explicit-any", Off)
	})

	add(ts, []string{"*.ts", "*.tsx"}, func(r *Rules) {
		r.Set("@typescript-eslint/explicit-member-accessibility", Error, obj{"accessibility": "no-public"})
	})

	// GraphQL schema modules.
	add(true, []string{"src/api/**/module.{js,ts}"}, func(r *Rules) {
		if ts {
			r.Set("@typescript-eslint/explicit-module-boundary-types", Off)
		}
		r.Set("unicorn/no-null", Off)
	})

	add(true, []string{"*.integration.test.*"}, func(r *Rules) {
		r.Set("unicorn/no-null", Off)
	})

	return out
}
