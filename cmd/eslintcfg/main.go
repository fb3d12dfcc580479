// eslintcfg prints an ESLint configuration assembled from feature flags.
//
// Usage:
//
//	eslintcfg --typescript --react > .eslintrc.json
//	eslintcfg --node --jest --format yaml > .eslintrc.yml
//	eslintcfg preset --react --format text
//
// Unset flags fall back to ESLINTCFG_* environment variables, then to
// .eslintcfg.yaml (see internal/config).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/eslintkit/internal/config"
	"github.com/dkoosis/eslintkit/internal/version"
	"github.com/dkoosis/eslintkit/pkg/eslintconfig"
	"github.com/dkoosis/eslintkit/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "eslintcfg: %v\n", err)
		return 2
	}
	return 0
}

// outputFlags are shared by every command that prints a configuration.
type outputFlags struct {
	format string
	theme  string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", "", "output format: json, yaml, text (default json)")
	cmd.Flags().StringVar(&o.theme, "theme", "", "theme for text output: default, mono")
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		opts eslintconfig.Options
		out  outputFlags
	)

	cmd := &cobra.Command{
		Use:           "eslintcfg",
		Short:         "Print an ESLint configuration built from feature flags",
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := config.CliFlags{
				Options:       opts,
				Format:        out.format,
				Theme:         out.theme,
				TypeScriptSet: cmd.Flags().Changed("typescript"),
				NodeSet:       cmd.Flags().Changed("node"),
				ReactSet:      cmd.Flags().Changed("react"),
				JestSet:       cmd.Flags().Changed("jest"),
				CypressSet:    cmd.Flags().Changed("cypress"),
			}
			resolved, err := config.ResolveConfig(flags)
			if err != nil {
				return err
			}
			return write(stdout, resolved, resolved.Options)
		},
	}

	cmd.Flags().BoolVar(&opts.TypeScript, "typescript", false, "enable TypeScript rules and parser features")
	cmd.Flags().BoolVar(&opts.Node, "node", false, "enable the node environment")
	cmd.Flags().BoolVar(&opts.React, "react", false, "enable React and JSX rules")
	cmd.Flags().BoolVar(&opts.Jest, "jest", false, "enable Jest rules and environment")
	cmd.Flags().BoolVar(&opts.Cypress, "cypress", false, "enable Cypress rules and environment")
	out.register(cmd)

	cmd.AddCommand(newPresetCmd(stdout), newVersionCmd(stdout))
	return cmd
}

func newPresetCmd(stdout io.Writer) *cobra.Command {
	var (
		react bool
		out   outputFlags
	)

	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Print the all-features preset; only React is optional",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := config.ResolveConfig(config.CliFlags{
				Options:  eslintconfig.Options{React: react},
				ReactSet: cmd.Flags().Changed("react"),
				Format:   out.format,
				Theme:    out.theme,
			})
			if err != nil {
				return err
			}
			return write(stdout, resolved, eslintconfig.PresetOptions(resolved.Options.React))
		},
	}
	cmd.Flags().BoolVar(&react, "react", false, "enable React and JSX rules")
	out.register(cmd)
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(stdout, "eslintcfg %s\n", version.String())
		},
	}
}

// write prints the configuration for opts in the resolved format.
func write(w io.Writer, resolved *config.ResolvedConfig, opts eslintconfig.Options) error {
	cfg := eslintconfig.Build(opts)

	var data []byte
	var err error
	switch resolved.Format {
	case config.FormatYAML:
		data, err = eslintconfig.EncodeYAML(cfg)
	case config.FormatText:
		theme := render.ThemeByName(resolved.Theme)
		data = []byte(render.NewTerminal(theme, termWidth(w)).Render(opts, cfg))
	default:
		data, err = eslintconfig.EncodeJSON(cfg)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
