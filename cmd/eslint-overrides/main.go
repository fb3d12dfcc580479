// eslint-overrides turns ESLint findings into override blocks that switch off
// every rule that fired, so a legacy codebase can adopt a stricter config
// without fixing everything first.
//
// Usage:
//
//	eslint . -f json | eslint-overrides
//	eslint . -f @microsoft/eslint-formatter-sarif | eslint-overrides
//
// Files that fired exactly the same set of rules share one block:
//
//	[{"files":["a.js","b.js"],"rules":{"no-console":"off","no-unused-vars":"off"}}]
//
// Paths under the working directory are made relative to it. The output is
// meant to be pasted into the "overrides" list of an .eslintrc.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/eslintkit/internal/config"
	"github.com/dkoosis/eslintkit/internal/detect"
	"github.com/dkoosis/eslintkit/pkg/eslint"
	"github.com/dkoosis/eslintkit/pkg/mapper"
	"github.com/dkoosis/eslintkit/pkg/overrides"
	"github.com/dkoosis/eslintkit/pkg/sarif"
)

const usage = "Usage: eslint ... -f json | eslint-overrides"

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, workDirPrefix()))
}

// run reads one report from stdin and writes the overrides to stdout.
// Exit codes: 0 success, 1 no input, 2 unreadable or malformed input.
func run(stdin io.Reader, stdout, stderr io.Writer, prefix string) int {
	if isTTYReader(stdin) {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "eslint-overrides: reading stdin: %v\n", err)
		return 2
	}

	reports, err := parseInput(input)
	if errors.Is(err, eslint.ErrNoInput) {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "eslint-overrides: %v\n", err)
		return 2
	}

	agg := overrides.NewAggregator(prefix)
	agg.AddAll(reports)

	if config.Debug() {
		s := agg.Stats()
		fmt.Fprintf(stderr, "[DEBUG run] files=%d suppressed=%d clean=%d groups=%d prefix=%q\n",
			s.Files, s.Suppressed, s.Clean, s.Groups, prefix)
	}

	if err := overrides.Write(stdout, agg.Groups()); err != nil {
		fmt.Fprintf(stderr, "eslint-overrides: %v\n", err)
		return 2
	}
	return 0
}

// parseInput detects the report format and converts it to file reports.
func parseInput(input []byte) ([]eslint.FileReport, error) {
	if len(bytes.TrimSpace(input)) == 0 {
		return nil, eslint.ErrNoInput
	}

	switch detect.Sniff(input) {
	case detect.ESLintJSON:
		return eslint.ReadBytes(input)
	case detect.SARIF:
		doc, err := sarif.ReadBytes(input)
		if err != nil {
			return nil, &eslint.FormatError{Err: err}
		}
		return mapper.FromSARIF(doc), nil
	default:
		return nil, &eslint.FormatError{Err: errors.New("unrecognized input (expected eslint -f json or SARIF)")}
	}
}

// isTTYReader reports whether r is an interactive terminal, i.e. nothing was
// piped in.
func isTTYReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// workDirPrefix returns the working directory with a trailing separator, or
// "" when it cannot be determined.
func workDirPrefix() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd + string(os.PathSeparator)
}
