// Package render draws a human-readable summary of an ESLint configuration
// for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/eslintkit/pkg/eslintconfig"
)

const maxNameWidth = 60

// Terminal renders configuration summaries as styled text via lipgloss.
type Terminal struct {
	theme Theme
	width int
	title cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, title: cases.Title(language.English)}
}

// Render summarizes cfg, built from opts, section by section.
func (t *Terminal) Render(opts eslintconfig.Options, cfg eslintconfig.Config) string {
	sections := []string{
		t.renderOptions(opts),
		t.renderList("extends", cfg.Extends),
		t.renderList("plugins", cfg.Plugins),
		t.renderRules("rules", cfg.Rules),
		t.renderOverrides(cfg.Overrides),
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) heading(name string, count int) string {
	h := t.theme.Bold.Render(t.title.String(name))
	if count >= 0 {
		h += " " + t.theme.Muted.Render(fmt.Sprintf("(%d)", count))
	}
	return h + "\n"
}

func (t *Terminal) renderOptions(opts eslintconfig.Options) string {
	var sb strings.Builder
	sb.WriteString(t.heading("options", -1))
	for _, o := range []struct {
		name string
		on   bool
	}{
		{"typescript", opts.TypeScript},
		{"node", opts.Node},
		{"react", opts.React},
		{"jest", opts.Jest},
		{"cypress", opts.Cypress},
	} {
		sb.WriteString("  ")
		if o.on {
			sb.WriteString(t.theme.Success.Render(t.theme.Icons.On + " " + o.name))
		} else {
			sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Off + " " + o.name))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderList(name string, items []string) string {
	var sb strings.Builder
	sb.WriteString(t.heading(name, len(items)))
	for _, item := range items {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Bullet))
		sb.WriteString(" ")
		sb.WriteString(t.theme.Primary.Render(t.truncate(item)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderRules(name string, rules eslintconfig.Rules) string {
	ids := rules.IDs()

	nameWidth := 0
	for _, id := range ids {
		if w := runewidth.StringWidth(id); w > nameWidth {
			nameWidth = w
		}
	}
	nameWidth = min(nameWidth, maxNameWidth, t.width-12)

	var sb strings.Builder
	sb.WriteString(t.heading(name, len(ids)))
	for _, id := range ids {
		entry, _ := rules.Get(id)
		sb.WriteString("  ")
		sb.WriteString(runewidth.FillRight(runewidth.Truncate(id, nameWidth, "..."), nameWidth))
		sb.WriteString("  ")
		sb.WriteString(t.levelStyle(entry.Level))
		if len(entry.Options) > 0 {
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf(" +%d opt", len(entry.Options))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderOverrides(overrides []eslintconfig.Override) string {
	var sb strings.Builder
	sb.WriteString(t.heading("overrides", len(overrides)))
	for _, o := range overrides {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Primary.Render(t.truncate(strings.Join(o.Files, ", "))))
		sb.WriteString("\n")
		for _, id := range o.Rules.IDs() {
			entry, _ := o.Rules.Get(id)
			sb.WriteString("    ")
			sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Bullet))
			sb.WriteString(" ")
			sb.WriteString(t.truncate(id))
			sb.WriteString(" ")
			sb.WriteString(t.levelStyle(entry.Level))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (t *Terminal) levelStyle(level eslintconfig.Level) string {
	switch level {
	case eslintconfig.Error:
		return t.theme.Error.Render(string(level))
	case eslintconfig.Warn:
		return t.theme.Warning.Render(string(level))
	default:
		return t.theme.Muted.Render(string(level))
	}
}

func (t *Terminal) truncate(s string) string {
	limit := t.width - 8
	if limit < 10 {
		limit = 10
	}
	return runewidth.Truncate(s, limit, "...")
}
