// Package claphelp printer.
// This file drives expansion and width-adaptive rendering of the help
// sections.

package claphelp

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"

	"github.com/TheBearodactyl/clap-help/internal/expand"
	"github.com/TheBearodactyl/clap-help/internal/terminal"
)

// Printer renders the help of a command.
//
// A Printer is built once per help invocation from a command description.
// Before the render call the caller may swap templates, reorder or extend
// the section keys, override variables, and replace the skin. Rendering
// writes styled text to the configured writer, os.Stdout by default.
type Printer struct {
	styles    ansi.StyleConfig
	env       *expand.Env
	keys      []string
	templates map[string]string
	out       io.Writer
	widthFn   func() int

	// FullWidth disables content-width unification: each section is
	// printed immediately at the full terminal width.
	FullWidth bool

	// MaxWidth caps the render width when positive. Useful on very wide
	// terminals where full-width lines are hard to read; 100 or 150 are
	// reasonable caps.
	MaxWidth int
}

// NewPrinter builds a Printer for the command with the default templates
// and a skin matching the detected terminal background.
func NewPrinter(cmd Command) *Printer {
	return &Printer{
		styles:    DefaultStyleConfig(),
		env:       buildEnv(cmd),
		keys:      append([]string(nil), TemplateKeys...),
		templates: defaultTemplates(),
		out:       os.Stdout,
		widthFn:   terminal.Width,
	}
}

// WithPreset switches the skin to a catalog preset.
func (p *Printer) WithPreset(preset StylePreset) *Printer {
	p.styles = preset.StyleConfig()
	return p
}

// WithStyleConfig uses the provided skin.
func (p *Printer) WithStyleConfig(cfg ansi.StyleConfig) *Printer {
	p.styles = cfg
	return p
}

// WithMaxWidth caps the render width.
func (p *Printer) WithMaxWidth(w int) *Printer {
	p.MaxWidth = w
	return p
}

// WithWriter redirects output, e.g. to a buffer in tests.
func (p *Printer) WithWriter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p.out = w

	return p
}

// Styles gives mutable access to the current skin so individual roles can
// be adjusted before rendering.
func (p *Printer) Styles() *ansi.StyleConfig {
	return &p.styles
}

// Expander gives mutable access to the variable environment, so callers
// can override variables or add new ones for their own templates.
func (p *Printer) Expander() *expand.Env {
	return p.env
}

// SetTemplate changes or adds a template.
func (p *Printer) SetTemplate(key, template string) {
	p.templates[key] = template
}

// With changes or adds a template, fluently.
func (p *Printer) With(key, template string) *Printer {
	p.SetTemplate(key, template)
	return p
}

// Without unsets a template. The key stays in the order list, so
// re-adding the template later restores the section in place.
func (p *Printer) Without(key string) *Printer {
	delete(p.templates, key)
	return p
}

// TemplateKeys gives mutable access to the ordered key list, so keys can
// be inserted, removed, duplicated or reordered. Keys without a matching
// template are skipped silently.
func (p *Printer) TemplateKeys() *[]string {
	return &p.keys
}

// PrintTemplate expands and prints one template against the printer's
// environment, independent of the key list.
func (p *Printer) PrintTemplate(template string) error {
	block, err := p.renderBlock(template, p.renderWidth())
	if err != nil {
		return err
	}

	_, err = io.WriteString(p.out, block)

	return err
}

// PrintHelp prints all configured sections in key order.
func (p *Printer) PrintHelp() error {
	if p.FullWidth {
		return p.printFullWidth()
	}

	return p.printContentWidth()
}

// printFullWidth streams each section at the full render width, with no
// cross-section width unification.
func (p *Printer) printFullWidth() error {
	width := p.renderWidth()

	for _, key := range p.keys {
		template, ok := p.templates[key]
		if !ok {
			continue
		}

		block, err := p.renderBlock(template, width)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(p.out, block); err != nil {
			return err
		}
	}

	return nil
}

// printContentWidth renders every section at the terminal width, measures
// the widest naturally-wrapped section, then re-renders everything at that
// unified width so all sections share a right margin. Content that cannot
// wrap, like a wide table or an unbroken long token, can measure past the
// terminal width; the unified width is clamped so the other sections are
// not stretched with it.
func (p *Printer) printContentWidth() error {
	width := p.renderWidth()

	var templates []string
	for _, key := range p.keys {
		if template, ok := p.templates[key]; ok {
			templates = append(templates, template)
		}
	}

	unified := 0
	for _, template := range templates {
		block, err := p.renderBlock(template, width)
		if err != nil {
			return err
		}

		if w := lipgloss.Width(block); w > unified {
			unified = w
		}
	}

	if unified > width {
		unified = width
	}

	for _, template := range templates {
		block, err := p.renderBlock(template, unified)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(p.out, block); err != nil {
			return err
		}
	}

	return nil
}

// renderWidth samples the terminal width, capped by MaxWidth when set.
// Sampling happens per render call so a resize between calls is honored.
func (p *Printer) renderWidth() int {
	width := p.widthFn()
	if p.MaxWidth > 0 && width > p.MaxWidth {
		width = p.MaxWidth
	}

	return width
}

// renderBlock expands one template and renders the result as styled
// markdown wrapped to the given width.
func (p *Printer) renderBlock(template string, width int) (string, error) {
	text := expand.Expand(template, p.env)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(p.styles),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(text)
}
