package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type textStyles struct {
	header  lipgloss.Style
	valid   lipgloss.Style
	invalid lipgloss.Style
	name    lipgloss.Style
	message lipgloss.Style
}

// Styles are bound to w so colours only appear on terminals that support
// them.
func newTextStyles(w io.Writer) textStyles {
	renderer := lipgloss.NewRenderer(w)
	return textStyles{
		header:  renderer.NewStyle().Bold(true),
		valid:   renderer.NewStyle().Foreground(lipgloss.Color("42")),
		invalid: renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		name:    renderer.NewStyle().Foreground(lipgloss.Color("39")),
		message: renderer.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Text writes a human readable summary of r.
func (r Report) Text(w io.Writer) error {
	styles := newTextStyles(w)
	var b strings.Builder

	title := "form"
	if r.Form != "" {
		title = r.Form
	}
	status := styles.valid.Render("valid")
	if !r.Valid {
		status = styles.invalid.Render("invalid")
	}
	fmt.Fprintf(&b, "%s: %s\n", styles.header.Render(title), status)

	for _, message := range r.FormErrors {
		fmt.Fprintf(&b, "  %s %s\n", styles.invalid.Render("!"), styles.message.Render(message))
	}
	for _, field := range r.Fields {
		mark := styles.valid.Render("✓")
		if !field.Valid {
			mark = styles.invalid.Render("✗")
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, styles.name.Render(field.Name))
		for _, message := range field.Errors {
			fmt.Fprintf(&b, "    - %s\n", styles.message.Render(message))
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write text: %w", err)
	}
	return nil
}
