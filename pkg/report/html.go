package report

import (
	"embed"
	"fmt"
	"html"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.tpl
var templateFS embed.FS

const reportTemplate = "templates/report.html.tpl"

var (
	templateOnce sync.Once
	compiled     *pongo2.Template
	compileErr   error
)

func htmlTemplate() (*pongo2.Template, error) {
	templateOnce.Do(func() {
		set := pongo2.NewSet("report", pongo2.NewFSLoader(templateFS))
		compiled, compileErr = set.FromFile(reportTemplate)
	})
	return compiled, compileErr
}

// HTML writes r as an HTML fragment. Messages are stripped of markup before
// rendering and escaped by the template.
func (r Report) HTML(w io.Writer) error {
	tmpl, err := htmlTemplate()
	if err != nil {
		return fmt.Errorf("report: load template: %w", err)
	}
	if err := tmpl.ExecuteWriter(pongo2.Context{"report": r.sanitized()}, w); err != nil {
		return fmt.Errorf("report: render html: %w", err)
	}
	return nil
}

// sanitized returns a copy of r with every message passed through the strict
// policy. bluemonday re-encodes entities, which the template would escape a
// second time, so they are decoded here.
func (r Report) sanitized() Report {
	out := r
	out.FormErrors = unescapeAll(sanitizeMessages(r.FormErrors))
	out.Fields = make([]Field, len(r.Fields))
	for i, field := range r.Fields {
		field.Errors = unescapeAll(sanitizeMessages(field.Errors))
		out.Fields[i] = field
	}
	return out
}

func unescapeAll(messages []string) []string {
	for i, message := range messages {
		messages[i] = html.UnescapeString(message)
	}
	return messages
}
