// Package report rolls the validity snapshots of a FormValidator into a
// Report and writes it as styled text, JSON or HTML.
package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/goliatone/go-formvalidator/pkg/validator"
)

// Format selects the output of Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("report: unknown format %q", raw)
	}
}

// Field is the reported state of one materialized field.
type Field struct {
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Valid  bool     `json:"valid"`
	Value  string   `json:"value"`
	Values []string `json:"values,omitempty"`
	Errors []string `json:"errors"`
}

// Report is the outcome of a validation pass.
type Report struct {
	Form       string   `json:"form,omitempty"`
	Valid      bool     `json:"valid"`
	Fields     []Field  `json:"fields"`
	FormErrors []string `json:"formErrors,omitempty"`
}

type namedForm interface {
	Name() string
}

// Build snapshots every materialized field of v in first-access order.
func Build(v *validator.FormValidator) Report {
	out := Report{Valid: v.Validate(), Fields: []Field{}}
	if named, ok := v.Form().(namedForm); ok {
		out.Form = named.Name()
	}
	for _, validity := range v.AllValidity() {
		out.Fields = append(out.Fields, Field{
			Name:   validity.Name,
			Kind:   validity.Kind.String(),
			Valid:  validity.IsValid,
			Value:  validity.Value,
			Values: validity.Values,
			Errors: validity.Errors,
		})
	}
	return out
}

// Merge folds server-side errors into the report. Field messages are appended
// to the matching field, which is added when it was not materialized, and
// form-level messages invalidate the whole report.
func (r Report) Merge(mapping ErrorMapping) Report {
	out := r
	out.Fields = slices.Clone(r.Fields)
	for _, name := range sortedKeys(mapping.Fields) {
		messages := mapping.Fields[name]
		idx := slices.IndexFunc(out.Fields, func(f Field) bool { return f.Name == name })
		if idx < 0 {
			out.Fields = append(out.Fields, Field{Name: name, Kind: validator.KindString.String()})
			idx = len(out.Fields) - 1
		}
		field := out.Fields[idx]
		field.Errors = MergeFormErrors(field.Errors, messages...)
		field.Valid = len(field.Errors) == 0
		out.Fields[idx] = field
	}
	out.FormErrors = MergeFormErrors(r.FormErrors, mapping.Form...)

	out.Valid = len(out.FormErrors) == 0
	for _, field := range out.Fields {
		if !field.Valid {
			out.Valid = false
		}
	}
	return out
}

// Errors returns the messages of every invalid field keyed by name.
func (r Report) Errors() map[string][]string {
	out := make(map[string][]string)
	for _, field := range r.Fields {
		if len(field.Errors) > 0 {
			out[field.Name] = slices.Clone(field.Errors)
		}
	}
	return out
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatJSON:
		return r.JSON(w)
	case FormatHTML:
		return r.HTML(w)
	case FormatText, "":
		return r.Text(w)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
