package validator

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-formvalidator/pkg/form"
)

// ElementAttributes is the informational snapshot of a control taken when
// the FormValidator is constructed. It does not drive validation.
type ElementAttributes struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// ElementValidity is a point-in-time view of one materialized field.
type ElementValidity struct {
	Name    string       `json:"name"`
	Kind    Kind         `json:"kind"`
	Element form.Element `json:"-"`
	IsValid bool         `json:"isValid"`
	Errors  []string     `json:"errors"`
	Value   string       `json:"value"`
	// Values holds the checked values of a group, nil for other kinds.
	Values []string `json:"values,omitempty"`
}

// FormValidator owns a form and the field validators materialized for it.
// Field validators are created on first request and reused for the lifetime
// of the FormValidator. The cache is safe for concurrent use; the rule
// chains of an individual field validator are not.
type FormValidator struct {
	form     form.Form
	elements []ElementAttributes
	logger   Logger

	mu     sync.Mutex
	fields map[string]FieldValidator
	order  []string
}

// New constructs a FormValidator for f.
func New(f form.Form, options ...Option) (*FormValidator, error) {
	if f == nil {
		return nil, ErrNilForm
	}

	v := &FormValidator{
		form:   f,
		logger: nopLogger{},
		fields: make(map[string]FieldValidator),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}

	for _, el := range f.Elements() {
		if el == nil {
			continue
		}
		v.elements = append(v.elements, ElementAttributes{
			Name:     el.Name(),
			Type:     el.Type(),
			Required: el.Required(),
		})
	}
	return v, nil
}

// Form returns the wrapped form.
func (v *FormValidator) Form() form.Form {
	return v.form
}

// Elements returns a copy of the attribute snapshot taken at construction.
func (v *FormValidator) Elements() []ElementAttributes {
	return append([]ElementAttributes(nil), v.elements...)
}

// Field returns the validator for name, materializing it on first use. It
// fails with a *FieldNotFoundError when the form has no control named name.
func (v *FormValidator) Field(name string) (FieldValidator, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if fv, ok := v.fields[name]; ok {
		return fv, nil
	}

	nodes := form.ElementsNamed(v.form, name)
	if len(nodes) == 0 {
		v.logger.Debug("field not found", "field", name)
		return nil, &FieldNotFoundError{Name: name}
	}

	kind := KindOf(nodes[0], nodes)
	fv := build(kind, nodes)
	v.fields[name] = fv
	v.order = append(v.order, name)
	v.logger.Debug("field materialized", "field", name, "kind", kind.String(), "controls", len(nodes))
	return fv, nil
}

// FieldAs returns the validator for name as T, failing with ErrKindMismatch
// when the materialized validator has another type.
func FieldAs[T FieldValidator](v *FormValidator, name string) (T, error) {
	var zero T
	fv, err := v.Field(name)
	if err != nil {
		return zero, err
	}
	typed, ok := fv.(T)
	if !ok {
		return zero, fmt.Errorf("%w: field %q is a %s field", ErrKindMismatch, name, fv.Kind())
	}
	return typed, nil
}

// Validate reports whether every materialized field currently has no errors.
// Fields never requested through Field are not considered.
func (v *FormValidator) Validate() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, name := range v.order {
		if len(v.fields[name].Errors()) > 0 {
			return false
		}
	}
	return true
}

// ValidateField returns the snapshot of a materialized field. The boolean is
// false when name has not been requested through Field.
func (v *FormValidator) ValidateField(name string) (ElementValidity, bool) {
	v.mu.Lock()
	fv, ok := v.fields[name]
	v.mu.Unlock()
	if !ok {
		return ElementValidity{}, false
	}
	return snapshotOf(name, fv), true
}

// AllValidity returns snapshots of every materialized field in the order the
// fields were first requested.
func (v *FormValidator) AllValidity() []ElementValidity {
	v.mu.Lock()
	names := append([]string(nil), v.order...)
	v.mu.Unlock()

	out := make([]ElementValidity, 0, len(names))
	for _, name := range names {
		if validity, ok := v.ValidateField(name); ok {
			out = append(out, validity)
		}
	}
	return out
}

func snapshotOf(name string, fv FieldValidator) ElementValidity {
	errs := fv.Errors()
	validity := ElementValidity{
		Name:    name,
		Kind:    fv.Kind(),
		Element: fv.Element(),
		IsValid: len(errs) == 0,
		Errors:  errs,
		Value:   fv.Value(),
	}
	if group, ok := fv.(*GroupValidator); ok {
		validity.Values = group.Checked()
	}
	return validity
}
