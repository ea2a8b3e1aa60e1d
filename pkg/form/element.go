package form

import "strings"

// Control types recognised by the validator and the bundled glue packages.
// Any other string is accepted and treated as a single-value text control.
const (
	TypeText     = "text"
	TypeTextArea = "textarea"
	TypeNumber   = "number"
	TypeRange    = "range"
	TypeCheckbox = "checkbox"
	TypeRadio    = "radio"
	TypeEmail    = "email"
	TypeURL      = "url"
	TypePassword = "password"
)

// Constraint attribute names mirrored from HTML form controls.
const (
	AttrMinLength = "minlength"
	AttrMaxLength = "maxlength"
	AttrMin       = "min"
	AttrMax       = "max"
	AttrStep      = "step"
	AttrLabel     = "label"
)

// Element is a single form control.
type Element interface {
	Name() string
	Type() string
	Value() string
	Required() bool
	Checked() bool
	// Attr returns a constraint attribute and whether it is present.
	Attr(name string) (string, bool)
}

// Form exposes the named controls of a form in document order.
type Form interface {
	Elements() []Element
}

// ElementsNamed returns every element of f named name, in document order.
func ElementsNamed(f Form, name string) []Element {
	if f == nil {
		return nil
	}
	var out []Element
	for _, el := range f.Elements() {
		if el != nil && el.Name() == name {
			out = append(out, el)
		}
	}
	return out
}

// IsCheckbox reports whether el is a checkbox control.
func IsCheckbox(el Element) bool {
	return el != nil && strings.EqualFold(el.Type(), TypeCheckbox)
}

// IsNumeric reports whether el is a numeric control.
func IsNumeric(el Element) bool {
	if el == nil {
		return false
	}
	switch strings.ToLower(el.Type()) {
	case TypeNumber, TypeRange:
		return true
	default:
		return false
	}
}
