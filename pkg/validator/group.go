package validator

import "github.com/goliatone/go-formvalidator/pkg/form"

// GroupValidator chains rules for a set of same-named checkboxes treated as
// one multi-value field. Both chain entry points keep the group kind.
type GroupValidator struct {
	members []form.Element
	errs    errorList
}

func newGroupValidator(members []form.Element) *GroupValidator {
	return &GroupValidator{members: append([]form.Element(nil), members...)}
}

func (v *GroupValidator) Name() string     { return v.Element().Name() }
func (v *GroupValidator) Kind() Kind       { return KindGroup }
func (v *GroupValidator) Errors() []string { return v.errs.snapshot() }
func (v *GroupValidator) sealed()          {}

// Element returns the first member of the group.
func (v *GroupValidator) Element() form.Element {
	return v.members[0]
}

// Value returns the value attribute of the first member.
func (v *GroupValidator) Value() string {
	return v.Element().Value()
}

// Members returns the group controls in document order.
func (v *GroupValidator) Members() []form.Element {
	return append([]form.Element(nil), v.members...)
}

// Checked returns the value attributes of the checked members in document
// order.
func (v *GroupValidator) Checked() []string {
	var out []string
	for _, el := range v.members {
		if el.Checked() {
			out = append(out, el.Value())
		}
	}
	return out
}

// AsString starts a fresh chain: accumulated errors are cleared.
func (v *GroupValidator) AsString() *GroupValidator {
	v.errs.reset()
	return v
}

// AsNumber starts a fresh chain: accumulated errors are cleared.
func (v *GroupValidator) AsNumber() *GroupValidator {
	v.errs.reset()
	return v
}

// Required fails when no member is checked.
func (v *GroupValidator) Required(message ...string) *GroupValidator {
	if len(v.Checked()) == 0 {
		v.errs.push(pick(message, MessageGroupRequired))
	}
	return v
}

// Custom fails when fn reports false for the checked values. A nil fn is
// ignored.
func (v *GroupValidator) Custom(fn func(values []string) bool, message string) *GroupValidator {
	if fn != nil && !fn(v.Checked()) {
		v.errs.push(pick([]string{message}, MessageCustom))
	}
	return v
}
