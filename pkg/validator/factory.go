package validator

import "github.com/goliatone/go-formvalidator/pkg/form"

// KindOf selects the validator kind for el given the elements sharing its
// name (el included). Checkboxes form a group, a lone numeric control is a
// number, and everything else, including unknown control types and
// multi-node radio lists, is a string.
func KindOf(el form.Element, siblings []form.Element) Kind {
	if form.IsCheckbox(el) {
		return KindGroup
	}
	if len(siblings) > 1 {
		return KindString
	}
	if form.IsNumeric(el) {
		return KindNumber
	}
	return KindString
}

// NewFieldValidator builds the validator for el. Group members and radio
// list members are looked up by name in f; a nil f binds el alone.
func NewFieldValidator(el form.Element, f form.Form) FieldValidator {
	siblings := form.ElementsNamed(f, el.Name())
	if len(siblings) == 0 {
		siblings = []form.Element{el}
	}
	return build(KindOf(el, siblings), siblings)
}

func build(kind Kind, nodes []form.Element) FieldValidator {
	switch kind {
	case KindGroup:
		return newGroupValidator(nodes)
	case KindNumber:
		return newNumberValidator(nodes[0])
	default:
		if len(nodes) > 1 {
			return newStringValidator(radioList(nodes))
		}
		return newStringValidator(nodes[0])
	}
}

// radioList presents same-named non-checkbox controls as one element whose
// value is the value of the checked member.
type radioList []form.Element

func (l radioList) Name() string { return l[0].Name() }
func (l radioList) Type() string { return l[0].Type() }

func (l radioList) Value() string {
	for _, el := range l {
		if el.Checked() {
			return el.Value()
		}
	}
	return ""
}

func (l radioList) Required() bool {
	for _, el := range l {
		if el.Required() {
			return true
		}
	}
	return false
}

func (l radioList) Checked() bool {
	for _, el := range l {
		if el.Checked() {
			return true
		}
	}
	return false
}

func (l radioList) Attr(name string) (string, bool) {
	return l[0].Attr(name)
}
