package validator

import "github.com/goliatone/go-formvalidator/pkg/form"

// FieldValidator is implemented by StringValidator, NumberValidator and
// GroupValidator. The set is closed; use a type switch or FieldAs to reach
// the rule methods of a specific kind.
type FieldValidator interface {
	// Name is the field identity the validator is bound to.
	Name() string
	Kind() Kind
	// Element is the bound control; for groups it is the first member.
	Element() form.Element
	// Value is the live value of the bound control.
	Value() string
	// Errors returns a copy of the accumulated messages in rule order.
	Errors() []string

	sealed()
}

// errorList is the accumulator each field validator owns exclusively.
type errorList struct {
	messages []string
}

func (l *errorList) push(message string) {
	l.messages = append(l.messages, message)
}

func (l *errorList) reset() {
	l.messages = nil
}

func (l *errorList) snapshot() []string {
	return append([]string{}, l.messages...)
}
