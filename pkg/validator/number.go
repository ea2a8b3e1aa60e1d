package validator

import (
	"math"

	"github.com/goliatone/go-formvalidator/pkg/form"
)

// NumberValidator chains rules for numeric controls. Every rule reads the
// live value and coerces it with browser number semantics; a value that does
// not coerce is NaN.
type NumberValidator struct {
	element form.Element
	errs    errorList
}

func newNumberValidator(el form.Element) *NumberValidator {
	return &NumberValidator{element: el}
}

func (v *NumberValidator) Name() string          { return v.element.Name() }
func (v *NumberValidator) Kind() Kind            { return KindNumber }
func (v *NumberValidator) Element() form.Element { return v.element }
func (v *NumberValidator) Value() string         { return v.element.Value() }
func (v *NumberValidator) Errors() []string      { return v.errs.snapshot() }
func (v *NumberValidator) sealed()               {}

// Number returns the coerced value, NaN when the value is not numeric.
func (v *NumberValidator) Number() float64 {
	return toNumber(v.Value())
}

// AsNumber starts a fresh chain: accumulated errors are cleared.
func (v *NumberValidator) AsNumber() *NumberValidator {
	v.errs.reset()
	return v
}

// AsString returns a new StringValidator bound to the same control. The
// receiver keeps its errors.
func (v *NumberValidator) AsString() *StringValidator {
	return newStringValidator(v.element)
}

// Required fails when the raw value is the empty string. Whitespace is not
// trimmed.
func (v *NumberValidator) Required(message ...string) *NumberValidator {
	if v.Value() == "" {
		v.errs.push(pick(message, MessageRequired))
	}
	return v
}

// Min fails when the value is below n. Non-numeric values are skipped.
func (v *NumberValidator) Min(n float64, message ...string) *NumberValidator {
	if num := v.Number(); !math.IsNaN(num) && num < n {
		v.errs.push(pick(message, minMessage(n)))
	}
	return v
}

// Max fails when the value is above n. Non-numeric values are skipped.
func (v *NumberValidator) Max(n float64, message ...string) *NumberValidator {
	if num := v.Number(); !math.IsNaN(num) && num > n {
		v.errs.push(pick(message, maxMessage(n)))
	}
	return v
}

// Integer fails unless the value is a finite whole number. Non-numeric
// values fail.
func (v *NumberValidator) Integer(message ...string) *NumberValidator {
	if num := v.Number(); math.IsNaN(num) || math.IsInf(num, 0) || num != math.Trunc(num) {
		v.errs.push(pick(message, MessageInteger))
	}
	return v
}

// Positive fails unless the value is greater than zero. Non-numeric values
// fail.
func (v *NumberValidator) Positive(message ...string) *NumberValidator {
	if num := v.Number(); math.IsNaN(num) || num <= 0 {
		v.errs.push(pick(message, MessagePositive))
	}
	return v
}

// Custom fails when fn reports false for the coerced value, which may be NaN.
// A nil fn is ignored.
func (v *NumberValidator) Custom(fn func(value float64) bool, message string) *NumberValidator {
	if fn != nil && !fn(v.Number()) {
		v.errs.push(pick([]string{message}, MessageCustom))
	}
	return v
}
