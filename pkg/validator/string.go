package validator

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formvalidator/pkg/form"
)

// emailPattern accepts printable ASCII without whitespace, a single "@" and a
// dot inside the domain with text on both sides.
var emailPattern = regexp.MustCompile(`^[!-?A-~]+@[!-?A-~]+\.[!-?A-~]+$`)

// hostRequiredSchemes lists schemes whose URLs are only absolute with a host.
var hostRequiredSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ws":    {},
	"wss":   {},
	"ftp":   {},
}

// StringValidator chains rules for single-value text controls.
type StringValidator struct {
	element form.Element
	errs    errorList
}

func newStringValidator(el form.Element) *StringValidator {
	return &StringValidator{element: el}
}

func (v *StringValidator) Name() string          { return v.element.Name() }
func (v *StringValidator) Kind() Kind            { return KindString }
func (v *StringValidator) Element() form.Element { return v.element }
func (v *StringValidator) Value() string         { return v.element.Value() }
func (v *StringValidator) Errors() []string      { return v.errs.snapshot() }
func (v *StringValidator) sealed()               {}

// AsString starts a fresh chain: accumulated errors are cleared.
func (v *StringValidator) AsString() *StringValidator {
	v.errs.reset()
	return v
}

// AsNumber returns a new NumberValidator bound to the same control. The
// receiver keeps its errors.
func (v *StringValidator) AsNumber() *NumberValidator {
	return newNumberValidator(v.element)
}

// Required fails when the value is empty after trimming whitespace.
func (v *StringValidator) Required(message ...string) *StringValidator {
	if strings.TrimSpace(v.Value()) == "" {
		v.errs.push(pick(message, MessageRequired))
	}
	return v
}

// MinLength fails when the value has fewer than n characters.
func (v *StringValidator) MinLength(n int, message ...string) *StringValidator {
	if utf8.RuneCountInString(v.Value()) < n {
		v.errs.push(pick(message, minLengthMessage(n)))
	}
	return v
}

// MaxLength fails when the value has more than n characters.
func (v *StringValidator) MaxLength(n int, message ...string) *StringValidator {
	if utf8.RuneCountInString(v.Value()) > n {
		v.errs.push(pick(message, maxLengthMessage(n)))
	}
	return v
}

// Email fails when a non-empty value is not an address of the form
// local@domain.tld. Empty values pass.
func (v *StringValidator) Email(message ...string) *StringValidator {
	value := v.Value()
	if value != "" && !emailPattern.MatchString(value) {
		v.errs.push(pick(message, MessageEmail))
	}
	return v
}

// URL fails when a non-empty value is not an absolute URL. Empty values pass.
func (v *StringValidator) URL(message ...string) *StringValidator {
	value := v.Value()
	if value != "" && !isAbsoluteURL(value) {
		v.errs.push(pick(message, MessageURL))
	}
	return v
}

// Custom fails when fn reports false for the current value. It runs for
// empty values too. A nil fn is ignored.
func (v *StringValidator) Custom(fn func(value string) bool, message string) *StringValidator {
	if fn != nil && !fn(v.Value()) {
		v.errs.push(pick([]string{message}, MessageCustom))
	}
	return v
}

func isAbsoluteURL(raw string) bool {
	if strings.TrimSpace(raw) != raw || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return false
	}
	if _, ok := hostRequiredSchemes[strings.ToLower(u.Scheme)]; ok && u.Host == "" {
		return false
	}
	return true
}
