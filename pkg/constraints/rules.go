// Package constraints drives validator chains from the constraint attributes
// carried by form controls (required, minlength, maxlength, min, max, step and
// the email/url control types). It only uses the public validator API.
package constraints

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formvalidator/pkg/form"
)

// Rules is the set of constraints declared by one control or group.
type Rules struct {
	Required  bool
	Email     bool
	URL       bool
	Integer   bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Empty reports whether no constraint is declared.
func (r Rules) Empty() bool {
	return !r.Required && !r.Email && !r.URL && !r.Integer &&
		r.MinLength == nil && r.MaxLength == nil && r.Min == nil && r.Max == nil
}

// Collect reads the constraints of el. Malformed attribute values are
// ignored the way browsers ignore them.
func Collect(el form.Element) Rules {
	if el == nil {
		return Rules{}
	}
	rules := Rules{Required: el.Required()}
	switch strings.ToLower(el.Type()) {
	case form.TypeEmail:
		rules.Email = true
	case form.TypeURL:
		rules.URL = true
	}
	if val, ok := intAttr(el, form.AttrMinLength); ok {
		rules.MinLength = &val
	}
	if val, ok := intAttr(el, form.AttrMaxLength); ok {
		rules.MaxLength = &val
	}
	if val, ok := floatAttr(el, form.AttrMin); ok {
		rules.Min = &val
	}
	if val, ok := floatAttr(el, form.AttrMax); ok {
		rules.Max = &val
	}
	if step, ok := floatAttr(el, form.AttrStep); ok && step == 1 {
		rules.Integer = true
	}
	return rules
}

// CollectGroup merges the constraints of every member of a checkbox group:
// the group is required when any member is.
func CollectGroup(members []form.Element) Rules {
	var rules Rules
	for _, el := range members {
		if el != nil && el.Required() {
			rules.Required = true
		}
	}
	return rules
}

func intAttr(el form.Element, name string) (int, bool) {
	raw, ok := el.Attr(name)
	if !ok {
		return 0, false
	}
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

func floatAttr(el form.Element, name string) (float64, bool) {
	raw, ok := el.Attr(name)
	if !ok {
		return 0, false
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
