package constraints

import (
	"fmt"

	"github.com/goliatone/go-formvalidator/pkg/form"
	"github.com/goliatone/go-formvalidator/pkg/validator"
)

// Apply restarts the chain of fv and runs the rules its control declares.
// Number rules are skipped for string fields, length rules for number fields.
func Apply(fv validator.FieldValidator) {
	switch v := fv.(type) {
	case *validator.StringValidator:
		applyString(v, Collect(v.Element()))
	case *validator.NumberValidator:
		applyNumber(v, Collect(v.Element()))
	case *validator.GroupValidator:
		applyGroup(v, CollectGroup(v.Members()))
	}
}

// ApplyField materializes name on v and applies its rules.
func ApplyField(v *validator.FormValidator, name string) (validator.FieldValidator, error) {
	fv, err := v.Field(name)
	if err != nil {
		return nil, fmt.Errorf("constraints: %w", err)
	}
	Apply(fv)
	return fv, nil
}

// ApplyAll applies the rules of every distinct field of the form in document
// order and reports whether the form is valid.
func ApplyAll(v *validator.FormValidator) (bool, error) {
	for _, name := range FieldNames(v.Form()) {
		if _, err := ApplyField(v, name); err != nil {
			return false, err
		}
	}
	return v.Validate(), nil
}

// FieldNames returns the distinct control names of f in document order.
func FieldNames(f form.Form) []string {
	if f == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var names []string
	for _, el := range f.Elements() {
		if el == nil || el.Name() == "" {
			continue
		}
		if _, ok := seen[el.Name()]; ok {
			continue
		}
		seen[el.Name()] = struct{}{}
		names = append(names, el.Name())
	}
	return names
}

func applyString(v *validator.StringValidator, rules Rules) {
	v.AsString()
	if rules.Required {
		v.Required()
	}
	if rules.MinLength != nil && v.Value() != "" {
		v.MinLength(*rules.MinLength)
	}
	if rules.MaxLength != nil {
		v.MaxLength(*rules.MaxLength)
	}
	if rules.Email {
		v.Email()
	}
	if rules.URL {
		v.URL()
	}
}

func applyNumber(v *validator.NumberValidator, rules Rules) {
	v.AsNumber()
	if rules.Required {
		v.Required()
	}
	// Browsers leave optional empty number inputs unconstrained.
	if v.Value() == "" {
		return
	}
	if rules.Integer {
		v.Integer()
	}
	if rules.Min != nil {
		v.Min(*rules.Min)
	}
	if rules.Max != nil {
		v.Max(*rules.Max)
	}
}

func applyGroup(v *validator.GroupValidator, rules Rules) {
	v.AsString()
	if rules.Required {
		v.Required()
	}
}
