// Package validator implements fluent, stateful validation of form fields.
//
// A FormValidator wraps a form.Form and lazily materializes one field
// validator per field name. The concrete validator is selected from the shape
// of the named controls (see KindOf):
//
//   - a checkbox, or a set of same-named checkboxes, yields a GroupValidator
//   - a numeric control (number, range) yields a NumberValidator
//   - anything else yields a StringValidator
//
// Rule methods append human-readable messages to the validator's error list
// and return the validator so calls can be chained:
//
//	name, err := validator.FieldAs[*validator.StringValidator](v, "name")
//	if err != nil {
//	    return err
//	}
//	name.AsString().Required("Name is required").MinLength(2)
//
// Errors accumulate across rules within a chain and are cleared only when the
// chain is restarted by re-entering the same kind (AsString on a string
// validator, AsNumber on a number validator, either on a group). Entering the
// other kind returns a new validator bound to the same control and leaves the
// cached one untouched.
//
// Form-level queries (Validate, ValidateField, AllValidity) read the current
// error lists of the validators materialized so far. They never re-run rules
// and never consider fields that were not requested through Field.
package validator
