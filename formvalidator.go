// Package formvalidator wires the form loaders, the validator, the
// attribute-driven constraint chains and the report builder behind a few
// entry points. Callers wanting finer control use the packages under pkg/
// directly.
package formvalidator

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-formvalidator/pkg/constraints"
	"github.com/goliatone/go-formvalidator/pkg/form"
	"github.com/goliatone/go-formvalidator/pkg/form/openapi"
	"github.com/goliatone/go-formvalidator/pkg/report"
	"github.com/goliatone/go-formvalidator/pkg/validator"
)

// FormValidator aliases validator.FormValidator.
type FormValidator = validator.FormValidator

// FieldValidator aliases validator.FieldValidator.
type FieldValidator = validator.FieldValidator

// Report aliases report.Report.
type Report = report.Report

// New constructs a FormValidator for f.
func New(f form.Form, options ...validator.Option) (*FormValidator, error) {
	return validator.New(f, options...)
}

// LoadForm reads a JSON or YAML form definition and, when valuesPath is not
// empty, fills it with the values document at that path.
func LoadForm(path, valuesPath string) (*form.Static, error) {
	static, err := form.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := fill(static, valuesPath); err != nil {
		return nil, err
	}
	return static, nil
}

// LoadOpenAPIForm builds the form of operationID from the OpenAPI document at
// path and fills it like LoadForm.
func LoadOpenAPIForm(ctx context.Context, path, operationID, valuesPath string) (*form.Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formvalidator: read %s: %w", path, err)
	}
	static, err := openapi.FromDocument(ctx, data, operationID)
	if err != nil {
		return nil, fmt.Errorf("formvalidator: %s: %w", path, err)
	}
	if err := fill(static, valuesPath); err != nil {
		return nil, err
	}
	return static, nil
}

// Check runs the constraint chain of every field of f and returns the
// resulting report.
func Check(f form.Form, options ...validator.Option) (Report, error) {
	v, err := validator.New(f, options...)
	if err != nil {
		return Report{}, err
	}
	if _, err := constraints.ApplyAll(v); err != nil {
		return Report{}, err
	}
	return report.Build(v), nil
}

func fill(static *form.Static, valuesPath string) error {
	if valuesPath == "" {
		return nil
	}
	values, err := form.LoadValues(valuesPath)
	if err != nil {
		return err
	}
	return static.Fill(values)
}
