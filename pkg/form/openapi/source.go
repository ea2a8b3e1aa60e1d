// Package openapi builds in-memory forms from OpenAPI 3 request bodies so the
// constraints declared by an API can be checked with the same rule chains
// used for hand-written form definitions. Only top-level scalar, boolean and
// enum-array properties become controls; nested objects are skipped.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formvalidator/pkg/form"
)

var (
	// ErrOperationNotFound is returned when the requested operation id is not
	// declared by the document.
	ErrOperationNotFound = errors.New("openapi form: operation not found")
	// ErrNoRequestBody is returned when the operation has no object request body.
	ErrNoRequestBody = errors.New("openapi form: operation has no object request body")
)

// FromDocument loads an OpenAPI document and converts the request body of
// operationID into a form named after the operation.
func FromDocument(ctx context.Context, data []byte, operationID string) (*form.Static, error) {
	doc, err := load(ctx, data)
	if err != nil {
		return nil, err
	}

	operation := findOperation(doc, strings.TrimSpace(operationID))
	if operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	return buildForm(operationID, schema), nil
}

// Operations lists the operation ids declared by the document in sorted
// order. Operations without an explicit id are reported as "method:path".
func Operations(ctx context.Context, data []byte) ([]string, error) {
	doc, err := load(ctx, data)
	if err != nil {
		return nil, err
	}
	var ids []string
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			ids = append(ids, operationKey(method, path, op))
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi form: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi form: load document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("openapi form: document does not contain any paths")
	}
	return doc, nil
}

func findOperation(doc *openapi3.T, id string) *openapi3.Operation {
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && operationKey(method, path, op) == id {
				return op
			}
		}
	}
	return nil
}

func operationKey(method, path string, op *openapi3.Operation) string {
	if op.OperationID != "" {
		return op.OperationID
	}
	return strings.ToLower(method) + ":" + path
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "multipart/form-data", "application/json"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildForm(name string, schema *openapi3.Schema) *form.Static {
	required := make(map[string]struct{}, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for prop := range schema.Properties {
		names = append(names, prop)
	}
	sort.Strings(names)

	static := form.New(name)
	for _, prop := range names {
		ref := schema.Properties[prop]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[prop]
		static.Append(convertProperty(prop, ref.Value, isRequired)...)
	}
	return static
}

func convertProperty(name string, src *openapi3.Schema, required bool) []*form.Control {
	opts := baseOptions(src, required)

	switch firstSchemaType(src.Type) {
	case openapi3.TypeString:
		if len(src.Enum) > 0 {
			return enumControls(name, form.TypeRadio, src.Enum, stringDefault(src.Default), opts)
		}
		opts = append(opts, form.WithValue(stringDefault(src.Default)))
		if src.MinLength != 0 {
			opts = append(opts, form.WithAttr(form.AttrMinLength, strconv.FormatUint(src.MinLength, 10)))
		}
		if src.MaxLength != nil {
			opts = append(opts, form.WithAttr(form.AttrMaxLength, strconv.FormatUint(*src.MaxLength, 10)))
		}
		return []*form.Control{form.NewControl(name, stringControlType(src.Format), opts...)}

	case openapi3.TypeInteger, openapi3.TypeNumber:
		opts = append(opts, form.WithValue(stringDefault(src.Default)))
		if src.Min != nil {
			opts = append(opts, form.WithAttr(form.AttrMin, strconv.FormatFloat(*src.Min, 'f', -1, 64)))
		}
		if src.Max != nil {
			opts = append(opts, form.WithAttr(form.AttrMax, strconv.FormatFloat(*src.Max, 'f', -1, 64)))
		}
		if firstSchemaType(src.Type) == openapi3.TypeInteger {
			opts = append(opts, form.WithAttr(form.AttrStep, "1"))
		}
		return []*form.Control{form.NewControl(name, form.TypeNumber, opts...)}

	case openapi3.TypeBoolean:
		checked, _ := src.Default.(bool)
		opts = append(opts, form.WithValue("true"), form.WithChecked(checked))
		return []*form.Control{form.NewControl(name, form.TypeCheckbox, opts...)}

	case openapi3.TypeArray:
		if src.Items == nil || src.Items.Value == nil || len(src.Items.Value.Enum) == 0 {
			return nil
		}
		return enumControls(name, form.TypeCheckbox, src.Items.Value.Enum, src.Default, opts)
	}
	return nil
}

func baseOptions(src *openapi3.Schema, required bool) []form.ControlOption {
	var opts []form.ControlOption
	if required {
		opts = append(opts, form.WithRequired())
	}
	label := strings.TrimSpace(src.Title)
	if label == "" {
		label = strings.TrimSpace(src.Description)
	}
	if label != "" {
		opts = append(opts, form.WithAttr(form.AttrLabel, label))
	}
	return opts
}

func enumControls(name, typ string, enum []any, defaults any, base []form.ControlOption) []*form.Control {
	selected := make(map[string]struct{})
	switch typed := defaults.(type) {
	case []any:
		for _, v := range typed {
			selected[fmt.Sprint(v)] = struct{}{}
		}
	case nil:
	default:
		selected[fmt.Sprint(typed)] = struct{}{}
	}

	controls := make([]*form.Control, 0, len(enum))
	for _, option := range enum {
		value := fmt.Sprint(option)
		_, checked := selected[value]
		opts := append(append([]form.ControlOption(nil), base...), form.WithValue(value), form.WithChecked(checked))
		controls = append(controls, form.NewControl(name, typ, opts...))
	}
	return controls
}

func stringControlType(format string) string {
	switch strings.ToLower(format) {
	case "email":
		return form.TypeEmail
	case "uri", "url":
		return form.TypeURL
	case "textarea":
		return form.TypeTextArea
	case "password":
		return form.TypePassword
	default:
		return form.TypeText
	}
}

func stringDefault(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
