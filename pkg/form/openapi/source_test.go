package openapi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formvalidator/pkg/form"
	"github.com/goliatone/go-formvalidator/pkg/form/openapi"
)

const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Signup", "version": "1.0.0" },
  "paths": {
    "/members": {
      "post": {
        "operationId": "createMember",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name", "age"],
                "properties": {
                  "name": { "type": "string", "minLength": 2, "maxLength": 40, "title": "Full name" },
                  "email": { "type": "string", "format": "email" },
                  "age": { "type": "integer", "minimum": 18, "maximum": 99 },
                  "newsletter": { "type": "boolean", "default": true },
                  "interests": {
                    "type": "array",
                    "items": { "type": "string", "enum": ["music", "art"] },
                    "default": ["art"]
                  },
                  "address": { "type": "object", "properties": { "city": { "type": "string" } } }
                }
              }
            }
          }
        },
        "responses": { "201": { "description": "created" } }
      },
      "get": {
        "responses": { "200": { "description": "ok" } }
      }
    }
  }
}`

type control struct {
	Name     string
	Type     string
	Value    string
	Required bool
	Checked  bool
	Attrs    map[string]string
}

func TestFromDocumentMapsRequestBody(t *testing.T) {
	t.Parallel()

	static, err := openapi.FromDocument(context.Background(), []byte(document), "createMember")
	if err != nil {
		t.Fatalf("from document: %v", err)
	}
	if static.Name() != "createMember" {
		t.Fatalf("expected form named after the operation, got %q", static.Name())
	}

	var got []control
	for _, el := range static.Elements() {
		c := el.(*form.Control)
		got = append(got, control{
			Name: c.Name(), Type: c.Type(), Value: c.Value(),
			Required: c.Required(), Checked: c.Checked(), Attrs: c.Attrs(),
		})
	}

	want := []control{
		{Name: "age", Type: "number", Required: true, Attrs: map[string]string{"min": "18", "max": "99", "step": "1"}},
		{Name: "email", Type: "email"},
		{Name: "interests", Type: "checkbox", Value: "music"},
		{Name: "interests", Type: "checkbox", Value: "art", Checked: true},
		{Name: "name", Type: "text", Required: true, Attrs: map[string]string{"minlength": "2", "maxlength": "40", "label": "Full name"}},
		{Name: "newsletter", Type: "checkbox", Value: "true", Checked: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("controls mismatch (-want +got):\n%s", diff)
	}
}

func TestFromDocumentErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if _, err := openapi.FromDocument(ctx, []byte(document), "missing"); !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := openapi.FromDocument(ctx, []byte(document), "get:/members"); !errors.Is(err, openapi.ErrNoRequestBody) {
		t.Fatalf("expected ErrNoRequestBody, got %v", err)
	}
	if _, err := openapi.FromDocument(ctx, nil, "createMember"); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestOperations(t *testing.T) {
	t.Parallel()

	ids, err := openapi.Operations(context.Background(), []byte(document))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if diff := cmp.Diff([]string{"createMember", "get:/members"}, ids); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}
