package form_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formvalidator/pkg/form"
)

const signupYAML = `
name: signup
fields:
  - name: name
    type: text
    required: true
    minlength: 2
    label: Your name
  - name: age
    type: number
    min: 18
    max: 120.5
    value: 21
  - name: interests
    type: checkbox
    options: [music, art, code]
    value: [art]
  - name: plan
    type: radio
    options: [free, pro]
    value: pro
`

type controlSnapshot struct {
	Name     string
	Type     string
	Value    string
	Required bool
	Checked  bool
	Attrs    map[string]string
}

func snapshot(f *form.Static) []controlSnapshot {
	var out []controlSnapshot
	for _, name := range f.Names() {
		for _, c := range f.Controls(name) {
			out = append(out, controlSnapshot{
				Name:     c.Name(),
				Type:     c.Type(),
				Value:    c.Value(),
				Required: c.Required(),
				Checked:  c.Checked(),
				Attrs:    c.Attrs(),
			})
		}
	}
	return out
}

func TestParseYAMLDefinition(t *testing.T) {
	t.Parallel()

	static, err := form.Parse([]byte(signupYAML), "signup.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if static.Name() != "signup" {
		t.Fatalf("expected form name signup, got %q", static.Name())
	}

	want := []controlSnapshot{
		{Name: "name", Type: "text", Required: true, Attrs: map[string]string{"minlength": "2", "label": "Your name"}},
		{Name: "age", Type: "number", Value: "21", Attrs: map[string]string{"min": "18", "max": "120.5"}},
		{Name: "interests", Type: "checkbox", Value: "music"},
		{Name: "interests", Type: "checkbox", Value: "art", Checked: true},
		{Name: "interests", Type: "checkbox", Value: "code"},
		{Name: "plan", Type: "radio", Value: "free"},
		{Name: "plan", Type: "radio", Value: "pro", Checked: true},
	}
	if diff := cmp.Diff(want, snapshot(static)); diff != "" {
		t.Fatalf("controls mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONDefinitionFromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"forms/contact.json": &fstest.MapFile{Data: []byte(`{
  "name": "contact",
  "fields": [
    {"name": "email", "type": "email", "required": true},
    {"name": "about", "type": "textarea", "maxlength": 140}
  ]
}`)},
	}

	static, err := form.LoadFS(fsys, "forms/contact.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"email", "about"}, static.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	about, _ := static.Control("about")
	if got, _ := about.Attr("maxlength"); got != "140" {
		t.Fatalf("expected maxlength 140, got %q", got)
	}
}

func TestParseRejectsInvalidDefinitions(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input string
		want  string
	}{
		"empty":       {input: "  ", want: "is empty"},
		"garbage":     {input: "fields: [", want: "invalid JSON or YAML"},
		"empty name":  {input: "fields:\n  - type: text\n", want: "empty name"},
		"duplicate":   {input: "fields:\n  - name: a\n  - name: a\n", want: `duplicate field "a"`},
		"bad options": {input: "fields:\n  - name: a\n    type: number\n    options: [x]\n", want: "options are only supported"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := form.Parse([]byte(tc.input), "bad.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestStaticFill(t *testing.T) {
	t.Parallel()

	static, err := form.Parse([]byte(signupYAML), "signup.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	err = static.Fill(map[string]any{
		"name":      "Alice",
		"age":       30,
		"interests": []any{"music", "code"},
		"plan":      "free",
		"unknown":   "x",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown") {
		t.Fatalf("expected unknown field error, got %v", err)
	}

	name, _ := static.Control("name")
	if name.Value() != "Alice" {
		t.Fatalf("expected name to be filled, got %q", name.Value())
	}
	age, _ := static.Control("age")
	if age.Value() != "30" {
		t.Fatalf("expected age 30, got %q", age.Value())
	}

	var checked []string
	for _, c := range static.Controls("interests") {
		if c.Checked() {
			checked = append(checked, c.Value())
		}
	}
	if diff := cmp.Diff([]string{"music", "code"}, checked); diff != "" {
		t.Fatalf("checked mismatch (-want +got):\n%s", diff)
	}
	for _, c := range static.Controls("plan") {
		if c.Checked() != (c.Value() == "free") {
			t.Fatalf("radio %q checked=%v", c.Value(), c.Checked())
		}
	}
}

func TestElementsNamed(t *testing.T) {
	t.Parallel()

	static := form.New("f",
		form.NewControl("a", form.TypeCheckbox, form.WithValue("1")),
		form.NewControl("b", ""),
		form.NewControl("a", form.TypeCheckbox, form.WithValue("2")),
	)

	got := form.ElementsNamed(static, "a")
	if len(got) != 2 || got[0].Value() != "1" || got[1].Value() != "2" {
		t.Fatalf("unexpected elements: %#v", got)
	}
	b, _ := static.Control("b")
	if b.Type() != form.TypeText {
		t.Fatalf("expected empty type to default to text, got %q", b.Type())
	}
	if !form.IsCheckbox(got[0]) || form.IsNumeric(got[0]) {
		t.Fatalf("classification mismatch for checkbox")
	}
}
