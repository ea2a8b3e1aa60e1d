package form

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Control is a mutable in-memory form control. Its value and checked state
// can be changed after the form is handed to a validator; validators always
// read the live state.
type Control struct {
	name     string
	typ      string
	value    string
	required bool
	checked  bool
	attrs    map[string]string
}

// ControlOption configures a Control at construction time.
type ControlOption func(*Control)

// WithValue seeds the control value.
func WithValue(value string) ControlOption {
	return func(c *Control) {
		c.value = value
	}
}

// WithRequired marks the control as required.
func WithRequired() ControlOption {
	return func(c *Control) {
		c.required = true
	}
}

// WithChecked seeds the checked state of checkbox and radio controls.
func WithChecked(checked bool) ControlOption {
	return func(c *Control) {
		c.checked = checked
	}
}

// WithAttr sets a constraint attribute (minlength, max, ...).
func WithAttr(name, value string) ControlOption {
	return func(c *Control) {
		c.SetAttr(name, value)
	}
}

// NewControl constructs a control. An empty type defaults to text.
func NewControl(name, typ string, options ...ControlOption) *Control {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		typ = TypeText
	}
	c := &Control{
		name: strings.TrimSpace(name),
		typ:  typ,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

func (c *Control) Name() string   { return c.name }
func (c *Control) Type() string   { return c.typ }
func (c *Control) Value() string  { return c.value }
func (c *Control) Required() bool { return c.required }
func (c *Control) Checked() bool  { return c.checked }

// Attr returns a constraint attribute.
func (c *Control) Attr(name string) (string, bool) {
	if len(c.attrs) == 0 {
		return "", false
	}
	value, ok := c.attrs[strings.ToLower(name)]
	return value, ok
}

// Attrs returns a copy of the constraint attributes.
func (c *Control) Attrs() map[string]string {
	if len(c.attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.attrs))
	for k, v := range c.attrs {
		out[k] = v
	}
	return out
}

// SetValue replaces the control value.
func (c *Control) SetValue(value string) {
	c.value = value
}

// SetChecked replaces the checked state.
func (c *Control) SetChecked(checked bool) {
	c.checked = checked
}

// SetRequired replaces the required flag.
func (c *Control) SetRequired(required bool) {
	c.required = required
}

// SetAttr sets or, with an empty value, removes a constraint attribute.
func (c *Control) SetAttr(name, value string) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	if value == "" {
		delete(c.attrs, key)
		return
	}
	if c.attrs == nil {
		c.attrs = make(map[string]string)
	}
	c.attrs[key] = value
}

// Static is an in-memory Form backed by Controls.
type Static struct {
	name     string
	controls []*Control
}

// New constructs a Static form holding controls in the given order.
func New(name string, controls ...*Control) *Static {
	s := &Static{name: strings.TrimSpace(name)}
	s.Append(controls...)
	return s
}

// Name returns the form name.
func (s *Static) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Append adds controls to the end of the form. Nil controls are ignored.
func (s *Static) Append(controls ...*Control) {
	for _, c := range controls {
		if c == nil {
			continue
		}
		s.controls = append(s.controls, c)
	}
}

// Elements implements Form.
func (s *Static) Elements() []Element {
	if s == nil {
		return nil
	}
	out := make([]Element, len(s.controls))
	for i, c := range s.controls {
		out[i] = c
	}
	return out
}

// Controls returns every control named name in document order.
func (s *Static) Controls(name string) []*Control {
	if s == nil {
		return nil
	}
	var out []*Control
	for _, c := range s.controls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// Control returns the first control named name.
func (s *Static) Control(name string) (*Control, bool) {
	controls := s.Controls(name)
	if len(controls) == 0 {
		return nil, false
	}
	return controls[0], true
}

// Names returns the distinct control names in first-seen order.
func (s *Static) Names() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(s.controls))
	var out []string
	for _, c := range s.controls {
		if _, ok := seen[c.name]; ok {
			continue
		}
		seen[c.name] = struct{}{}
		out = append(out, c.name)
	}
	return out
}

// Fill applies a values document to the form. Scalars set the value of
// single controls; booleans toggle a lone checkbox; lists select the
// checkboxes of a group by value; a scalar on a radio list checks the
// matching member. Unknown names are reported in one error after every known
// value has been applied.
func (s *Static) Fill(values map[string]any) error {
	if s == nil || len(values) == 0 {
		return nil
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var unknown []string
	for _, name := range names {
		controls := s.Controls(name)
		if len(controls) == 0 {
			unknown = append(unknown, name)
			continue
		}
		applyValue(controls, values[name])
	}

	if len(unknown) > 0 {
		return fmt.Errorf("form: values reference unknown fields: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func applyValue(controls []*Control, raw any) {
	first := controls[0]
	switch first.typ {
	case TypeCheckbox:
		if flag, ok := raw.(bool); ok && len(controls) == 1 {
			first.checked = flag
			return
		}
		selected := make(map[string]struct{})
		for _, v := range toStrings(raw) {
			selected[v] = struct{}{}
		}
		for _, c := range controls {
			_, c.checked = selected[c.value]
		}
	case TypeRadio:
		want := stringify(raw)
		for _, c := range controls {
			c.checked = c.value == want
		}
	default:
		first.value = stringify(raw)
	}
}

func toStrings(raw any) []string {
	switch typed := raw.(type) {
	case nil:
		return nil
	case []string:
		return append([]string(nil), typed...)
	case []any:
		out := make([]string, 0, len(typed))
		for _, v := range typed {
			out = append(out, stringify(v))
		}
		return out
	default:
		return []string{stringify(typed)}
	}
}

func stringify(raw any) string {
	switch typed := raw.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}
