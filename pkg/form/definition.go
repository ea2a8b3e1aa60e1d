package form

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Name   string      `json:"name" yaml:"name"`
	Fields []fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Name      string            `json:"name" yaml:"name"`
	Type      string            `json:"type" yaml:"type"`
	Label     string            `json:"label" yaml:"label"`
	Value     any               `json:"value" yaml:"value"`
	Required  bool              `json:"required" yaml:"required"`
	Checked   bool              `json:"checked" yaml:"checked"`
	Options   []string          `json:"options" yaml:"options"`
	MinLength *int              `json:"minlength" yaml:"minlength"`
	MaxLength *int              `json:"maxlength" yaml:"maxlength"`
	Min       *float64          `json:"min" yaml:"min"`
	Max       *float64          `json:"max" yaml:"max"`
	Attrs     map[string]string `json:"attrs" yaml:"attrs"`
}

// LoadFile reads a JSON or YAML form definition from disk.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("form: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a JSON or YAML form definition from fsys.
func LoadFS(fsys fs.FS, path string) (*Static, error) {
	if fsys == nil {
		return nil, fmt.Errorf("form: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("form: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML form definition. Fields declaring options
// expand into one control per option sharing the field name, which is how
// checkbox and radio groups are described.
func Parse(data []byte, source string) (*Static, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	static := New(doc.Name)
	singles := make(map[string]struct{}, len(doc.Fields))
	for idx, raw := range doc.Fields {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return nil, fmt.Errorf("form: file %s field at index %d has an empty name", source, idx)
		}
		if _, exists := singles[name]; exists {
			return nil, fmt.Errorf("form: file %s defines duplicate field %q", source, name)
		}

		controls, err := buildControls(raw, name)
		if err != nil {
			return nil, fmt.Errorf("form: file %s field %q: %w", source, name, err)
		}
		if !isGroupType(controls[0].typ) {
			singles[name] = struct{}{}
		}
		static.Append(controls...)
	}
	return static, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("form: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("form: parse %s: invalid JSON or YAML", source)
}

func buildControls(raw fieldFile, name string) ([]*Control, error) {
	typ := strings.ToLower(strings.TrimSpace(raw.Type))
	if len(raw.Options) > 0 && !isGroupType(typ) {
		if typ != "" {
			return nil, fmt.Errorf("options are only supported on checkbox and radio fields, got %q", typ)
		}
		typ = TypeCheckbox
	}

	base := []ControlOption{WithAttr(AttrLabel, raw.Label)}
	if raw.Required {
		base = append(base, WithRequired())
	}
	if raw.MinLength != nil {
		base = append(base, WithAttr(AttrMinLength, strconv.Itoa(*raw.MinLength)))
	}
	if raw.MaxLength != nil {
		base = append(base, WithAttr(AttrMaxLength, strconv.Itoa(*raw.MaxLength)))
	}
	if raw.Min != nil {
		base = append(base, WithAttr(AttrMin, strconv.FormatFloat(*raw.Min, 'f', -1, 64)))
	}
	if raw.Max != nil {
		base = append(base, WithAttr(AttrMax, strconv.FormatFloat(*raw.Max, 'f', -1, 64)))
	}
	for key, value := range raw.Attrs {
		base = append(base, WithAttr(key, value))
	}

	if len(raw.Options) == 0 {
		opts := append(base, WithValue(stringify(raw.Value)), WithChecked(raw.Checked))
		return []*Control{NewControl(name, typ, opts...)}, nil
	}

	selected := make(map[string]struct{})
	for _, v := range toStrings(raw.Value) {
		selected[v] = struct{}{}
	}
	controls := make([]*Control, 0, len(raw.Options))
	for _, option := range raw.Options {
		_, checked := selected[option]
		opts := append(append([]ControlOption(nil), base...), WithValue(option), WithChecked(checked))
		controls = append(controls, NewControl(name, typ, opts...))
	}
	return controls, nil
}

func isGroupType(typ string) bool {
	return typ == TypeCheckbox || typ == TypeRadio
}
