package form

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadValues reads a flat name to value mapping from a JSON or YAML file,
// ready for Static.Fill.
func LoadValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("form: read %s: %w", path, err)
	}
	return ParseValues(data, path)
}

// ParseValues decodes a values document. JSON documents are valid YAML, so a
// single decoder covers both.
func ParseValues(data []byte, source string) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return map[string]any{}, nil
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("form: values file %s: invalid JSON or YAML: %w", source, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}
