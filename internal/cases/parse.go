package cases

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flarebyte/initials/internal/acronym"
)

// MaxFileBytes caps the size of a single case file.
const MaxFileBytes = 1048576

// ParseFile reads and validates the case file at p. locator is recorded on
// every returned case and used in error messages.
func ParseFile(p, locator string) ([]Case, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("read error %s: %w", locator, err)
	}
	if info.Size() > MaxFileBytes {
		return nil, fmt.Errorf("yaml too large %s: exceeds %d bytes", locator, MaxFileBytes)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read error %s: %w", locator, err)
	}
	return Parse(b, locator)
}

// Parse validates a case document.
func Parse(b []byte, locator string) ([]Case, error) {
	var y any
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, fmt.Errorf("invalid YAML %s: %v", locator, err)
	}
	ym, ok := y.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid YAML %s: top-level must be mapping", locator)
	}
	raw, ok := ym["cases"]
	if !ok {
		return nil, fmt.Errorf("invalid YAML %s: missing required field: cases", locator)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid YAML %s: invalid type for field: cases", locator)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("invalid YAML %s: cases must not be empty", locator)
	}
	out := make([]Case, 0, len(list))
	for i, item := range list {
		c, err := parseCase(item, i)
		if err != nil {
			return nil, fmt.Errorf("invalid YAML %s: %v", locator, err)
		}
		c.Locator = locator
		out = append(out, c)
	}
	return out, nil
}

func parseCase(item any, i int) (Case, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return Case{}, fmt.Errorf("cases[%d] must be mapping", i)
	}
	var c Case
	in, ok := m["input"]
	if !ok {
		return Case{}, fmt.Errorf("cases[%d]: missing required field: input", i)
	}
	if c.Input, ok = in.(string); !ok {
		return Case{}, fmt.Errorf("cases[%d]: invalid type for field: input", i)
	}
	if v, ok := m["name"]; ok {
		if c.Name, ok = v.(string); !ok {
			return Case{}, fmt.Errorf("cases[%d]: invalid type for field: name", i)
		}
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("case %d", i+1)
	}
	if v, ok := m["expected"]; ok {
		if c.Expected, ok = v.(string); !ok {
			return Case{}, fmt.Errorf("cases[%d]: invalid type for field: expected", i)
		}
	} else {
		c.Expected = acronym.Extract(c.Input)
	}
	return c, nil
}
