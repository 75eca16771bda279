package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// compileCUE loads and compiles a CUE file at the given path.
func compileCUE(path string) (cue.Value, error) {
	if filepath.Ext(path) != ".cue" {
		return cue.Value{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

// optionalString decodes an optional string field. ok reports presence.
func optionalString(parent cue.Value, section, name string) (s string, ok bool, err error) {
	f := parent.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return "", false, nil
	}
	if f.Kind() != cue.StringKind {
		return "", false, fmt.Errorf("invalid type for field: %s.%s (expected string)", section, name)
	}
	if err := f.Decode(&s); err != nil {
		return "", false, fmt.Errorf("invalid value for %s.%s: %v", section, name, err)
	}
	return s, true, nil
}

func optionalBool(parent cue.Value, section, name string) (b bool, ok bool, err error) {
	f := parent.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return false, false, nil
	}
	if f.Kind() != cue.BoolKind {
		return false, false, fmt.Errorf("invalid type for field: %s.%s (expected bool)", section, name)
	}
	if err := f.Decode(&b); err != nil {
		return false, false, fmt.Errorf("invalid value for %s.%s: %v", section, name, err)
	}
	return b, true, nil
}

func optionalInt(parent cue.Value, section, name string) (n int, ok bool, err error) {
	f := parent.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return 0, false, nil
	}
	if f.Kind() != cue.IntKind {
		return 0, false, fmt.Errorf("invalid type for field: %s.%s (expected int)", section, name)
	}
	if err := f.Decode(&n); err != nil {
		return 0, false, fmt.Errorf("invalid value for %s.%s: %v", section, name, err)
	}
	if n < 0 {
		return 0, false, fmt.Errorf("invalid value for %s.%s: must be >= 0", section, name)
	}
	return n, true, nil
}
