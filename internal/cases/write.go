package cases

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrExists is returned by Write when the target exists and overwrite is off.
var ErrExists = errors.New("case file already exists")

// Marshal returns canonical YAML bytes for a case file. Fields are always
// written in name, input, expected order and strings are double quoted so
// whitespace in inputs stays visible.
func Marshal(cs []Case) ([]byte, error) {
	list := &yaml.Node{Kind: yaml.SequenceNode}
	for _, c := range cs {
		item := &yaml.Node{Kind: yaml.MappingNode}
		item.Content = append(item.Content,
			keyNode("name"), quotedNode(c.Name),
			keyNode("input"), quotedNode(c.Input),
			keyNode("expected"), quotedNode(c.Expected),
		)
		list.Content = append(list.Content, item)
	}
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, keyNode("cases"), list)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

// Write writes cs to path as a canonical case file, creating parent
// directories.
func Write(path string, cs []Case, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := Marshal(cs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func keyNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func quotedNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle}
}
