// Package testutil holds helpers shared by end-to-end tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// fixtureNames maps fixture file names to the names they take once copied.
// Dotfiles are stored without the dot so they do not apply to this repository.
var fixtureNames = map[string]string{
	"gitignore.txt": ".gitignore",
}

// CopyTree copies the fixture tree src into dst, replacing dst and
// restoring dotfile names.
func CopyTree(src, dst string) error {
	_ = os.RemoveAll(dst)
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(out, 0o755)
		}
		if name, ok := fixtureNames[d.Name()]; ok {
			out = filepath.Join(filepath.Dir(out), name)
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(out, b, 0o644)
	})
}
