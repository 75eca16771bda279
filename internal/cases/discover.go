package cases

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitgitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// dirsForRel returns the list of directories from "." to the directory of rel.
func dirsForRel(rel string) []string {
	dir := filepath.Dir(rel)
	parts := []string{}
	if dir != "." {
		parts = strings.Split(dir, string(os.PathSeparator))
	}
	cur := "."
	dirs := []string{"."}
	for _, part := range parts {
		if cur == "." {
			cur = part
		} else {
			cur = filepath.Join(cur, part)
		}
		dirs = append(dirs, cur)
	}
	return dirs
}

// readGitignorePatterns reads .gitignore patterns from the given directories under absRoot.
func readGitignorePatterns(absRoot string, dirs []string) []gitgitignore.Pattern {
	var patterns []gitgitignore.Pattern
	for _, d := range dirs {
		b, err := os.ReadFile(filepath.Join(absRoot, d, ".gitignore"))
		if err != nil {
			continue
		}
		base := []string{}
		if d != "." && d != "" {
			base = strings.Split(filepath.ToSlash(d), "/")
		}
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, gitgitignore.ParsePattern(line, base))
		}
	}
	return patterns
}

// matchIgnore reports whether rel is ignored by .gitignore files under absRoot.
func matchIgnore(absRoot, rel string, isDir bool) bool {
	patterns := readGitignorePatterns(absRoot, dirsForRel(rel))
	if len(patterns) == 0 {
		return false
	}
	comps := strings.Split(rel, string(os.PathSeparator))
	return gitgitignore.NewMatcher(patterns).Match(comps, isDir)
}

// Discover returns the sorted slash locators of case files under root,
// relative to root. Files and directories matched by .gitignore are
// skipped unless noGitignore is set. Symlinks are not followed.
func Discover(root string, noGitignore bool) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}
	var locators []string
	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" || (!noGitignore && matchIgnore(absRoot, rel, true)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), Suffix) {
			return nil
		}
		if !noGitignore && matchIgnore(absRoot, rel, false) {
			return nil
		}
		locators = append(locators, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}
	sort.Strings(locators)
	return locators, nil
}

// Load resolves path to a list of cases. A regular file is parsed
// directly; a directory is searched with Discover. When nothing is found
// the built-in Defaults are returned.
func Load(path string, noGitignore bool) ([]Case, error) {
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read error %s: %w", path, err)
	}
	if !info.IsDir() {
		return ParseFile(path, filepath.ToSlash(filepath.Base(path)))
	}
	locators, err := Discover(path, noGitignore)
	if err != nil {
		return nil, err
	}
	if len(locators) == 0 {
		return Defaults(), nil
	}
	var out []Case
	for _, loc := range locators {
		cs, err := ParseFile(filepath.Join(path, filepath.FromSlash(loc)), loc)
		if err != nil {
			return nil, err
		}
		out = append(out, cs...)
	}
	return out, nil
}
