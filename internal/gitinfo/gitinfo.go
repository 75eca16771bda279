// Package gitinfo resolves the commit a checked file was taken from.
package gitinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Commit describes the HEAD commit of a repository.
type Commit struct {
	Hash   string     `json:"hash" yaml:"hash"`
	Author string     `json:"author,omitempty" yaml:"author,omitempty"`
	When   *time.Time `json:"when,omitempty" yaml:"when,omitempty"`
}

// Head opens the repository enclosing path, searching parent directories
// for .git, and returns its HEAD commit. A path outside any repository, or
// a repository without commits, yields nil and no error.
func Head(path string) (*Commit, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("git head %s: %w", path, err)
	}
	dir := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil
		}
		return nil, fmt.Errorf("git open %s: %w", path, err)
	}
	ref, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("git head %s: %w", path, err)
	}
	c := &Commit{Hash: ref.Hash().String()}
	if obj, err := repo.CommitObject(ref.Hash()); err == nil {
		c.Author = obj.Author.Name
		when := obj.Author.When.UTC()
		c.When = &when
	}
	return c, nil
}
