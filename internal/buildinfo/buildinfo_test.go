package buildinfo

import (
	"testing"

	"github.com/flarebyte/initials/cli"
)

func TestResolvedFallbackChain(t *testing.T) {
	oldVersion, oldCliVersion := Version, cli.Version
	defer func() { Version, cli.Version = oldVersion, oldCliVersion }()

	Version, cli.Version = "", ""
	if got := Resolved(); got != "dev" {
		t.Fatalf("no version set: got %q", got)
	}
	cli.Version = "1.4.0"
	if got := Resolved(); got != "1.4.0" {
		t.Fatalf("cli version: got %q", got)
	}
	Version = "2.0.0"
	if got := Resolved(); got != "2.0.0" {
		t.Fatalf("buildinfo version: got %q", got)
	}
}

func TestDefaultVersionDefersToCli(t *testing.T) {
	if Version != "" {
		t.Fatalf("Version must default to empty so cli.Version applies, got %q", Version)
	}
}
