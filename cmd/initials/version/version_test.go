package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/flarebyte/initials/cli"
	"github.com/flarebyte/initials/internal/buildinfo"
)

func saveBuildinfo(t *testing.T) {
	t.Helper()
	oldVersion, oldCommit, oldDate := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	oldCliVersion, oldCliDate := cli.Version, cli.Date
	oldShort, oldJSON := flagShort, flagJSON
	t.Cleanup(func() {
		buildinfo.Version, buildinfo.Commit, buildinfo.Date = oldVersion, oldCommit, oldDate
		cli.Version, cli.Date = oldCliVersion, oldCliDate
		flagShort, flagJSON = oldShort, oldJSON
	})
	buildinfo.Version = ""
	buildinfo.Commit = ""
	buildinfo.Date = ""
	cli.Version = ""
	cli.Date = ""
}

func TestVersionDefaultOutputStable(t *testing.T) {
	saveBuildinfo(t)
	flagShort = false
	flagJSON = false

	var out bytes.Buffer
	VersionCmd.SetOut(&out)
	defer VersionCmd.SetOut(nil)
	if err := VersionCmd.RunE(VersionCmd, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "initials dev\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestVersionJSON(t *testing.T) {
	saveBuildinfo(t)
	buildinfo.Version = "1.2.3"
	buildinfo.Commit = "0123456789abcdef"
	flagShort = false
	flagJSON = true

	var out, errOut bytes.Buffer
	VersionCmd.SetOut(&out)
	VersionCmd.SetErr(&errOut)
	defer func() {
		VersionCmd.SetOut(nil)
		VersionCmd.SetErr(nil)
	}()
	if err := VersionCmd.RunE(VersionCmd, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["version"] != "1.2.3" || got["commit"] != "0123456789abcdef" {
		t.Fatalf("unexpected json: %v", got)
	}
	if errOut.String() != "initials version: 1.2.3 (commit=0123456)\n" {
		t.Fatalf("unexpected stderr: %q", errOut.String())
	}
}
