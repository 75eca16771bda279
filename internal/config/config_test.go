package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCfg(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	return p
}

func TestLoad_UnknownConfigVersion(t *testing.T) {
	cfg := writeCfg(t, "unknown_version.cue", "{\n  configVersion: \"2\"\n}\n")
	_, err := Load(cfg)
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "unsupported configVersion: \"2\" (supported: 1)"
	if err.Error() != want {
		t.Fatalf("unexpected error\nwant: %s\n got: %s", want, err.Error())
	}
}

func TestLoad_MissingConfigVersion(t *testing.T) {
	cfg := writeCfg(t, "missing.cue", "check: {cases: \"x\"}\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "missing required field: configVersion" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_WrongExtension(t *testing.T) {
	cfg := writeCfg(t, "config.yaml", "configVersion: \"1\"\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "unsupported config format: expected .cue" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidCUE(t *testing.T) {
	cfg := writeCfg(t, "bad.cue", "configVersion: \n")
	_, err := Load(cfg)
	if err == nil || !strings.HasPrefix(err.Error(), "invalid config:") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := writeCfg(t, "min.cue", "configVersion: \"1\"\nextra: true\n")
	c, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Check.Cases != "." || c.Check.Function != DefaultFunction {
		t.Fatalf("unexpected check defaults: %+v", c.Check)
	}
	if c.Sandbox.TimeoutMs != DefaultTimeoutMs || c.Sandbox.InstructionLimit != DefaultInstructionLimit || c.Sandbox.MemoryLimitBytes != DefaultMemoryLimitBytes {
		t.Fatalf("unexpected sandbox defaults: %+v", c.Sandbox)
	}
}

func TestLoad_AllFields(t *testing.T) {
	content := `configVersion: "1"
check: {
	cases:       "testdata"
	solution:    "solution.lua"
	function:    "initials"
	noGitignore: true
}
sandbox: {
	timeoutMs:        50
	instructionLimit: 0
	memoryLimitBytes: 2048
}
`
	c, err := Load(writeCfg(t, "full.cue", content))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Check.HasCases || c.Check.Cases != "testdata" {
		t.Fatalf("cases: %+v", c.Check)
	}
	if !c.Check.HasSolution || c.Check.Solution != "solution.lua" {
		t.Fatalf("solution: %+v", c.Check)
	}
	if c.Check.Function != "initials" || !c.Check.NoGitignore || !c.Check.HasNoGitignore {
		t.Fatalf("check: %+v", c.Check)
	}
	if c.Sandbox.TimeoutMs != 50 || c.Sandbox.InstructionLimit != 0 || c.Sandbox.MemoryLimitBytes != 2048 {
		t.Fatalf("sandbox: %+v", c.Sandbox)
	}
}

func TestLoad_WrongFieldType(t *testing.T) {
	cfg := writeCfg(t, "types.cue", "configVersion: \"1\"\nsandbox: {timeoutMs: \"slow\"}\n")
	_, err := Load(cfg)
	want := "invalid type for field: sandbox.timeoutMs (expected int)"
	if err == nil || err.Error() != want {
		t.Fatalf("unexpected error: %v", err)
	}
}
