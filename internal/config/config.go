package config

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
)

// Defaults for the solution sandbox.
const (
	DefaultFunction         = "first_letters"
	DefaultTimeoutMs        = 1000
	DefaultInstructionLimit = 200000
	DefaultMemoryLimitBytes = 1048576
)

// Config holds the values read from an initials .cue file.
// Required fields:
//   - configVersion: string
type Config struct {
	ConfigVersion string
	Check         Check
	Sandbox       Sandbox
}

// Check holds optional check settings and presence flags.
type Check struct {
	Cases          string
	Solution       string
	Function       string
	NoGitignore    bool
	HasCases       bool
	HasSolution    bool
	HasFunction    bool
	HasNoGitignore bool
}

// Sandbox bounds the execution of a Lua solution.
type Sandbox struct {
	TimeoutMs        int
	InstructionLimit int
	MemoryLimitBytes int
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Check:         Check{Cases: ".", Function: DefaultFunction},
		Sandbox: Sandbox{
			TimeoutMs:        DefaultTimeoutMs,
			InstructionLimit: DefaultInstructionLimit,
			MemoryLimitBytes: DefaultMemoryLimitBytes,
		},
	}
}

// Load compiles the CUE file at path and extracts the config on top of
// Default. Unknown top-level fields are ignored.
func Load(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&cfg.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(cfg.ConfigVersion) {
		return Config{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", cfg.ConfigVersion, SupportedConfigVersionsCSV())
	}
	if cv := v.LookupPath(cue.ParsePath("check")); cv.Exists() {
		if err := parseCheck(cv, &cfg.Check); err != nil {
			return Config{}, err
		}
	}
	if sv := v.LookupPath(cue.ParsePath("sandbox")); sv.Exists() {
		if err := parseSandbox(sv, &cfg.Sandbox); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func parseCheck(v cue.Value, c *Check) error {
	if v.Kind() != cue.StructKind {
		return fmt.Errorf("invalid type for field: check (expected struct)")
	}
	var err error
	var s string
	var ok bool
	if s, ok, err = optionalString(v, "check", "cases"); err != nil {
		return err
	} else if ok {
		c.Cases, c.HasCases = s, true
	}
	if s, ok, err = optionalString(v, "check", "solution"); err != nil {
		return err
	} else if ok {
		c.Solution, c.HasSolution = s, true
	}
	if s, ok, err = optionalString(v, "check", "function"); err != nil {
		return err
	} else if ok && s != "" {
		c.Function, c.HasFunction = s, true
	}
	b, ok, err := optionalBool(v, "check", "noGitignore")
	if err != nil {
		return err
	}
	if ok {
		c.NoGitignore, c.HasNoGitignore = b, true
	}
	return nil
}

func parseSandbox(v cue.Value, s *Sandbox) error {
	if v.Kind() != cue.StructKind {
		return fmt.Errorf("invalid type for field: sandbox (expected struct)")
	}
	fields := []struct {
		name string
		dst  *int
	}{
		{"timeoutMs", &s.TimeoutMs},
		{"instructionLimit", &s.InstructionLimit},
		{"memoryLimitBytes", &s.MemoryLimitBytes},
	}
	for _, f := range fields {
		n, ok, err := optionalInt(v, "sandbox", f.name)
		if err != nil {
			return err
		}
		if ok {
			*f.dst = n
		}
	}
	return nil
}

// CurrentConfigVersion is the configVersion written by this release.
const CurrentConfigVersion = "1"

// SupportedConfigVersions lists every configVersion Load accepts.
var SupportedConfigVersions = []string{CurrentConfigVersion}

// IsSupportedConfigVersion reports whether v can be loaded.
func IsSupportedConfigVersion(v string) bool {
	for _, s := range SupportedConfigVersions {
		if v == s {
			return true
		}
	}
	return false
}

// SupportedConfigVersionsCSV is used in error messages.
func SupportedConfigVersionsCSV() string {
	return strings.Join(SupportedConfigVersions, ", ")
}
