// Package cases loads the sentence/acronym pairs a solution is checked
// against. Case files are YAML documents named *.cases.yaml:
//
//	cases:
//	  - name: greeting
//	    input: "Hello world"
//	    expected: "Hw"
//
// expected may be omitted, in which case the reference acronym is used.
package cases

import "github.com/flarebyte/initials/internal/acronym"

// Suffix identifies case files during discovery.
const Suffix = ".cases.yaml"

// DefaultLocator names the built-in case set.
const DefaultLocator = "<builtin>"

// Case is a single sentence with its expected acronym.
type Case struct {
	Locator  string `json:"locator" yaml:"locator"`
	Name     string `json:"name" yaml:"name"`
	Input    string `json:"input" yaml:"input"`
	Expected string `json:"expected" yaml:"expected"`
}

// Defaults returns the built-in cases used when no case file exists.
func Defaults() []Case {
	inputs := []struct{ name, input string }{
		{"two words", "Hello world"},
		{"surrounding whitespace", "  leading and trailing   spaces  "},
		{"empty line", ""},
		{"single word", "Single"},
		{"single letters", "a b c"},
	}
	out := make([]Case, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, Case{
			Locator:  DefaultLocator,
			Name:     in.name,
			Input:    in.input,
			Expected: acronym.Extract(in.input),
		})
	}
	return out
}
