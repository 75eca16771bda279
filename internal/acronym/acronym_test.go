package acronym

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractScenarios(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello world", "Hw"},
		{"  leading and trailing   spaces  ", "latts"},
		{"", ""},
		{"Single", "S"},
		{"a b c", "abc"},
		{"tab\tseparated\nand newline", "tsan"},
		{"Mixed CASE words", "MCw"},
		{"über élan", "üé"},
		{"form\ffeed\vvtab\rreturn", "ffvr"},
		{"a\u00a0b", "a"},
		{"a\u2003b c", "ac"},
		{"a\u0085b", "a"},
		{"\u00a0x y", "\u00a0y"},
	}
	for _, tc := range cases {
		if got := Extract(tc.in); got != tc.want {
			t.Fatalf("Extract(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractWhitespaceOnly(t *testing.T) {
	for _, in := range []string{"", " ", "\t\t", " \n \r\n ", "  "} {
		if got := Extract(in); got != "" {
			t.Fatalf("Extract(%q) = %q, want empty", in, got)
		}
	}
}

func TestWordsDropsEmptyTokens(t *testing.T) {
	got := Words("  one   two ")
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("unexpected words: %q", got)
	}
}

func TestWordsKeepsUnicodeSpaces(t *testing.T) {
	got := Words("one\u00a0two three")
	if len(got) != 2 || got[0] != "one\u00a0two" || got[1] != "three" {
		t.Fatalf("unexpected words: %q", got)
	}
}

func FuzzExtract(f *testing.F) {
	f.Add("Hello world")
	f.Add("  leading and trailing   spaces  ")
	f.Add("")
	f.Add("\t\n")
	f.Add("ÀB çd")
	f.Add("a\u00a0b\u2003c")

	f.Fuzz(func(t *testing.T, sentence string) {
		if !utf8.ValidString(sentence) {
			return
		}
		got := Extract(sentence)
		words := strings.FieldsFunc(sentence, IsSpace)
		if n := utf8.RuneCountInString(got); n != len(words) {
			t.Fatalf("rune count %d, want %d words for %q", n, len(words), sentence)
		}
		i := 0
		for _, r := range got {
			first, _ := utf8.DecodeRuneInString(words[i])
			if r != first {
				t.Fatalf("char %d = %q, want %q", i, r, first)
			}
			i++
		}
		if strings.TrimFunc(sentence, IsSpace) == "" && got != "" {
			t.Fatalf("whitespace input produced %q", got)
		}
	})
}
