package lexer

import (
	"sort"
	"testing"
)

func TestLookup_Aliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"c++", "cpp"},
		{"golang", "go"},
		{"js", "javascript"},
		{"md", "markdown"},
		{"bash", "shell"},
		{"yml", "yaml"},
	}

	for _, tt := range tests {
		m, ok := Lookup(tt.alias)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.alias)
			continue
		}
		if m.Language() != tt.want {
			t.Errorf("Lookup(%q).Language() = %q, want %q", tt.alias, m.Language(), tt.want)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("brainfuck"); ok {
		t.Error("expected unknown language to fail lookup")
	}
	if _, ok := Lookup(""); ok {
		t.Error("expected empty identifier to fail lookup")
	}
}

func TestLanguages_SortedAndCanonical(t *testing.T) {
	ids := Languages()
	if !sort.StringsAreSorted(ids) {
		t.Errorf("Languages() not sorted: %v", ids)
	}

	for _, want := range []string{"c", "go", "markdown", "sql", "vim"} {
		found := false
		for _, id := range ids {
			if id == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Languages() missing %q", want)
		}
	}
}

func TestDefine_LongestMarkerWins(t *testing.T) {
	d := Define("test", Table{
		LineComments: []string{"--"},
		BlockStrings: []Pair{{Open: "---", Close: "---"}},
	})

	if len(d.candidates) != 2 || d.candidates[0].marker != "---" {
		t.Errorf("candidates = %+v, want longest marker first", d.candidates)
	}
}

func TestDefine_InterestCoversClosers(t *testing.T) {
	d := Define("test", Table{
		BlockComments: []Pair{{Open: "--[[", Close: "]]"}},
	})

	set := d.Interest()
	for _, b := range []byte("-[]") {
		if !set.Has(b) {
			t.Errorf("interest set missing %q", b)
		}
	}
}
