package lexer

import "sort"

// Built-in language definitions. The set is closed: a language is
// selected once at parse time by identifier, and adding one means
// adding a table here.
var languages = map[string]*Definition{}

// aliases maps alternative identifiers onto canonical language names.
var aliases = map[string]string{
	"c++":        "cpp",
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"md":         "markdown",
	"py":         "python",
	"rs":         "rust",
	"sh":         "shell",
	"bash":       "shell",
	"zsh":        "shell",
	"yml":        "yaml",
	"latex":      "tex",
	"postgresql": "sql",
	"mysql":      "sql",
}

func register(d *Definition) {
	languages[d.Language()] = d
}

// Lookup returns the matcher for a language identifier or alias.
func Lookup(id string) (Matcher, bool) {
	if canonical, ok := aliases[id]; ok {
		id = canonical
	}
	d, ok := languages[id]
	if !ok {
		return nil, false
	}
	return d, true
}

// Languages returns the canonical identifiers of all built-in
// languages in sorted order.
func Languages() []string {
	ids := make([]string, 0, len(languages))
	for id := range languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Common bracket pairs shared by most tables.
func brackets() []Pair {
	return []Pair{
		{Open: "(", Close: ")"},
		{Open: "[", Close: "]"},
		{Open: "{", Close: "}"},
	}
}

func init() {
	register(Define("c", Table{
		Delimiters:    brackets(),
		LineComments:  []string{"//"},
		BlockComments: []Pair{{Open: "/*", Close: "*/"}},
		Strings:       []string{`"`, "'"},
	}))

	register(Define("cpp", Table{
		Delimiters:    brackets(),
		LineComments:  []string{"//"},
		BlockComments: []Pair{{Open: "/*", Close: "*/"}},
		Strings:       []string{`"`, "'"},
	}))

	register(Define("go", Table{
		Delimiters:    brackets(),
		LineComments:  []string{"//"},
		BlockComments: []Pair{{Open: "/*", Close: "*/"}},
		Strings:       []string{`"`, "'"},
		BlockStrings:  []Pair{{Open: "`", Close: "`"}},
	}))

	register(Define("rust", Table{
		Delimiters:    brackets(),
		LineComments:  []string{"//"},
		BlockComments: []Pair{{Open: "/*", Close: "*/"}},
		Strings:       []string{`"`},
	}))

	register(Define("python", Table{
		Delimiters:   brackets(),
		LineComments: []string{"#"},
		Strings:      []string{`"`, "'"},
		BlockStrings: []Pair{{Open: `"""`, Close: `"""`}, {Open: "'''", Close: "'''"}},
	}))

	register(Define("javascript", Table{
		Delimiters:    brackets(),
		LineComments:  []string{"//"},
		BlockComments: []Pair{{Open: "/*", Close: "*/"}},
		Strings:       []string{`"`, "'"},
		BlockStrings:  []Pair{{Open: "`", Close: "`"}},
	}))

	register(Define("typescript", Table{
		Delimiters:    brackets(),
		LineComments:  []string{"//"},
		BlockComments: []Pair{{Open: "/*", Close: "*/"}},
		Strings:       []string{`"`, "'"},
		BlockStrings:  []Pair{{Open: "`", Close: "`"}},
	}))

	register(Define("json", Table{
		Delimiters: []Pair{{Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		Strings:    []string{`"`},
	}))

	register(Define("lua", Table{
		Delimiters:    brackets(),
		LineComments:  []string{"--"},
		BlockComments: []Pair{{Open: "--[[", Close: "]]"}},
		Strings:       []string{`"`, "'"},
		BlockStrings:  []Pair{{Open: "[[", Close: "]]"}},
	}))

	register(Define("markdown", Table{
		Delimiters:  []Pair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}},
		InlineSpans: []Span{{Name: "code", Open: "`", Close: "`"}},
		BlockSpans:  []Span{{Name: "code", Open: "```", Close: "```"}},
	}))

	register(Define("sql", Table{
		Delimiters:    brackets(),
		LineComments:  []string{"--", "#"},
		BlockComments: []Pair{{Open: "/*", Close: "*/"}},
		Strings:       []string{`"`, "'", "`"},
		// TODO: dollar-quoted tags ($tag$ ... $tag$) need marker
		// capture, which the table format cannot express yet.
		BlockStrings: []Pair{{Open: "$$", Close: "$$"}},
	}))

	register(Define("vim", Table{
		Delimiters: brackets(),
	}))

	register(Define("tex", Table{
		Delimiters:   brackets(),
		LineComments: []string{"%"},
	}))

	register(Define("shell", Table{
		Delimiters:   brackets(),
		LineComments: []string{"#"},
		Strings:      []string{`"`, "'"},
	}))

	register(Define("yaml", Table{
		Delimiters:   []Pair{{Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		Strings:      []string{`"`, "'"},
	}))

	register(Define("toml", Table{
		Delimiters:   []Pair{{Open: "[", Close: "]"}, {Open: "{", Close: "}"}},
		LineComments: []string{"#"},
		Strings:      []string{`"`, "'"},
		BlockStrings: []Pair{{Open: `"""`, Close: `"""`}, {Open: "'''", Close: "'''"}},
	}))

	register(Define("zig", Table{
		Delimiters:   brackets(),
		LineComments: []string{"//"},
		Strings:      []string{`"`},
	}))
}
