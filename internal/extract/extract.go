// Package extract locates documented function declarations in source text.
//
// It is a tolerant lexical scan, not a parser: each supported language has a
// Grammar that finds "doc comment next to a function-like declaration"
// adjacency and returns the raw pieces (name, parameter text, return
// annotation, doc text) for the annotate package to interpret. Declarations
// without an adjacent doc comment are not reported.
package extract

import (
	"fmt"
	"strings"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

// Kind is the declaration form a match was recognized as.
type Kind int

const (
	// KindFunction is `function name(...)`.
	KindFunction Kind = iota + 1
	// KindArrow is `const|let|var name = (...) =>`.
	KindArrow
	// KindDef is a Python `def name(...):`.
	KindDef
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindArrow:
		return "arrow"
	case KindDef:
		return "def"
	default:
		return "unknown"
	}
}

// Match is one located declaration with its doc comment. Fields hold source
// text verbatim; no trimming or interpretation beyond locating them.
type Match struct {
	Language docmodel.Language
	Kind     Kind
	// Keyword is the declaring keyword: function, const, let, var or def.
	Keyword    string
	Name       string
	Params     string
	ReturnType string
	// Doc is the text between the comment or docstring delimiters.
	Doc string
	// Offset is the byte offset of the declaration in the file.
	Offset int
	// Line is the 1-based line of the declaration.
	Line int
}

// Grammar is one language's extraction strategy.
type Grammar interface {
	Language() docmodel.Language
	Extract(content string) []Match
}

// For returns the grammar for lang.
func For(lang docmodel.Language) (Grammar, error) {
	switch lang {
	case docmodel.LanguageJS:
		return jsGrammar{}, nil
	case docmodel.LanguagePython:
		return pyGrammar{}, nil
	default:
		return nil, fmt.Errorf("extract: %w: %s", docmodel.ErrUnsupportedLanguage, lang)
	}
}

// Extract returns every documented declaration in content, in source order.
func Extract(content string, lang docmodel.Language) ([]Match, error) {
	g, err := For(lang)
	if err != nil {
		return nil, err
	}
	return g.Extract(content), nil
}

func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}
