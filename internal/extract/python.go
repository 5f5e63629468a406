package extract

import (
	"regexp"
	"strings"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

var pyDefHead = regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?(def)[ \t]+([A-Za-z_]\w*)[ \t]*\(`)

// pyGrammar handles Python: a def whose body opens with a triple-quoted
// string.
type pyGrammar struct{}

func (pyGrammar) Language() docmodel.Language { return docmodel.LanguagePython }

func (pyGrammar) Extract(content string) []Match {
	var out []Match
	consumed := 0
	for _, loc := range pyDefHead.FindAllStringSubmatchIndex(content, -1) {
		if loc[0] < consumed {
			// Inside the docstring of the previous match.
			continue
		}
		m, end, ok := matchDef(content, loc)
		if !ok {
			continue
		}
		consumed = end
		out = append(out, m)
	}
	return out
}

func matchDef(content string, loc []int) (Match, int, bool) {
	open := loc[1] - 1
	end, ok := closeParen(content, open, docmodel.LanguagePython)
	if !ok {
		return Match{}, 0, false
	}
	m := Match{
		Language: docmodel.LanguagePython,
		Kind:     KindDef,
		Keyword:  content[loc[2]:loc[3]],
		Name:     content[loc[4]:loc[5]],
		Params:   content[open+1 : end-1],
		Offset:   skipSpace(content, loc[0]),
	}
	m.Line = lineAt(content, m.Offset)

	i := skipInlineSpace(content, end)
	if strings.HasPrefix(content[i:], "->") {
		typ, stop := scanType(content[i+2:], docmodel.LanguagePython, ":", "\n")
		m.ReturnType = typ
		i += 2 + stop
	}
	if i >= len(content) || content[i] != ':' {
		return Match{}, 0, false
	}
	doc, docEnd, ok := docstringAt(content, skipSpace(content, i+1))
	if !ok {
		return Match{}, 0, false
	}
	m.Doc = doc
	return m, docEnd, true
}

// docstringAt reads a triple-quoted string literal starting at s[i], allowing
// an r/u prefix. It returns the inner text and the index past the literal.
func docstringAt(s string, i int) (string, int, bool) {
	for n := 0; n < 2 && i < len(s) && strings.ContainsRune("rRuU", rune(s[i])); n++ {
		i++
	}
	for _, delim := range []string{`"""`, `'''`} {
		if !strings.HasPrefix(s[i:], delim) {
			continue
		}
		body := s[i+len(delim):]
		closing := strings.Index(body, delim)
		if closing < 0 {
			return "", 0, false
		}
		return body[:closing], i + len(delim) + closing + len(delim), true
	}
	return "", 0, false
}
