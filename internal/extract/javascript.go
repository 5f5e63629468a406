package extract

import (
	"regexp"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

var (
	// A /** ... */ block whose body never contains "*/". "/**/" is not a doc
	// comment.
	jsDocComment = regexp.MustCompile(`/\*\*((?:[^*]|\*+[^*/])*)\*+/`)

	jsFunctionHead = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?(function)\s*\*?\s*([A-Za-z_$][\w$]*)\s*(?:<[^()]*?>\s*)?\(`)
	jsArrowHead    = regexp.MustCompile(`^\s*(?:export\s+)?(const|let|var)\s+([A-Za-z_$][\w$]*)\s*(?::[^=]*?)?=\s*(?:async\s+)?(?:<[^()]*?>\s*)?\(`)
)

// jsGrammar handles TypeScript and JavaScript: a JSDoc block followed, after
// only whitespace, by a function declaration or an assigned arrow function.
type jsGrammar struct{}

func (jsGrammar) Language() docmodel.Language { return docmodel.LanguageJS }

func (jsGrammar) Extract(content string) []Match {
	var out []Match
	for _, loc := range jsDocComment.FindAllStringSubmatchIndex(content, -1) {
		doc := content[loc[2]:loc[3]]
		base := loc[1]
		m, ok := matchJSDeclaration(content[base:])
		if !ok {
			continue
		}
		m.Doc = doc
		m.Offset += base
		m.Line = lineAt(content, m.Offset)
		out = append(out, m)
	}
	return out
}

func matchJSDeclaration(s string) (Match, bool) {
	if loc := jsFunctionHead.FindStringSubmatchIndex(s); loc != nil {
		open := loc[1] - 1
		end, ok := closeParen(s, open, docmodel.LanguageJS)
		if !ok {
			return Match{}, false
		}
		m := Match{
			Language: docmodel.LanguageJS,
			Kind:     KindFunction,
			Keyword:  s[loc[2]:loc[3]],
			Name:     s[loc[4]:loc[5]],
			Params:   s[open+1 : end-1],
			Offset:   skipSpace(s, 0),
		}
		if i := skipInlineSpace(s, end); i < len(s) && s[i] == ':' {
			m.ReturnType, _ = scanType(s[i+1:], docmodel.LanguageJS, ";", "\n")
		}
		return m, true
	}
	if loc := jsArrowHead.FindStringSubmatchIndex(s); loc != nil {
		open := loc[1] - 1
		end, ok := closeParen(s, open, docmodel.LanguageJS)
		if !ok {
			return Match{}, false
		}
		m := Match{
			Language: docmodel.LanguageJS,
			Kind:     KindArrow,
			Keyword:  s[loc[2]:loc[3]],
			Name:     s[loc[4]:loc[5]],
			Params:   s[open+1 : end-1],
			Offset:   skipSpace(s, 0),
		}
		i := skipSpace(s, end)
		if i < len(s) && s[i] == ':' {
			typ, stop := scanType(s[i+1:], docmodel.LanguageJS, "=>", ";")
			m.ReturnType = typ
			i += 1 + stop
		}
		if i+2 > len(s) || s[i:i+2] != "=>" {
			// A parenthesized expression, not an arrow function.
			return Match{}, false
		}
		return m, true
	}
	return Match{}, false
}
