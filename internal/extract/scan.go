package extract

import (
	"strings"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

// closeParen returns the index just past the parenthesis that closes the one
// at s[open]. Nested (), [] and {}, quoted strings and lang's comments are
// skipped. ok is false when the input ends first.
func closeParen(s string, open int, lang docmodel.Language) (end int, ok bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		if j := skipComment(s, i, lang); j != i {
			if j < 0 {
				return 0, false
			}
			i = j - 1
			continue
		}
		switch c := s[i]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case '"', '\'', '`':
			j := skipString(s, i)
			if j < 0 {
				return 0, false
			}
			i = j - 1
		}
	}
	return 0, false
}

// skipString returns the index just past the string literal starting at
// s[i], or -1 when it is unterminated.
func skipString(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q:
			return j + 1
		case '\n':
			if q != '`' {
				return -1
			}
		}
	}
	return -1
}

// skipComment returns the index just past a comment starting at s[i], i when
// none starts there, or -1 for an unterminated block comment. A line comment
// ends before its newline.
func skipComment(s string, i int, lang docmodel.Language) int {
	switch {
	case lang == docmodel.LanguagePython && s[i] == '#',
		lang == docmodel.LanguageJS && strings.HasPrefix(s[i:], "//"):
		if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
			return i + nl
		}
		return len(s)
	case lang == docmodel.LanguageJS && strings.HasPrefix(s[i:], "/*"):
		if end := strings.Index(s[i+2:], "*/"); end >= 0 {
			return i + 2 + end + 2
		}
		return -1
	}
	return i
}

// scanType reads a type annotation from the start of s until one of the
// stop strings appears at bracket depth zero. It returns the trimmed type,
// without comments, and the index where the stop string begins (len(s) when
// none was found).
func scanType(s string, lang docmodel.Language, stops ...string) (string, int) {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		if depth == 0 {
			for _, stop := range stops {
				if strings.HasPrefix(s[i:], stop) {
					return strings.TrimSpace(b.String()), i
				}
			}
		}
		if j := skipComment(s, i, lang); j != i {
			if j < 0 {
				break
			}
			i = j - 1
			continue
		}
		switch c := s[i]; c {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			if depth > 0 && !(c == '>' && i > 0 && s[i-1] == '=') {
				depth--
			}
		case '{':
			// Object-literal types only count as part of the annotation when
			// they open it; otherwise '{' starts the function body.
			if depth == 0 && strings.TrimSpace(b.String()) != "" {
				return strings.TrimSpace(b.String()), i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '"', '\'', '`':
			if j := skipString(s, i); j > 0 {
				b.WriteString(s[i:j])
				i = j - 1
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return strings.TrimSpace(b.String()), len(s)
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func skipInlineSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
