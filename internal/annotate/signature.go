package annotate

import (
	"strings"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

// sigParam is one parameter recovered from a declaration.
type sigParam struct {
	// name is shown in output and keeps rest markers (...args, *args).
	name string
	// key is name without rest markers; doc entries match on it.
	key string
	// typ is the annotation text, empty when absent.
	typ string
}

// parseSignature splits a raw parameter list into parameters in declaration
// order.
func parseSignature(raw string, lang docmodel.Language) []sigParam {
	raw = stripComments(raw, lang)
	var out []sigParam
	for _, frag := range splitTopLevel(raw, ',') {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if i := defaultIndex(frag); i >= 0 {
			frag = strings.TrimSpace(frag[:i])
		}
		name, typ := frag, ""
		if i := topLevelIndex(frag, ':'); i >= 0 {
			name, typ = strings.TrimSpace(frag[:i]), collapseSpace(frag[i+1:])
		}
		name = strings.TrimSuffix(name, "?")
		if lang == docmodel.LanguagePython {
			switch name {
			case "self", "cls", "*", "/":
				continue
			}
		}
		if name == "" {
			continue
		}
		out = append(out, sigParam{name: name, key: paramKey(name), typ: typ})
	}
	return out
}

// paramKey drops rest and variadic markers so "...args", "*args" and "args"
// all match the same doc entry.
func paramKey(name string) string {
	return strings.TrimLeft(name, ".*")
}

// splitTopLevel splits s on sep where sep is outside brackets and strings.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	start := 0
	walkTopLevel(s, func(i int) bool {
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
		return true
	})
	return append(parts, s[start:])
}

// topLevelIndex returns the index of the first c outside brackets and
// strings, or -1.
func topLevelIndex(s string, c byte) int {
	idx := -1
	walkTopLevel(s, func(i int) bool {
		if s[i] == c {
			idx = i
			return false
		}
		return true
	})
	return idx
}

// defaultIndex finds the "=" that starts a default value, skipping "=>",
// "==" and comparison operators.
func defaultIndex(s string) int {
	idx := -1
	walkTopLevel(s, func(i int) bool {
		if s[i] != '=' {
			return true
		}
		if i+1 < len(s) && (s[i+1] == '>' || s[i+1] == '=') {
			return true
		}
		if i > 0 && strings.IndexByte("=!<>", s[i-1]) >= 0 {
			return true
		}
		idx = i
		return false
	})
	return idx
}

// walkTopLevel calls fn with the index of every byte that sits at bracket
// depth zero outside string literals. It stops when fn returns false.
func walkTopLevel(s string, fn func(i int) bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(', '[', '{', '<':
			depth++
			continue
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
			continue
		case '>':
			if i > 0 && s[i-1] == '=' {
				break
			}
			if depth > 0 {
				depth--
			}
			continue
		case '"', '\'', '`':
			i = stringEnd(s, i) - 1
			continue
		}
		if depth == 0 && !fn(i) {
			return
		}
	}
}

// stringEnd returns the index just past the literal opened at s[i], or len(s).
func stringEnd(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q:
			return j + 1
		}
	}
	return len(s)
}

// stripComments removes line comments (// for JS, # for Python) and JS block
// comments from a parameter list.
func stripComments(s string, lang docmodel.Language) string {
	if !strings.ContainsAny(s, "/#") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			end := stringEnd(s, i)
			b.WriteString(s[i:end])
			i = end - 1
		case lang == docmodel.LanguagePython && c == '#',
			lang == docmodel.LanguageJS && strings.HasPrefix(s[i:], "//"):
			nl := strings.IndexByte(s[i:], '\n')
			if nl < 0 {
				return b.String()
			}
			i += nl - 1
		case lang == docmodel.LanguageJS && strings.HasPrefix(s[i:], "/*"):
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			i += end + 3
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
