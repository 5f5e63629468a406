// Package ignore decides which paths the walker skips. The built-in list is
// process-wide and fixed; a Matcher may add glob patterns loaded once from
// configuration.
package ignore

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar"
)

// Default is the built-in list of path fragments excluded from every scan.
var Default = []string{
	"node_modules",
	"dist",
	"build",
	"out",
	"coverage",
	".git",
	".next",
	".vscode",
	".idea",
	".DS_Store",
	".log",
	".env",
	"__pycache__",
	".pyc",
	"venv",
	".mypy_cache",
	".pytest_cache",
	"tsconfig.tsbuildinfo",
	".gitlab-ci.yml",
	".github",
}

// Matcher reports whether a root-relative, slash-separated path is ignored.
// The zero value applies only Default.
type Matcher struct {
	globs []string
	exact map[string]struct{}
}

// New builds a Matcher with extra doublestar globs. Patterns are validated
// up front so a bad pattern fails at startup rather than mid-walk.
func New(globs ...string) (*Matcher, error) {
	m := &Matcher{exact: make(map[string]struct{})}
	for _, g := range globs {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		// Matching a pattern against itself visits every component, which
		// surfaces ErrBadPattern for malformed classes and alternatives.
		if _, err := doublestar.Match(g, g); err != nil {
			return nil, fmt.Errorf("ignore: invalid pattern %q: %w", g, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Skip marks an exact relative path (and everything beneath it) as ignored.
func (m *Matcher) Skip(rel string) {
	rel = strings.Trim(path.Clean("/"+rel), "/")
	if rel == "" {
		return
	}
	if m.exact == nil {
		m.exact = make(map[string]struct{})
	}
	m.exact[rel] = struct{}{}
}

// Match reports whether rel is ignored.
func (m *Matcher) Match(rel string) bool {
	rel = strings.Trim(path.Clean("/"+rel), "/")
	if rel == "" {
		return false
	}
	if IsDefault(rel) {
		return true
	}
	if m == nil {
		return false
	}
	for p := range m.exact {
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

// IsDefault applies the built-in list segment by segment. A segment is
// ignored when it equals a fragment or ends with one. Suffixes only count at
// a word boundary, so ".venv" and "app.log" are ignored but "layout" and
// "prebuild" are not. Dot fragments such as ".pyc" are their own boundary.
func IsDefault(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		for _, frag := range Default {
			if hasFragmentSuffix(seg, frag) {
				return true
			}
		}
	}
	return false
}

func hasFragmentSuffix(seg, frag string) bool {
	if !strings.HasSuffix(seg, frag) {
		return false
	}
	if len(seg) == len(frag) || strings.HasPrefix(frag, ".") {
		return true
	}
	c := seg[len(seg)-len(frag)-1]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}
