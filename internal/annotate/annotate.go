// Package annotate turns raw extracted declarations into normalized
// docmodel.Function records.
//
// Parsing has two independent halves. The signature half splits the raw
// parameter list into names and types. The comment half reads the doc text
// with a language-specific grammar: JSDoc tags for TypeScript/JavaScript,
// reST directives or Google-style sections for Python. The halves meet in
// assemble, which matches doc entries to declared parameters by name.
//
// Parameter types always come from the signature. A doc-declared parameter
// type is only a hint; it fills a missing signature type when
// Options.DocTypeFallback is set and is ignored otherwise.
package annotate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
	"github.com/agentflare-ai/boring-docs/internal/extract"
)

// Options tunes parsing.
type Options struct {
	// DocTypeFallback lets a doc-declared parameter type stand in for a
	// missing signature annotation.
	DocTypeFallback bool
}

// Parser turns one match into one Function. ok is false when the match has
// no usable name; such matches are dropped silently.
type Parser interface {
	Parse(m extract.Match) (fn docmodel.Function, ok bool)
}

// For returns the parser for lang.
func For(lang docmodel.Language, opts Options) (Parser, error) {
	switch lang {
	case docmodel.LanguageJS:
		return jsParser{opts: opts}, nil
	case docmodel.LanguagePython:
		return pyParser{opts: opts}, nil
	default:
		return nil, fmt.Errorf("annotate: %w: %s", docmodel.ErrUnsupportedLanguage, lang)
	}
}

// ParseAll parses every match, dropping those without a name. Matches must
// all be of lang.
func ParseAll(lang docmodel.Language, matches []extract.Match, opts Options) ([]docmodel.Function, error) {
	p, err := For(lang, opts)
	if err != nil {
		return nil, err
	}
	var out []docmodel.Function
	for _, m := range matches {
		if fn, ok := p.Parse(m); ok {
			out = append(out, fn)
		}
	}
	return out, nil
}

type jsParser struct{ opts Options }

func (p jsParser) Parse(m extract.Match) (docmodel.Function, bool) {
	if !validName(m.Name) {
		return docmodel.Function{}, false
	}
	return assemble(m, parseSignature(m.Params, docmodel.LanguageJS), parseJSDoc(m.Doc), p.opts), true
}

type pyParser struct{ opts Options }

func (p pyParser) Parse(m extract.Match) (docmodel.Function, bool) {
	if !validName(m.Name) {
		return docmodel.Function{}, false
	}
	return assemble(m, parseSignature(m.Params, docmodel.LanguagePython), parsePyDoc(m.Doc), p.opts), true
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

func validName(name string) bool {
	return identifier.MatchString(name)
}

// docEntry is one tag or directive read from a comment.
type docEntry struct {
	name string
	typ  string
	desc string
}

func (e *docEntry) appendDesc(line string) {
	if e.desc == "" {
		e.desc = line
		return
	}
	e.desc += " " + line
}

// docComment is the language-independent result of reading a comment body.
type docComment struct {
	description string
	params      []*docEntry
	returns     []*docEntry
	throws      []*docEntry
}

func (c *docComment) param(key string) *docEntry {
	for _, e := range c.params {
		if paramKey(e.name) == key {
			return e
		}
	}
	return nil
}

func assemble(m extract.Match, sig []sigParam, doc docComment, opts Options) docmodel.Function {
	fn := docmodel.Function{
		Name:        m.Name,
		Description: doc.description,
		Doc:         strings.TrimSpace(m.Doc),
		Line:        m.Line,
	}
	for _, sp := range sig {
		p := docmodel.Param{Name: sp.name, Type: sp.typ}
		if e := doc.param(sp.key); e != nil {
			p.Description = e.desc
			if p.Type == "" && opts.DocTypeFallback {
				p.Type = e.typ
			}
		}
		if p.Type == "" {
			p.Type = docmodel.UnknownType
		}
		fn.Params = append(fn.Params, p)
	}

	sigReturn := collapseSpace(m.ReturnType)
	for _, e := range doc.returns {
		typ := firstNonEmpty(sigReturn, e.typ, docmodel.UnknownType)
		fn.Returns = append(fn.Returns, docmodel.Return{Type: typ, Description: e.desc})
	}
	if len(fn.Returns) == 0 && sigReturn != "" {
		fn.Returns = append(fn.Returns, docmodel.Return{Type: sigReturn})
	}

	for _, e := range doc.throws {
		fn.Throws = append(fn.Throws, docmodel.Throw{Type: e.typ, Description: e.desc})
	}
	return fn
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
