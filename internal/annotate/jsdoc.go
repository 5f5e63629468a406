package annotate

import "strings"

// jsDocLines strips comment decoration: per-line whitespace and the leading
// "*" gutter.
func jsDocLines(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "*") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
			// A run of stars is a divider, not text.
			if strings.Trim(line, "*") == "" {
				line = ""
			}
		}
		lines[i] = line
	}
	return lines
}

// parseJSDoc reads a JSDoc body. The description is the first free-text line
// before any tag. A tag's text runs until the next tag or a blank line.
func parseJSDoc(raw string) docComment {
	var (
		doc     docComment
		cur     *docEntry
		seenTag bool
	)
	for _, line := range jsDocLines(raw) {
		if line == "" {
			cur = nil
			continue
		}
		if strings.HasPrefix(line, "@") {
			seenTag = true
			cur = doc.addTag(line)
			continue
		}
		switch {
		case cur != nil:
			cur.appendDesc(line)
		case !seenTag && doc.description == "":
			doc.description = line
		}
	}
	return doc
}

// addTag records one tag line and returns the entry continuation lines should
// extend, or nil when the tag is unknown or malformed.
func (c *docComment) addTag(line string) *docEntry {
	tag, rest, _ := strings.Cut(line, " ")
	if i := strings.IndexAny(tag, "\t{"); i > 0 {
		tag, rest = tag[:i], tag[i:]+" "+rest
	}
	rest = strings.TrimSpace(rest)

	switch tag {
	case "@param", "@arg", "@argument":
		typ, rest, ok := bracedType(rest)
		if !ok {
			return nil
		}
		name, desc, _ := strings.Cut(rest, " ")
		name = optionalParamName(name)
		if name == "" {
			return nil
		}
		e := &docEntry{name: name, typ: typ, desc: tagDesc(desc)}
		c.params = append(c.params, e)
		return e
	case "@returns", "@return":
		typ, rest, ok := bracedType(rest)
		if !ok {
			return nil
		}
		e := &docEntry{typ: typ, desc: tagDesc(rest)}
		c.returns = append(c.returns, e)
		return e
	case "@throws", "@throw", "@exception":
		typ, rest, ok := bracedType(rest)
		if !ok {
			return nil
		}
		if typ == "" {
			typ = "Error"
		}
		e := &docEntry{typ: typ, desc: tagDesc(rest)}
		c.throws = append(c.throws, e)
		return e
	default:
		return nil
	}
}

// bracedType reads an optional leading {Type}. Braces may nest, as in
// {{a: number}}. ok is false when the closing brace is missing.
func bracedType(s string) (typ, rest string, ok bool) {
	if !strings.HasPrefix(s, "{") {
		return "", s, true
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return collapseSpace(s[1:i]), strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return "", "", false
}

// optionalParamName unwraps "[name]" and "[name=default]".
func optionalParamName(name string) string {
	if strings.HasPrefix(name, "[") {
		name = strings.TrimSuffix(strings.TrimPrefix(name, "["), "]")
		name, _, _ = strings.Cut(name, "=")
	}
	return strings.TrimSpace(name)
}

// tagDesc drops the conventional "- " separator after a name or type.
func tagDesc(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "- ") || s == "-" {
		s = strings.TrimSpace(s[1:])
	}
	return s
}
