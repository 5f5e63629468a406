package annotate

import (
	"regexp"
	"strings"
)

var (
	// :param x: / :param int x: / :type x: / :return: / :rtype: / :raise E:
	restDirective = regexp.MustCompile(`^:(param|parameter|arg|argument|key|keyword|type|returns?|rtype|raises?|except|exception)\b([^:]*):\s*(.*)$`)
	// Any ":word ...:" line, recognized or not.
	restLike = regexp.MustCompile(`^:\w[^:]*:`)

	googleSection = regexp.MustCompile(`(?i)^(args|arguments|parameters|params|keyword args|keyword arguments|returns?|yields?|raises|exceptions|examples?|notes?|attributes|see also|todo|references|warnings?)\s*:$`)
	googleParam   = regexp.MustCompile(`^(\*{0,2}[A-Za-z_]\w*)\s*(?:\(([^)]*)\))?\s*:\s*(.*)$`)
	googleTyped   = regexp.MustCompile(`^([A-Za-z_][\w.]*(?:\[.*\])?)\s*:\s*(.*)$`)
)

// parsePyDoc reads a docstring. reST directives win when any are present;
// otherwise Google-style sections are read. The description is the first
// non-empty line unless that line is already a directive or section header.
func parsePyDoc(raw string) docComment {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	var doc docComment
	if hasRestDirectives(lines) {
		doc = parseRest(lines)
	} else {
		doc = parseGoogle(lines)
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !restLike.MatchString(line) && !googleSection.MatchString(line) {
			doc.description = line
		}
		break
	}
	return doc
}

func hasRestDirectives(lines []string) bool {
	for _, line := range lines {
		if restDirective.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// parseRest reads Sphinx field lists. A directive's value keeps collecting
// continuation lines until the next directive. :type and :rtype only annotate
// entries already collected.
func parseRest(lines []string) docComment {
	var (
		doc docComment
		cur *docEntry
	)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := restDirective.FindStringSubmatch(line)
		if m == nil {
			if restLike.MatchString(line) {
				cur = nil
			} else if cur != nil {
				cur.appendDesc(line)
			}
			continue
		}
		kind, arg, value := m[1], strings.Fields(m[2]), strings.TrimSpace(m[3])
		cur = nil
		switch kind {
		case "param", "parameter", "arg", "argument", "key", "keyword":
			if len(arg) == 0 {
				continue
			}
			e := &docEntry{
				name: arg[len(arg)-1],
				typ:  strings.Join(arg[:len(arg)-1], " "),
				desc: value,
			}
			doc.params = append(doc.params, e)
			cur = e
		case "type":
			if len(arg) != 1 {
				continue
			}
			if e := doc.param(paramKey(arg[0])); e != nil {
				e.typ = value
			}
		case "return", "returns":
			e := &docEntry{desc: value}
			doc.returns = append(doc.returns, e)
			cur = e
		case "rtype":
			if n := len(doc.returns); n > 0 {
				doc.returns[n-1].typ = value
			}
		case "raise", "raises", "except", "exception":
			if len(arg) == 0 {
				continue
			}
			e := &docEntry{typ: strings.Join(arg, " "), desc: value}
			doc.throws = append(doc.throws, e)
			cur = e
		}
	}
	return doc
}

// parseGoogle reads Args/Returns/Raises sections. Within a section, a line
// at the indentation of the section's first entry starts a new entry; deeper
// lines continue the current one.
func parseGoogle(lines []string) docComment {
	var (
		doc         docComment
		section     string
		cur         *docEntry
		entryIndent = -1
	)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := googleSection.FindStringSubmatch(line); m != nil {
			section = normalizeSection(m[1])
			cur, entryIndent = nil, -1
			continue
		}
		if section == "" {
			continue
		}
		indent := indentWidth(raw)
		if cur != nil && entryIndent >= 0 && indent > entryIndent {
			cur.appendDesc(line)
			continue
		}
		if entryIndent < 0 {
			entryIndent = indent
		}
		cur = doc.addGoogleEntry(section, line)
	}
	return doc
}

func (c *docComment) addGoogleEntry(section, line string) *docEntry {
	switch section {
	case "args":
		m := googleParam.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		e := &docEntry{name: m[1], typ: strings.TrimSpace(m[2]), desc: m[3]}
		c.params = append(c.params, e)
		return e
	case "returns":
		e := &docEntry{desc: line}
		if m := googleTyped.FindStringSubmatch(line); m != nil {
			e.typ, e.desc = m[1], m[2]
		}
		// Later lines at the same indentation keep describing one return.
		if n := len(c.returns); n > 0 {
			c.returns[n-1].appendDesc(line)
			return c.returns[n-1]
		}
		c.returns = append(c.returns, e)
		return e
	case "raises":
		m := googleTyped.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		e := &docEntry{typ: m[1], desc: m[2]}
		c.throws = append(c.throws, e)
		return e
	default:
		return nil
	}
}

func normalizeSection(name string) string {
	switch strings.ToLower(name) {
	case "args", "arguments", "parameters", "params", "keyword args", "keyword arguments":
		return "args"
	case "returns", "return", "yields", "yield":
		return "returns"
	case "raises", "exceptions":
		return "raises"
	default:
		return "other"
	}
}

func indentWidth(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}
