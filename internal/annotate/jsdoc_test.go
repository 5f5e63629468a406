package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSDoc(t *testing.T) {
	doc := parseJSDoc(`
	 * Fetches a user.
	 *
	 * Extra prose that is not the description.
	 * @param {string} id - the user id
	 *   which may span lines
	 * @param {{ retries: number }} [opts={}] request options
	 * @param timeout
	 * @returns {Promise<User>} the user
	 * @throws {NotFoundError} when missing
	 * @throws when the network fails
	 * @deprecated use fetchUserV2
	 * @example fetchUser("1")
	 `)

	assert.Equal(t, "Fetches a user.", doc.description)
	require.Len(t, doc.params, 3)
	assert.Equal(t, docEntry{name: "id", typ: "string", desc: "the user id which may span lines"}, *doc.params[0])
	assert.Equal(t, docEntry{name: "opts", typ: "{ retries: number }", desc: "request options"}, *doc.params[1])
	assert.Equal(t, docEntry{name: "timeout"}, *doc.params[2])

	require.Len(t, doc.returns, 1)
	assert.Equal(t, docEntry{typ: "Promise<User>", desc: "the user"}, *doc.returns[0])

	require.Len(t, doc.throws, 2)
	assert.Equal(t, docEntry{typ: "NotFoundError", desc: "when missing"}, *doc.throws[0])
	assert.Equal(t, docEntry{typ: "Error", desc: "when the network fails"}, *doc.throws[1])
}

func TestParseJSDocBlankLineEndsTag(t *testing.T) {
	doc := parseJSDoc(`
	 * @param a first

	 * trailing prose
	 `)
	require.Len(t, doc.params, 1)
	assert.Equal(t, "first", doc.params[0].desc)
	assert.Empty(t, doc.description)
}

func TestParseJSDocMalformedTags(t *testing.T) {
	doc := parseJSDoc(`
	 * @param
	 * @param {number
	 * @returns {string oops
	 * @param {number} ok fine
	 `)
	require.Len(t, doc.params, 1)
	assert.Equal(t, "ok", doc.params[0].name)
	assert.Empty(t, doc.returns)
}

func TestParseJSDocSingleLine(t *testing.T) {
	doc := parseJSDoc(" Upper-cases s. ")
	assert.Equal(t, "Upper-cases s.", doc.description)
	assert.Empty(t, doc.params)
}

func TestBracedType(t *testing.T) {
	typ, rest, ok := bracedType("{Array<{a: number}>} list - items")
	require.True(t, ok)
	assert.Equal(t, "Array<{a: number}>", typ)
	assert.Equal(t, "list - items", rest)

	typ, rest, ok = bracedType("name desc")
	require.True(t, ok)
	assert.Empty(t, typ)
	assert.Equal(t, "name desc", rest)

	_, _, ok = bracedType("{unclosed name")
	assert.False(t, ok)
}

func TestJSDocLinesStripOneGutterStar(t *testing.T) {
	lines := jsDocLines("\n * *Deprecated* use sub\n **\n * @param {number} a - **bold** note\n ")
	assert.Equal(t, []string{"", "*Deprecated* use sub", "", "@param {number} a - **bold** note", ""}, lines)

	doc := parseJSDoc("\n * *Deprecated* use sub\n ")
	assert.Equal(t, "*Deprecated* use sub", doc.description)
}
