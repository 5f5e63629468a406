package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
	"github.com/agentflare-ai/boring-docs/internal/extract"
)

func parseSource(t *testing.T, src string, lang docmodel.Language, opts Options) []docmodel.Function {
	t.Helper()
	matches, err := extract.Extract(src, lang)
	require.NoError(t, err)
	fns, err := ParseAll(lang, matches, opts)
	require.NoError(t, err)
	return fns
}

func TestJSDocFunction(t *testing.T) {
	src := "/** Adds two numbers.\n@param {number} a first\n@param {number} b second\n@returns {number} sum */\nfunction add(a: number, b: number): number { return a+b; }"

	fns := parseSource(t, src, docmodel.LanguageJS, Options{})
	require.Len(t, fns, 1)
	fn := fns[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "Adds two numbers.", fn.Description)
	assert.Equal(t, []docmodel.Param{
		{Name: "a", Type: "number", Description: "first"},
		{Name: "b", Type: "number", Description: "second"},
	}, fn.Params)
	assert.Equal(t, []docmodel.Return{{Type: "number", Description: "sum"}}, fn.Returns)
	assert.Empty(t, fn.Throws)
	assert.Equal(t, 5, fn.Line)
}

func TestPythonRestDocstring(t *testing.T) {
	src := `def check(x):
    """Validates x.

    :param x: the input
    :raise ValueError: if x<0
    """
    if x < 0:
        raise ValueError(x)
`
	fns := parseSource(t, src, docmodel.LanguagePython, Options{})
	require.Len(t, fns, 1)
	fn := fns[0]
	assert.Equal(t, "check", fn.Name)
	assert.Equal(t, "Validates x.", fn.Description)
	assert.Equal(t, []docmodel.Param{{Name: "x", Type: docmodel.UnknownType, Description: "the input"}}, fn.Params)
	assert.Equal(t, []docmodel.Throw{{Type: "ValueError", Description: "if x<0"}}, fn.Throws)
	assert.Empty(t, fn.Returns)
}

func TestSignatureTypeIsAuthoritative(t *testing.T) {
	src := "/**\n * @param {string} id the id\n * @param {number} n count\n */\nfunction get(id: number, n) {}"

	fns := parseSource(t, src, docmodel.LanguageJS, Options{})
	require.Len(t, fns, 1)
	assert.Equal(t, []docmodel.Param{
		{Name: "id", Type: "number", Description: "the id"},
		{Name: "n", Type: docmodel.UnknownType, Description: "count"},
	}, fns[0].Params)

	fns = parseSource(t, src, docmodel.LanguageJS, Options{DocTypeFallback: true})
	require.Len(t, fns, 1)
	assert.Equal(t, []docmodel.Param{
		{Name: "id", Type: "number", Description: "the id"},
		{Name: "n", Type: "number", Description: "count"},
	}, fns[0].Params)
}

func TestReturnTypePrecedence(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []docmodel.Return
	}{
		{
			name: "signature wins over doc",
			src:  "/** @returns {string} the value */\nfunction f(): number {}",
			want: []docmodel.Return{{Type: "number", Description: "the value"}},
		},
		{
			name: "doc type without annotation",
			src:  "/** @returns {string} the value */\nfunction f() {}",
			want: []docmodel.Return{{Type: "string", Description: "the value"}},
		},
		{
			name: "untyped doc return",
			src:  "/** @return the value */\nfunction f() {}",
			want: []docmodel.Return{{Type: docmodel.UnknownType, Description: "the value"}},
		},
		{
			name: "annotation only",
			src:  "/** Does f. */\nconst f = (): Promise<void> => {}",
			want: []docmodel.Return{{Type: "Promise<void>"}},
		},
		{
			name: "neither",
			src:  "/** Does f. */\nfunction f() {}",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fns := parseSource(t, tt.src, docmodel.LanguageJS, Options{})
			require.Len(t, fns, 1)
			assert.Equal(t, tt.want, fns[0].Returns)
		})
	}
}

func TestUndeclaredDocParamsAreDropped(t *testing.T) {
	src := "/**\n * @param a kept\n * @param ghost not in the signature\n */\nfunction f(a) {}"
	fns := parseSource(t, src, docmodel.LanguageJS, Options{})
	require.Len(t, fns, 1)
	assert.Equal(t, []docmodel.Param{{Name: "a", Type: docmodel.UnknownType, Description: "kept"}}, fns[0].Params)
}

func TestParseDropsUnnamedMatch(t *testing.T) {
	p, err := For(docmodel.LanguageJS, Options{})
	require.NoError(t, err)

	_, ok := p.Parse(extract.Match{Name: "", Doc: "x"})
	assert.False(t, ok)
	_, ok = p.Parse(extract.Match{Name: "2bad", Doc: "x"})
	assert.False(t, ok)
}

func TestForUnsupportedLanguage(t *testing.T) {
	_, err := For(docmodel.LanguageUnknown, Options{})
	assert.ErrorIs(t, err, docmodel.ErrUnsupportedLanguage)

	_, err = ParseAll(docmodel.LanguageUnknown, nil, Options{})
	assert.ErrorIs(t, err, docmodel.ErrUnsupportedLanguage)
}

func TestRestParamsKeepVariadicNames(t *testing.T) {
	src := "/**\n * @param args the rest\n */\nfunction f(...args: string[]) {}"
	fns := parseSource(t, src, docmodel.LanguageJS, Options{})
	require.Len(t, fns, 1)
	assert.Equal(t, []docmodel.Param{{Name: "...args", Type: "string[]", Description: "the rest"}}, fns[0].Params)

	py := "def g(*args, **kwargs):\n    \"\"\"Forwards.\n\n    :param args: positional\n    :param kwargs: named\n    \"\"\"\n"
	fns = parseSource(t, py, docmodel.LanguagePython, Options{})
	require.Len(t, fns, 1)
	assert.Equal(t, []docmodel.Param{
		{Name: "*args", Type: docmodel.UnknownType, Description: "positional"},
		{Name: "**kwargs", Type: docmodel.UnknownType, Description: "named"},
	}, fns[0].Params)
}
