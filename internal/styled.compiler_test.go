package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testScope = ".c"

func TestCompiler_CompileSource(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{
			name:     "empty source",
			source:   "",
			expected: []string{},
		},
		{
			name:     "single declaration",
			source:   "color: red;",
			expected: []string{".c{color:red;}"},
		},
		{
			name:     "parent reference",
			source:   "color: red; &:hover { color: blue; }",
			expected: []string{".c{color:red;}", ".c:hover{color:blue;}"},
		},
		{
			name:     "implicit descendant",
			source:   "span { margin: 0 }",
			expected: []string{".c span{margin:0;}"},
		},
		{
			name:     "selector list",
			source:   "& > a, &.active { x: y }",
			expected: []string{".c > a,.c.active{x:y;}"},
		},
		{
			name:     "deep nesting multiplies selectors",
			source:   "a, b { & + & { x: y } }",
			expected: []string{".c a + .c a,.c b + .c b{x:y;}"},
		},
		{
			name:   "media wraps scoped rules",
			source: "@media (min-width: 600px) { color: red; &:hover { color: blue } }",
			expected: []string{
				"@media (min-width: 600px){.c{color:red;}.c:hover{color:blue;}}",
			},
		},
		{
			name:   "keyframes stay global",
			source: "@keyframes spin { from { transform: rotate(0deg) } to { transform: rotate(360deg) } }",
			expected: []string{
				"@keyframes spin{from{transform:rotate(0deg);}to{transform:rotate(360deg);}}",
			},
		},
		{
			name:     "font-face stays global",
			source:   "@font-face { font-family: Foo; src: url(foo.woff2) }",
			expected: []string{"@font-face{font-family:Foo;src:url(foo.woff2);}"},
		},
		{
			name:     "import is hoisted",
			source:   "color: red; @import url('x.css');",
			expected: []string{"@import url('x.css');", ".c{color:red;}"},
		},
		{
			name:     "data url",
			source:   "background: url(data:image/png;base64,AAA=);",
			expected: []string{".c{background:url(data:image/png;base64,AAA=);}"},
		},
		{
			name:     "empty nested block emits nothing",
			source:   "&:hover {}",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := CompileSource(tt.source, testScope, zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rules)
		})
	}
}

func TestCompiler_Compile_Errors(t *testing.T) {
	t.Run("empty scope", func(t *testing.T) {
		_, err := CompileSource("color: red;", "  ", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyScope)
	})

	t.Run("unsupported at-rule", func(t *testing.T) {
		_, err := CompileSource("@unknown foo { x: y }", testScope, nil)
		require.Error(t, err)

		var compileErr *CompileError
		require.ErrorAs(t, err, &compileErr)
		assert.Equal(t, ErrMsgUnsupportedAtRule, compileErr.Message)
		assert.Equal(t, "@unknown foo", compileErr.Name)
	})

	t.Run("parse error propagates", func(t *testing.T) {
		_, err := CompileSource("a {", testScope, nil)
		require.Error(t, err)

		var parseErr *ParserError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestSplitSelectorList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitSelectorList("a, b"))
	assert.Equal(t, []string{":is(a, b)", "c"}, SplitSelectorList(":is(a, b), c"))
	assert.Equal(t, []string{`[title="a,b"]`}, SplitSelectorList(`[title="a,b"]`))
	assert.Equal(t, []string{"a"}, SplitSelectorList("a,,"))
	assert.Nil(t, SplitSelectorList("  "))
}

func TestCombineSelectors(t *testing.T) {
	assert.Equal(t, []string{".p .x"}, CombineSelectors([]string{".p"}, ".x"))
	assert.Equal(t, []string{".p.x"}, CombineSelectors([]string{".p"}, "&.x"))
	assert.Equal(t, []string{".x .p"}, CombineSelectors([]string{".p"}, ".x &"))
	assert.Equal(t, []string{".a:hover", ".b:hover"}, CombineSelectors([]string{".a", ".b"}, "&:hover"))
}

func TestHash(t *testing.T) {
	assert.Equal(t, "ztntfp", Hash(""))
	assert.Equal(t, "9rfate", Hash("color:red;"))
	assert.Equal(t, Hash("color: red;"), Hash("color: red;"))
	assert.NotEqual(t, Hash("color: red;"), Hash("color: blue;"))
}

func TestExtractLabels(t *testing.T) {
	t.Run("no labels", func(t *testing.T) {
		src, labels := ExtractLabels("color: red;")
		assert.Equal(t, "color: red;", src)
		assert.Nil(t, labels)
	})

	t.Run("labels removed in order", func(t *testing.T) {
		src, labels := ExtractLabels("label: button; color: red; label:primary;")
		assert.Equal(t, "color: red;", src)
		assert.Equal(t, []string{"button", "primary"}, labels)
	})

	t.Run("trailing label without semicolon", func(t *testing.T) {
		src, labels := ExtractLabels("color: red; label: card")
		assert.Equal(t, "color: red;", src)
		assert.Equal(t, []string{"card"}, labels)
	})
}
