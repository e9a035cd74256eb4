package styled

import (
	"bytes"
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func renderHTML(t *testing.T, node g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	return buf.String()
}

func TestHTMLRenderer_CreateNode(t *testing.T) {
	r := NewHTMLRenderer()

	tests := []struct {
		name     string
		tag      string
		props    Props
		expected string
	}{
		{
			name:     "empty element",
			tag:      "div",
			props:    nil,
			expected: "<div></div>",
		},
		{
			name:     "class list joined",
			tag:      "div",
			props:    Props{PropClassName: []string{"a", " ", "css-1"}, PropChildren: "hi"},
			expected: `<div class="a css-1">hi</div>`,
		},
		{
			name:     "attributes sorted",
			tag:      "a",
			props:    Props{"href": "/x", "id": "link", PropClassName: "c"},
			expected: `<a class="c" href="/x" id="link"></a>`,
		},
		{
			name:     "htmlFor becomes for",
			tag:      "label",
			props:    Props{PropHTMLFor: "name"},
			expected: `<label for="name"></label>`,
		},
		{
			name:     "boolean attributes",
			tag:      "input",
			props:    Props{"disabled": true, "readonly": false},
			expected: `<input disabled>`,
		},
		{
			name:     "numbers and stringers",
			tag:      "td",
			props:    Props{"colspan": 2, "title": testColor("teal")},
			expected: `<td colspan="2" title="teal"></td>`,
		},
		{
			name:     "style declarations",
			tag:      "span",
			props:    Props{PropStyle: Declarations{"marginTop": 4}},
			expected: `<span style="margin-top:4px;"></span>`,
		},
		{
			name:     "style string",
			tag:      "span",
			props:    Props{PropStyle: "color: red"},
			expected: `<span style="color: red"></span>`,
		},
		{
			name:     "text is escaped",
			tag:      "p",
			props:    Props{PropChildren: "<b>&</b>"},
			expected: `<p>&lt;b&gt;&amp;&lt;/b&gt;</p>`,
		},
		{
			name:     "mixed children",
			tag:      "p",
			props:    Props{PropChildren: []any{"n=", 3, g.Raw("<br>"), nil, false}},
			expected: `<p>n=3<br></p>`,
		},
		{
			name:     "custom element",
			tag:      "my-widget",
			props:    nil,
			expected: `<my-widget></my-widget>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := r.CreateNode(tt.tag, tt.props)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, renderHTML(t, node))
		})
	}
}

func TestHTMLRenderer_Errors(t *testing.T) {
	r := NewHTMLRenderer()

	t.Run("invalid tag name", func(t *testing.T) {
		_, err := r.CreateNode("1div", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidTagName)
	})

	t.Run("unknown tag in strict mode", func(t *testing.T) {
		_, err := r.CreateNode("blink", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownTag)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		tag, ok := customErr.GetMetadata(MetaKeyTag)
		assert.True(t, ok)
		assert.Equal(t, "blink", tag)
	})

	t.Run("unknown tag allowed when not strict", func(t *testing.T) {
		lenient := NewHTMLRenderer(WithStrictTags(false))
		assert.False(t, lenient.Strict())

		node, err := lenient.CreateNode("blink", nil)
		require.NoError(t, err)
		assert.Equal(t, "<blink></blink>", renderHTML(t, node))
	})

	t.Run("invalid prop name", func(t *testing.T) {
		_, err := r.CreateNode("div", Props{`on"click`: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidPropName)
	})

	t.Run("unsupported prop value", func(t *testing.T) {
		_, err := r.CreateNode("div", Props{"data-x": []int{1}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnsupportedProp)
	})

	t.Run("unsupported style value", func(t *testing.T) {
		_, err := r.CreateNode("div", Props{PropStyle: 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnsupportedProp)
	})

	t.Run("unsupported child", func(t *testing.T) {
		_, err := r.CreateNode("div", Props{PropChildren: struct{}{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnsupportedChild)
	})

	t.Run("void element with children", func(t *testing.T) {
		_, err := r.CreateNode("br", Props{PropChildren: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnsupportedChild)
	})
}

func TestRendererFunc(t *testing.T) {
	var gotTag string
	r := RendererFunc(func(tag string, props Props) (g.Node, error) {
		gotTag = tag
		return g.Text(tag), nil
	})

	node, err := r.CreateNode("section", nil)
	require.NoError(t, err)
	assert.Equal(t, "section", gotTag)
	assert.Equal(t, "section", renderHTML(t, node))
}
