package styled

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownTags(t *testing.T) {
	tags := KnownTags()
	assert.True(t, sort.StringsAreSorted(tags))
	assert.Contains(t, tags, "div")
	assert.Contains(t, tags, "svg")

	tags[0] = "mutated"
	assert.NotEqual(t, "mutated", KnownTags()[0])
}

func TestIsKnownTag(t *testing.T) {
	assert.True(t, IsKnownTag("div"))
	assert.True(t, IsKnownTag("h1"))
	assert.False(t, IsKnownTag("blink"))
	assert.False(t, IsKnownTag("DIV"))
}

func TestIsVoidTag(t *testing.T) {
	assert.True(t, IsVoidTag("br"))
	assert.True(t, IsVoidTag("IMG"))
	assert.False(t, IsVoidTag("div"))
}

func TestIsCustomElement(t *testing.T) {
	assert.True(t, IsCustomElement("my-widget"))
	assert.False(t, IsCustomElement("widget"))
	assert.False(t, IsCustomElement("-widget"))
	assert.False(t, IsCustomElement("My-Widget"))
}

func TestIsValidTagName(t *testing.T) {
	valid := []string{"a", "h1", "my-el", "svg:rect", "x_y"}
	invalid := []string{"", "1a", "-a", "a b", "a>", `a"`}

	for _, tag := range valid {
		assert.True(t, isValidTagName(tag), tag)
	}
	for _, tag := range invalid {
		assert.False(t, isValidTagName(tag), tag)
	}
}

func TestAccessorName(t *testing.T) {
	assert.Equal(t, "Div", AccessorName("div"))
	assert.Equal(t, "H1", AccessorName("h1"))
	assert.Equal(t, "HTML", AccessorName("html"))
	assert.Equal(t, "TemplateEl", AccessorName("template"))
	assert.Equal(t, "OptionEl", AccessorName("option"))
	assert.Equal(t, "MyWidget", AccessorName("my-widget"))
}
