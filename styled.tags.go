package styled

import (
	"sort"
	"strings"
)

//go:generate go run ./internal/tagsgen -out styled.tags.gen.go

// knownTags are the element names with generated accessors and the names
// the strict HTMLRenderer accepts. Keep sorted.
var knownTags = []string{
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "blockquote", "body", "br", "button",
	"canvas", "caption", "circle", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div", "dl", "dt",
	"ellipse", "em", "embed",
	"fieldset", "figcaption", "figure", "footer", "form",
	"g",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr", "html",
	"i", "iframe", "img", "input", "ins",
	"kbd",
	"label", "legend", "li", "line", "link",
	"main", "map", "mark", "menu", "meta", "meter",
	"nav", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "path", "picture", "polygon", "polyline", "pre", "progress",
	"q",
	"rect", "rp", "rt", "ruby",
	"s", "samp", "script", "search", "section", "select", "slot", "small", "source",
	"span", "strong", "style", "sub", "summary", "sup", "svg",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track",
	"u", "ul",
	"var", "video",
	"wbr",
}

// voidTags never have children or a closing tag
var voidTags = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

var knownTagSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(knownTags))
	for _, tag := range knownTags {
		set[tag] = struct{}{}
	}
	return set
}()

// KnownTags returns the sorted list of known element names.
func KnownTags() []string {
	tags := make([]string, len(knownTags))
	copy(tags, knownTags)
	sort.Strings(tags)
	return tags
}

// IsKnownTag reports whether tag is a known element name.
func IsKnownTag(tag string) bool {
	_, ok := knownTagSet[tag]
	return ok
}

// IsVoidTag reports whether tag is a void element.
func IsVoidTag(tag string) bool {
	_, ok := voidTags[strings.ToLower(tag)]
	return ok
}

// IsCustomElement reports whether tag has the shape of a custom element name.
func IsCustomElement(tag string) bool {
	return strings.Contains(tag, "-") && isValidTagName(tag) && tag[0] >= 'a' && tag[0] <= 'z'
}

// isValidTagName checks the syntax of an element name: an ASCII letter
// followed by letters, digits, '-', '_', '.' or ':'.
func isValidTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for i := 0; i < len(tag); i++ {
		ch := tag[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case i > 0 && (ch >= '0' && ch <= '9' || ch == '-' || ch == '_' || ch == '.' || ch == ':'):
		default:
			return false
		}
	}
	return true
}

// AccessorName returns the Go identifier of the generated accessor for tag.
func AccessorName(tag string) string {
	if name, ok := accessorOverrides[tag]; ok {
		return name
	}
	var sb strings.Builder
	upper := true
	for i := 0; i < len(tag); i++ {
		ch := tag[i]
		if ch == '-' {
			upper = true
			continue
		}
		if upper && ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		upper = false
		sb.WriteByte(ch)
	}
	return sb.String()
}

// accessorOverrides renames accessors that would collide with other
// identifiers in this package.
var accessorOverrides = map[string]string{
	"html":     "HTML",
	"option":   "OptionEl",
	"template": "TemplateEl",
}
