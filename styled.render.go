package styled

import (
	"fmt"
	"sort"
	"strings"

	g "maragu.dev/gomponents"
)

// Renderer builds a node for an element of the given tag with the given
// properties. Unknown tags and malformed props are reported as errors.
type Renderer interface {
	CreateNode(tag string, props Props) (g.Node, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(tag string, props Props) (g.Node, error)

// CreateNode calls f(tag, props).
func (f RendererFunc) CreateNode(tag string, props Props) (g.Node, error) {
	return f(tag, props)
}

// RendererOption configures an HTMLRenderer.
type RendererOption func(*HTMLRenderer)

// WithStrictTags controls whether only known HTML tags and custom element
// names are accepted.
// Default: true
func WithStrictTags(strict bool) RendererOption {
	return func(r *HTMLRenderer) {
		r.strict = strict
	}
}

// HTMLRenderer is the default Renderer. It produces gomponents element
// nodes: props become attributes in sorted key order and "children" become
// child nodes.
type HTMLRenderer struct {
	strict bool
}

// NewHTMLRenderer creates an HTML renderer.
func NewHTMLRenderer(opts ...RendererOption) *HTMLRenderer {
	r := &HTMLRenderer{strict: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Strict reports whether tag names are checked against the known set.
func (r *HTMLRenderer) Strict() bool {
	return r.strict
}

// CreateNode implements Renderer.
func (r *HTMLRenderer) CreateNode(tag string, props Props) (g.Node, error) {
	if err := r.checkTag(tag); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		if k != PropChildren {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	nodes := make([]g.Node, 0, len(keys)+1)
	for _, key := range keys {
		attr, err := attributeNode(tag, key, props[key])
		if err != nil {
			return nil, err
		}
		if attr != nil {
			nodes = append(nodes, attr)
		}
	}

	if children, ok := props[PropChildren]; ok && children != nil {
		if IsVoidTag(tag) {
			return nil, NewUnsupportedChildError(tag, children)
		}
		var err error
		nodes, err = appendChildren(nodes, tag, children)
		if err != nil {
			return nil, err
		}
	}

	return g.El(tag, nodes...), nil
}

func (r *HTMLRenderer) checkTag(tag string) error {
	if !isValidTagName(tag) {
		return NewInvalidTagError(tag)
	}
	if r.strict && !IsKnownTag(tag) && !IsCustomElement(tag) {
		return NewUnknownTagError(tag)
	}
	return nil
}

// attributeNode converts one property to an attribute. A nil node with a
// nil error means the property renders nothing.
func attributeNode(tag, key string, value any) (g.Node, error) {
	if !isValidAttrName(key) {
		return nil, NewInvalidPropError(tag, key)
	}

	switch key {
	case PropClassName:
		classes := joinClasses(NormalizeClassName(value))
		if classes == "" {
			return nil, nil
		}
		return g.Attr(AttrClass, classes), nil
	case PropHTMLFor:
		key = AttrFor
	case PropStyle:
		return styleAttribute(tag, value)
	}

	switch x := value.(type) {
	case nil:
		return nil, nil
	case bool:
		if !x {
			return nil, nil
		}
		return g.Attr(key), nil
	case string:
		return g.Attr(key, x), nil
	case fmt.Stringer:
		return g.Attr(key, x.String()), nil
	}

	if s, ok := formatNumber(value); ok {
		return g.Attr(key, s), nil
	}
	return nil, NewUnsupportedPropError(tag, key, value)
}

func styleAttribute(tag string, value any) (g.Node, error) {
	var text string
	switch x := value.(type) {
	case nil:
		return nil, nil
	case string:
		text = x
	case Declarations:
		s, err := SerializeStyle(x, DefaultMaxDepth)
		if err != nil {
			return nil, err
		}
		text = s
	case map[string]any:
		s, err := SerializeStyle(Declarations(x), DefaultMaxDepth)
		if err != nil {
			return nil, err
		}
		text = s
	default:
		return nil, NewUnsupportedPropError(tag, PropStyle, value)
	}
	if text == "" {
		return nil, nil
	}
	return g.Attr(AttrStyle, text), nil
}

// joinClasses joins class tokens with single spaces, dropping blanks
func joinClasses(classes []string) string {
	kept := classes[:0]
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, ClassListSep)
}

func appendChildren(nodes []g.Node, tag string, child any) ([]g.Node, error) {
	switch x := child.(type) {
	case nil, bool:
		return nodes, nil
	case string:
		return append(nodes, g.Text(x)), nil
	case *Component:
		return append(nodes, x.Node(nil)), nil
	case g.Node:
		return append(nodes, x), nil
	case []g.Node:
		return append(nodes, x...), nil
	case []string:
		for _, s := range x {
			nodes = append(nodes, g.Text(s))
		}
		return nodes, nil
	case []any:
		var err error
		for _, item := range x {
			nodes, err = appendChildren(nodes, tag, item)
			if err != nil {
				return nil, err
			}
		}
		return nodes, nil
	case fmt.Stringer:
		return append(nodes, g.Text(x.String())), nil
	}

	if s, ok := formatNumber(child); ok {
		return append(nodes, g.Text(s)), nil
	}
	return nil, NewUnsupportedChildError(tag, child)
}

// isValidAttrName rejects names that would break out of the attribute
// syntax: empty, whitespace, quotes, '>', '/', '=' and control characters.
func isValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, ch := range name {
		if ch <= ' ' || ch == 0x7f {
			return false
		}
		switch ch {
		case '"', '\'', '>', '/', '=', '<':
			return false
		}
	}
	return true
}
