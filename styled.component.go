package styled

import (
	"io"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

// Component is a styled element: a tag paired with a compiled class name.
// Components are immutable and safe to share.
type Component struct {
	tag        string
	className  string
	renderer   Renderer
	normalizer ChildrenNormalizer
	logger     *zap.Logger
}

// RenderFunc renders a component for a props mapping.
type RenderFunc func(props Props) (g.Node, error)

// Tag returns the element name.
func (c *Component) Tag() string {
	return c.tag
}

// ClassName returns the compiled class name.
func (c *Component) ClassName() string {
	return c.className
}

// DotClassName returns the class selector, "." + ClassName().
func (c *Component) DotClassName() string {
	return SelectorDot + c.className
}

// String returns the class selector so that a component can be
// interpolated into another component's styles.
func (c *Component) String() string {
	return c.DotClassName()
}

// Render normalizes children and className and hands the result to the
// renderer. The compiled class is always the last className entry. props
// is never modified.
func (c *Component) Render(props Props) (g.Node, error) {
	c.logger.Debug(LogMsgComponentRender,
		zap.String(LogFieldTag, c.tag),
		zap.String(LogFieldClass, c.className),
	)

	normalized, err := c.normalizer.Normalize(props)
	if err != nil {
		return nil, err
	}

	out := normalized.Clone()
	classes := NormalizeClassName(out[PropClassName])
	out[PropClassName] = append(classes, c.className)

	return c.renderer.CreateNode(c.tag, out)
}

// Func returns Render as a plain function value.
func (c *Component) Func() RenderFunc {
	return c.Render
}

// Node returns a lazily rendered node. Errors from Render surface from the
// node's Render(io.Writer).
func (c *Component) Node(props Props) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		node, err := c.Render(props)
		if err != nil {
			return err
		}
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// El renders the component with the given children and no other props.
// A single child is passed as is; several are passed as a []any.
func (c *Component) El(children ...any) g.Node {
	switch len(children) {
	case 0:
		return c.Node(nil)
	case 1:
		return c.Node(Props{PropChildren: children[0]})
	default:
		return c.Node(Props{PropChildren: children})
	}
}

// With renders the component with props and children.
func (c *Component) With(props Props, children ...any) g.Node {
	out := props.Clone()
	switch len(children) {
	case 0:
	case 1:
		out[PropChildren] = children[0]
	default:
		out[PropChildren] = children
	}
	return c.Node(out)
}
