// Package styled pairs HTML tag names with CSS and produces components whose
// rendered output carries a generated class name.
//
// A builder is looked up by tag and called with a style input:
//
//	button := styled.Button().Must(styled.CSS(`
//	    padding: 4px 8px;
//	    &:hover { color: red; }
//	`))
//
//	node := button.El("Save")
//	_ = node.Render(w) // <button class="css-1x2y3z">Save</button>
//
// # Style input
//
// Three constructors build a StyleInput:
//
//	styled.CSS("color: ", color, ";")                          // fragment list
//	styled.Template([]string{"color: ", ";"}, color)           // literal parts and values
//	styled.Declarations{"fontSize": 12, "&:hover": styled.Declarations{"color": "red"}}
//
// Nested rules use "&" for the parent selector; @media, @supports,
// @container and @layer blocks wrap scoped rules, while @keyframes and
// @font-face stay global. A "label: name;" declaration is appended to the
// generated class name.
//
// # Collaborators
//
// The factory delegates to three collaborators, each replaceable with an
// option:
//
//	f, _ := styled.New(
//	    styled.WithEngine(sheet),           // StyleEngine: style input -> class name
//	    styled.WithNormalizer(normalizer),  // ChildrenNormalizer: props -> props
//	    styled.WithRenderer(renderer),      // Renderer: tag + props -> node
//	    styled.WithLogger(logger),
//	)
//
// The default engine is a Sheet. Its rules are written into a page with
// Sheet.StyleNode or Sheet.WriteTo, and can be persisted with Snapshot and
// restored with Hydrate through a SheetStorage driver ("memory",
// "filesystem" or "postgres").
//
// # Errors
//
// Collaborator errors are returned unchanged. Errors created in this package
// are go-cuserr errors carrying an ErrCode* category and metadata such as
// the offending tag, prop, or line and column of a CSS syntax error.
package styled
