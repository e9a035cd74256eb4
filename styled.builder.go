package styled

// Builder compiles a style input and returns a component bound to the
// builder's tag. Every call compiles anew; engine errors are returned as is.
type Builder func(input StyleInput) (*Component, error)

// CSS builds a component from a fragment list.
//
//	button, err := styled.Button().CSS("color: ", theme.Primary, ";")
func (b Builder) CSS(fragments ...any) (*Component, error) {
	return b(CSS(fragments...))
}

// Template builds a component from literal parts and substitution values.
func (b Builder) Template(strs []string, values ...any) (*Component, error) {
	return b(Template(strs, values...))
}

// Object builds a component from object styles.
func (b Builder) Object(decls Declarations) (*Component, error) {
	return b(decls)
}

// Must builds a component and panics if there's an error.
// Intended for package-level component declarations.
func (b Builder) Must(input StyleInput) *Component {
	c, err := b(input)
	if err != nil {
		panic(err)
	}
	return c
}
