package styled

import (
	"fmt"
	"reflect"
)

// Props is the render-time property mapping handed to a component. The keys
// "className" and "children" have special meaning; everything else is passed
// through to the renderer untouched.
type Props map[string]any

// Clone returns a shallow copy of p. A nil receiver yields an empty mapping.
func (p Props) Clone() Props {
	out := make(Props, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// NormalizeClassName turns a className property value into a list of
// class tokens:
//
//	nil          -> []
//	"a b"        -> ["a b"]
//	[]string{..} -> copy
//	[]any{..}    -> each non-nil element via fmt.Sprint
//	other        -> [fmt.Sprint(v)]
//
// The result is always a fresh slice the caller may append to.
func NormalizeClassName(v any) []string {
	switch x := v.(type) {
	case nil:
		return []string{}
	case string:
		return []string{x}
	case []string:
		out := make([]string, len(x), len(x)+1)
		copy(out, x)
		return out
	case []any:
		out := make([]string, 0, len(x)+1)
		for _, item := range x {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(x)}
	}
}

// ChildrenFunc produces children lazily at render time.
type ChildrenFunc func() (any, error)

// ChildrenNormalizer adapts the children of a props mapping before
// rendering. Implementations must not mutate the input mapping.
type ChildrenNormalizer interface {
	Normalize(props Props) (Props, error)
}

// ChildrenNormalizerFunc adapts a function to the ChildrenNormalizer interface.
type ChildrenNormalizerFunc func(props Props) (Props, error)

// Normalize calls f(props).
func (f ChildrenNormalizerFunc) Normalize(props Props) (Props, error) {
	return f(props)
}

// CallableChildren is the default ChildrenNormalizer. It copies the props
// and replaces a function-valued "children" entry with the value it returns.
// Accepted shapes are ChildrenFunc, func() any, func() (any, error) and
// func() string; any other function is a malformed-props error.
var CallableChildren ChildrenNormalizer = ChildrenNormalizerFunc(normalizeCallableChildren)

func normalizeCallableChildren(props Props) (Props, error) {
	out := props.Clone()

	children, ok := out[PropChildren]
	if !ok {
		return out, nil
	}

	var (
		resolved any
		err      error
	)
	switch fn := children.(type) {
	case ChildrenFunc:
		resolved, err = fn()
	case func() (any, error):
		resolved, err = fn()
	case func() any:
		resolved = fn()
	case func() string:
		resolved = fn()
	default:
		if isFunc(children) {
			return nil, NewUnsupportedChildrenFuncError(children)
		}
		return out, nil
	}
	if err != nil {
		return nil, NewChildrenFuncError(err)
	}

	out[PropChildren] = resolved
	return out, nil
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
