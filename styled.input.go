package styled

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StyleInput is the style source accepted by a Builder. It is a closed sum
// type with three constructors: CSS (an ordered fragment list), Template
// (literal parts interleaved with substitution values) and Declarations
// (object styles).
type StyleInput interface {
	writeCSS(w *styleWriter, depth int) error
}

// Fragments is an ordered list of style fragments. Strings are copied
// verbatim; numbers are formatted; nested StyleInputs, slices and
// components are expanded in place; nil and booleans are skipped so that
// conditional fragments can be written as `cond && "..."` equivalents.
type Fragments []any

// CSS creates a fragment-list style input.
func CSS(fragments ...any) Fragments {
	return Fragments(fragments)
}

func (f Fragments) writeCSS(w *styleWriter, depth int) error {
	for _, frag := range f {
		if err := w.writeValue(frag, depth); err != nil {
			return err
		}
	}
	return nil
}

// TemplateInput is the literal-with-placeholders form: Strings[0], Values[0],
// Strings[1], ... Strings[n]. There is always exactly one more string than
// values.
type TemplateInput struct {
	Strings []string
	Values  []any
}

// Template creates a template style input.
//
//	styled.Template([]string{"color: ", "; padding: ", ";"}, color, pad)
func Template(strs []string, values ...any) TemplateInput {
	return TemplateInput{Strings: strs, Values: values}
}

func (t TemplateInput) writeCSS(w *styleWriter, depth int) error {
	if len(t.Strings) != len(t.Values)+1 {
		return NewTemplateArityError(len(t.Strings), len(t.Values))
	}
	w.sb.WriteString(t.Strings[0])
	for i, v := range t.Values {
		if err := w.writeValue(v, depth); err != nil {
			return err
		}
		w.sb.WriteString(t.Strings[i+1])
	}
	return nil
}

// Declarations is an object style: property names map to values, and
// nested Declarations map selectors (or at-rules) to nested blocks.
// camelCase property names are converted to kebab-case; numbers gain a
// "px" unit unless the property is unitless or the number is zero.
// Keys are emitted in sorted order.
type Declarations map[string]any

func (d Declarations) writeCSS(w *styleWriter, depth int) error {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := w.writeDeclaration(key, d[key], depth); err != nil {
			return err
		}
	}
	return nil
}

// classSelector is satisfied by values that can stand for their CSS class
// inside another style, such as *Component.
type classSelector interface {
	DotClassName() string
}

// styleWriter accumulates serialized style text
type styleWriter struct {
	sb       strings.Builder
	maxDepth int
}

// SerializeStyle renders input to raw (unscoped) style text.
// maxDepth bounds nesting; 0 means unlimited.
func SerializeStyle(input StyleInput, maxDepth int) (string, error) {
	if input == nil {
		return "", NewNilInputError()
	}
	w := &styleWriter{maxDepth: maxDepth}
	if err := input.writeCSS(w, 0); err != nil {
		return "", err
	}
	return w.sb.String(), nil
}

func (w *styleWriter) checkDepth(depth int) error {
	if w.maxDepth > 0 && depth > w.maxDepth {
		return NewMaxDepthError(w.maxDepth)
	}
	return nil
}

func (w *styleWriter) writeValue(v any, depth int) error {
	if err := w.checkDepth(depth); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil, bool:
		return nil
	case string:
		w.sb.WriteString(x)
	case map[string]any:
		return Declarations(x).writeCSS(w, depth+1)
	case StyleInput:
		return x.writeCSS(w, depth+1)
	case classSelector:
		w.sb.WriteString(x.DotClassName())
	case []any:
		for _, item := range x {
			if err := w.writeValue(item, depth+1); err != nil {
				return err
			}
		}
	case []string:
		for _, item := range x {
			w.sb.WriteString(item)
		}
	case fmt.Stringer:
		w.sb.WriteString(x.String())
	default:
		s, ok := formatNumber(v)
		if !ok {
			return NewUnsupportedInterpolationError(v)
		}
		w.sb.WriteString(s)
	}
	return nil
}

func (w *styleWriter) writeDeclaration(key string, value any, depth int) error {
	if err := w.checkDepth(depth); err != nil {
		return err
	}

	switch x := value.(type) {
	case nil, bool:
		return nil
	case map[string]any:
		return w.writeBlock(key, Declarations(x), depth)
	case Declarations:
		return w.writeBlock(key, x, depth)
	case []any:
		// Repeated property: each entry becomes a fallback declaration.
		for _, item := range x {
			if err := w.writeDeclaration(key, item, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	formatted, err := formatDeclarationValue(key, value)
	if err != nil {
		return err
	}
	w.sb.WriteString(PropertyName(key))
	w.sb.WriteByte(':')
	w.sb.WriteString(formatted)
	w.sb.WriteByte(';')
	return nil
}

func (w *styleWriter) writeBlock(selector string, body Declarations, depth int) error {
	w.sb.WriteString(selector)
	w.sb.WriteByte('{')
	if err := body.writeCSS(w, depth+1); err != nil {
		return err
	}
	w.sb.WriteByte('}')
	return nil
}

func formatDeclarationValue(key string, value any) (string, error) {
	switch x := value.(type) {
	case string:
		return x, nil
	case classSelector:
		return x.DotClassName(), nil
	case fmt.Stringer:
		return x.String(), nil
	}

	s, ok := formatNumber(value)
	if !ok {
		return "", NewUnsupportedInterpolationError(value)
	}
	if s == "0" || strings.HasPrefix(key, "--") || isUnitless(PropertyName(key)) {
		return s, nil
	}
	return s + UnitPixel, nil
}

func formatNumber(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	default:
		return "", false
	}
}

// PropertyName converts a camelCase object key to its CSS property name.
// Custom properties ("--x") and names that already contain a dash are
// returned unchanged; vendor "ms" gains its leading dash.
func PropertyName(key string) string {
	if strings.HasPrefix(key, "--") || strings.Contains(key, "-") {
		return key
	}
	var sb strings.Builder
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if ch >= 'A' && ch <= 'Z' {
			sb.WriteByte('-')
			sb.WriteByte(ch + ('a' - 'A'))
			continue
		}
		sb.WriteByte(ch)
	}
	name := sb.String()
	if strings.HasPrefix(name, "ms-") {
		name = "-" + name
	}
	return name
}

func isUnitless(property string) bool {
	_, ok := unitlessProperties[property]
	return ok
}

// unitlessProperties lists properties whose numeric values take no unit
var unitlessProperties = map[string]struct{}{
	"animation-iteration-count": {},
	"aspect-ratio":              {},
	"border-image-outset":       {},
	"border-image-slice":        {},
	"border-image-width":        {},
	"box-flex":                  {},
	"box-flex-group":            {},
	"box-ordinal-group":         {},
	"column-count":              {},
	"columns":                   {},
	"flex":                      {},
	"flex-grow":                 {},
	"flex-positive":             {},
	"flex-shrink":               {},
	"flex-negative":             {},
	"flex-order":                {},
	"grid-area":                 {},
	"grid-row":                  {},
	"grid-row-end":              {},
	"grid-row-span":             {},
	"grid-row-start":            {},
	"grid-column":               {},
	"grid-column-end":           {},
	"grid-column-span":          {},
	"grid-column-start":         {},
	"font-weight":               {},
	"line-clamp":                {},
	"line-height":               {},
	"opacity":                   {},
	"order":                     {},
	"orphans":                   {},
	"scale":                     {},
	"tab-size":                  {},
	"widows":                    {},
	"z-index":                   {},
	"zoom":                      {},
	"fill-opacity":              {},
	"flood-opacity":             {},
	"stop-opacity":              {},
	"stroke-dasharray":          {},
	"stroke-dashoffset":         {},
	"stroke-miterlimit":         {},
	"stroke-opacity":            {},
	"stroke-width":              {},
}
