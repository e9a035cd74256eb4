package internal

import "strings"

// Declaration is a single property: value pair
type Declaration struct {
	Property string
	Value    string
	Position Position
}

// String renders the declaration in minified form
func (d Declaration) String() string {
	return d.Property + string(CharColon) + d.Value + string(CharSemicolon)
}

// Block is a rule block. The root block has an empty prelude.
type Block struct {
	Prelude      string
	Position     Position
	Declarations []Declaration
	Statements   []string // at-rule statements such as @import, without the trailing ';'
	Children     []*Block
}

// IsAtRule reports whether the block prelude starts an at-rule
func (b *Block) IsAtRule() bool {
	return strings.HasPrefix(b.Prelude, StrAtPrefix)
}

// AtRuleName returns the lower-cased at-rule keyword ("media", "keyframes", ...)
func (b *Block) AtRuleName() string {
	if !b.IsAtRule() {
		return StringValueEmpty
	}
	name := b.Prelude[len(StrAtPrefix):]
	if idx := strings.IndexFunc(name, func(r rune) bool {
		return r == CharSpace || r == CharTab || r == CharNewline || r == CharOpenParen
	}); idx >= 0 {
		name = name[:idx]
	}
	return strings.ToLower(name)
}

// declarationsString renders all declarations of the block back to back
func (b *Block) declarationsString() string {
	var sb strings.Builder
	for _, d := range b.Declarations {
		sb.WriteString(d.String())
	}
	return sb.String()
}
