package internal

import "fmt"

// Position represents a location in the style source
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// TokenType identifies the kind of CSS token
type TokenType int

const (
	TokenTypeEOF TokenType = iota
	TokenTypeText
	TokenTypeOpenBrace
	TokenTypeCloseBrace
	TokenTypeSemicolon
)

// String returns the token type name
func (t TokenType) String() string {
	switch t {
	case TokenTypeEOF:
		return "EOF"
	case TokenTypeText:
		return "TEXT"
	case TokenTypeOpenBrace:
		return "OPEN_BRACE"
	case TokenTypeCloseBrace:
		return "CLOSE_BRACE"
	case TokenTypeSemicolon:
		return "SEMICOLON"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit of style source
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Type == TokenTypeText {
		return fmt.Sprintf("%s(%q) at %s", t.Type, t.Value, t.Position)
	}
	return fmt.Sprintf("%s at %s", t.Type, t.Position)
}

// NewToken creates a new token with the given type, value, and position
func NewToken(tokenType TokenType, value string, pos Position) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	}
}
