package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Parser builds a Block tree from a token stream
type Parser struct {
	tokens []Token
	pos    int
	logger *zap.Logger
}

// NewParser creates a new parser for the given tokens
func NewParser(tokens []Token, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldTokens, len(tokens)))
	return &Parser{
		tokens: tokens,
		logger: logger,
	}
}

// Parse parses the whole token stream into a root block
func (p *Parser) Parse() (*Block, error) {
	root := &Block{Position: Position{Line: 1, Column: 1}}
	if err := p.parseInto(root, true); err != nil {
		return nil, err
	}
	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldRules, len(root.Children)))
	return root, nil
}

// ParseSource is a convenience that lexes and parses in one step
func ParseSource(source string, logger *zap.Logger) (*Block, error) {
	tokens, err := NewLexer(source, logger).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens, logger).Parse()
}

func (p *Parser) parseInto(b *Block, isRoot bool) error {
	for {
		tok := p.next()
		switch tok.Type {
		case TokenTypeEOF:
			if !isRoot {
				return &ParserError{Message: ErrMsgUnclosedBlock, Position: b.Position}
			}
			return nil

		case TokenTypeSemicolon:
			continue

		case TokenTypeOpenBrace:
			return &ParserError{Message: ErrMsgEmptySelector, Position: tok.Position}

		case TokenTypeCloseBrace:
			if isRoot {
				return &ParserError{Message: ErrMsgUnexpectedClose, Position: tok.Position}
			}
			return nil

		case TokenTypeText:
			switch p.peek().Type {
			case TokenTypeOpenBrace:
				p.next()
				child := &Block{
					Prelude:  CollapseSpace(tok.Value),
					Position: tok.Position,
				}
				if err := p.parseInto(child, false); err != nil {
					return err
				}
				b.Children = append(b.Children, child)
			case TokenTypeSemicolon:
				p.next()
				if err := p.addStatement(b, tok); err != nil {
					return err
				}
			default:
				// Last declaration of a block may omit its semicolon.
				if err := p.addStatement(b, tok); err != nil {
					return err
				}
			}
		}
	}
}

func (p *Parser) addStatement(b *Block, tok Token) error {
	if strings.HasPrefix(tok.Value, StrAtPrefix) {
		b.Statements = append(b.Statements, CollapseSpace(tok.Value))
		return nil
	}
	decl, err := parseDeclaration(tok)
	if err != nil {
		return err
	}
	b.Declarations = append(b.Declarations, decl)
	return nil
}

func parseDeclaration(tok Token) (Declaration, error) {
	idx := strings.IndexByte(tok.Value, CharColon)
	if idx < 0 {
		return Declaration{}, &ParserError{Message: ErrMsgInvalidDeclaration, Position: tok.Position, Text: tok.Value}
	}
	prop := strings.TrimSpace(tok.Value[:idx])
	if prop == StringValueEmpty {
		return Declaration{}, &ParserError{Message: ErrMsgEmptyProperty, Position: tok.Position, Text: tok.Value}
	}
	value := CollapseSpace(tok.Value[idx+1:])
	if value == StringValueEmpty {
		return Declaration{}, &ParserError{Message: ErrMsgEmptyValue, Position: tok.Position, Text: tok.Value}
	}
	return Declaration{Property: prop, Value: value, Position: tok.Position}, nil
}

func (p *Parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenTypeEOF}
	}
	return p.tokens[p.pos]
}

// CollapseSpace trims s and folds whitespace runs outside quoted strings
// into a single space.
func CollapseSpace(s string) string {
	s = strings.TrimSpace(s)
	var sb strings.Builder
	sb.Grow(len(s))

	var quote byte
	pendingSpace := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			sb.WriteByte(ch)
			if ch == CharBackslash && i+1 < len(s) {
				i++
				sb.WriteByte(s[i])
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}
		if isSpace(ch) {
			pendingSpace = true
			continue
		}
		if pendingSpace {
			sb.WriteByte(CharSpace)
			pendingSpace = false
		}
		if ch == CharDoubleQuote || ch == CharSingleQuote {
			quote = ch
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

// ParserError represents a parse error with position
type ParserError struct {
	Message  string
	Position Position
	Text     string
}

func (e *ParserError) Error() string {
	if e.Text != StringValueEmpty {
		return e.Message + " " + quoteText(e.Text) + " at " + e.Position.String()
	}
	return e.Message + " at " + e.Position.String()
}

func quoteText(s string) string {
	return string(CharDoubleQuote) + s + string(CharDoubleQuote)
}
