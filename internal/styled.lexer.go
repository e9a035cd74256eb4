package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Lexer splits style source into text runs and the structural characters
// '{', '}' and ';'. Comments are dropped; quoted strings and parenthesised
// groups are kept verbatim so that url(data:...;...) survives intact.
type Lexer struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	depth  int // Parenthesis/bracket nesting
	text   strings.Builder
	start  Position
	inText bool
	logger *zap.Logger
}

// NewLexer creates a new lexer for the given source
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the source and returns a token stream ending in EOF
func (l *Lexer) Tokenize() ([]Token, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token

	for !l.isAtEnd() {
		if l.matchStr(StrCommentOpen) {
			if err := l.skipComment(); err != nil {
				return nil, err
			}
			continue
		}

		ch := l.peek()
		switch {
		case ch == CharDoubleQuote || ch == CharSingleQuote:
			if err := l.scanString(ch); err != nil {
				return nil, err
			}
		case ch == CharOpenParen || ch == CharOpenSquare:
			l.depth++
			l.consume()
		case ch == CharCloseParen || ch == CharCloseSquare:
			if l.depth > 0 {
				l.depth--
			}
			l.consume()
		case l.depth == 0 && (ch == CharOpenBrace || ch == CharCloseBrace || ch == CharSemicolon):
			tokens = l.flush(tokens)
			tokens = append(tokens, NewToken(structuralType(ch), string(ch), l.currentPosition()))
			l.advance()
		default:
			l.consume()
		}
	}

	tokens = l.flush(tokens)
	tokens = append(tokens, NewToken(TokenTypeEOF, StringValueEmpty, l.currentPosition()))

	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens, nil
}

func structuralType(ch byte) TokenType {
	switch ch {
	case CharOpenBrace:
		return TokenTypeOpenBrace
	case CharCloseBrace:
		return TokenTypeCloseBrace
	default:
		return TokenTypeSemicolon
	}
}

// flush emits the pending text run, if it holds anything besides whitespace
func (l *Lexer) flush(tokens []Token) []Token {
	if l.inText {
		value := strings.TrimSpace(l.text.String())
		if value != StringValueEmpty {
			tokens = append(tokens, NewToken(TokenTypeText, value, l.start))
		}
	}
	l.text.Reset()
	l.inText = false
	return tokens
}

// consume appends the current character to the pending text run
func (l *Lexer) consume() {
	ch := l.peek()
	if !l.inText && !isSpace(ch) {
		l.inText = true
		l.start = l.currentPosition()
	}
	if l.inText {
		l.text.WriteByte(ch)
	}
	l.advance()
}

func (l *Lexer) scanString(quote byte) error {
	startPos := l.currentPosition()
	l.consume()
	for !l.isAtEnd() {
		ch := l.peek()
		if ch == CharBackslash && l.pos+1 < len(l.source) {
			l.consume()
			l.consume()
			continue
		}
		l.consume()
		if ch == quote {
			return nil
		}
	}
	return &LexerError{Message: ErrMsgUnterminatedStr, Position: startPos}
}

func (l *Lexer) skipComment() error {
	startPos := l.currentPosition()
	l.advanceN(len(StrCommentOpen))
	for !l.isAtEnd() {
		if l.matchStr(StrCommentClose) {
			l.advanceN(len(StrCommentClose))
			// A comment separates tokens like whitespace does.
			if l.inText {
				l.text.WriteByte(CharSpace)
			}
			return nil
		}
		l.advance()
	}
	return &LexerError{Message: ErrMsgUnterminatedComment, Position: startPos}
}

// Position tracking helpers

func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) advance() {
	if l.isAtEnd() {
		return
	}
	if l.source[l.pos] == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}

func isSpace(ch byte) bool {
	return ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet || ch == CharFormFeed
}

// LexerError represents a lexer error with position
type LexerError struct {
	Message  string
	Position Position
}

func (e *LexerError) Error() string {
	return e.Message + " at " + e.Position.String()
}
