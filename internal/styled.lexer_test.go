package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexer_Tokenize_Structure(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "empty source",
			input:    "",
			expected: []TokenType{TokenTypeEOF},
		},
		{
			name:     "whitespace only",
			input:    "  \n\t ",
			expected: []TokenType{TokenTypeEOF},
		},
		{
			name:     "single declaration",
			input:    "color: red;",
			expected: []TokenType{TokenTypeText, TokenTypeSemicolon, TokenTypeEOF},
		},
		{
			name:  "nested block",
			input: "&:hover { color: blue }",
			expected: []TokenType{
				TokenTypeText, TokenTypeOpenBrace, TokenTypeText, TokenTypeCloseBrace, TokenTypeEOF,
			},
		},
		{
			name:     "semicolon inside url is not structural",
			input:    "background: url(data:image/png;base64,AA==);",
			expected: []TokenType{TokenTypeText, TokenTypeSemicolon, TokenTypeEOF},
		},
		{
			name:     "braces inside string are not structural",
			input:    `content: "{;}";`,
			expected: []TokenType{TokenTypeText, TokenTypeSemicolon, TokenTypeEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input, zap.NewNop()).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokenTypes(tokens))
		})
	}
}

func TestLexer_Tokenize_TextValues(t *testing.T) {
	t.Run("text is trimmed", func(t *testing.T) {
		tokens, err := NewLexer("  color : red  ;", nil).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		assert.Equal(t, "color : red", tokens[0].Value)
	})

	t.Run("comments are dropped", func(t *testing.T) {
		tokens, err := NewLexer("/* lead */color:/* mid */red;", nil).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		assert.Equal(t, "color: red", tokens[0].Value)
	})

	t.Run("quoted string kept verbatim", func(t *testing.T) {
		tokens, err := NewLexer(`content: 'a /* b */ c';`, nil).Tokenize()
		require.NoError(t, err)
		assert.Equal(t, `content: 'a /* b */ c'`, tokens[0].Value)
	})

	t.Run("escaped quote inside string", func(t *testing.T) {
		tokens, err := NewLexer(`content: "a\"b";`, nil).Tokenize()
		require.NoError(t, err)
		assert.Equal(t, `content: "a\"b"`, tokens[0].Value)
	})
}

func TestLexer_Tokenize_Positions(t *testing.T) {
	tokens, err := NewLexer("a {\n  color: red;\n}", nil).Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 6)

	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, tokens[0].Position)
	assert.Equal(t, Position{Offset: 2, Line: 1, Column: 3}, tokens[1].Position)
	assert.Equal(t, Position{Offset: 6, Line: 2, Column: 3}, tokens[2].Position)
	assert.Equal(t, TokenTypeCloseBrace, tokens[4].Type)
	assert.Equal(t, 3, tokens[4].Position.Line)
}

func TestLexer_Tokenize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "unterminated comment", input: "color: red; /* open", message: ErrMsgUnterminatedComment},
		{name: "unterminated double quote", input: `content: "abc`, message: ErrMsgUnterminatedStr},
		{name: "unterminated single quote", input: `content: 'abc;`, message: ErrMsgUnterminatedStr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input, nil).Tokenize()
			require.Error(t, err)

			var lexErr *LexerError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.message, lexErr.Message)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "EOF", TokenTypeEOF.String())
	assert.Equal(t, "TEXT", TokenTypeText.String())
	assert.Equal(t, "OPEN_BRACE", TokenTypeOpenBrace.String())
	assert.Equal(t, "CLOSE_BRACE", TokenTypeCloseBrace.String())
	assert.Equal(t, "SEMICOLON", TokenTypeSemicolon.String())
	assert.Equal(t, "UNKNOWN", TokenType(99).String())
}
