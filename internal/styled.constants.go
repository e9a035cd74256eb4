package internal

// Character constants used by the CSS lexer
const (
	CharOpenBrace   = '{'
	CharCloseBrace  = '}'
	CharSemicolon   = ';'
	CharColon       = ':'
	CharComma       = ','
	CharOpenParen   = '('
	CharCloseParen  = ')'
	CharOpenSquare  = '['
	CharCloseSquare = ']'
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharBackslash   = '\\'
	CharSlash       = '/'
	CharStar        = '*'
	CharAt          = '@'
	CharAmpersand   = '&'
	CharSpace       = ' '
	CharTab         = '\t'
	CharNewline     = '\n'
	CharCarriageRet = '\r'
	CharFormFeed    = '\f'
)

// String constants
const (
	StrCommentOpen   = "/*"
	StrCommentClose  = "*/"
	StrParentRef     = "&"
	StrAtPrefix      = "@"
	StrSpace         = " "
	StrSelectorSep   = ","
	StringValueEmpty = ""
)

// At-rule names that wrap scoped rules
const (
	AtRuleMedia     = "media"
	AtRuleSupports  = "supports"
	AtRuleContainer = "container"
	AtRuleLayer     = "layer"
	AtRuleScope     = "scope"
	AtRuleDocument  = "document"
)

// At-rule names that are emitted globally without scoping
const (
	AtRuleKeyframes        = "keyframes"
	AtRuleWebkitKeyframes  = "-webkit-keyframes"
	AtRuleFontFace         = "font-face"
	AtRulePage             = "page"
	AtRuleCounterStyle     = "counter-style"
	AtRuleProperty         = "property"
	AtRuleFontFeatureValue = "font-feature-values"
)

// Hashing constants
const (
	HashBase = 36
)

// Error message constants
const (
	ErrMsgUnterminatedComment = "unterminated comment"
	ErrMsgUnterminatedStr     = "unterminated string literal"
	ErrMsgUnexpectedClose     = "unexpected closing brace"
	ErrMsgUnclosedBlock       = "unclosed block"
	ErrMsgEmptySelector       = "block without selector"
	ErrMsgInvalidDeclaration  = "invalid declaration"
	ErrMsgEmptyProperty       = "declaration property cannot be empty"
	ErrMsgEmptyValue          = "declaration value cannot be empty"
	ErrMsgUnsupportedAtRule   = "unsupported at-rule"
	ErrMsgEmptyScope          = "scope selector cannot be empty"
)

// Log message constants
const (
	LogMsgLexerCreated   = "css lexer created"
	LogMsgTokenizerStart = "starting css tokenization"
	LogMsgTokenizerEnd   = "css tokenization complete"
	LogMsgParserCreated  = "css parser created"
	LogMsgParserEnd      = "css parse complete"
	LogMsgCompileStart   = "scoping css rules"
	LogMsgCompileEnd     = "css rules scoped"
	LogMsgAtRuleGlobal   = "global at-rule emitted"
)

// Log field constants
const (
	LogFieldSource = "source_length"
	LogFieldTokens = "token_count"
	LogFieldRules  = "rule_count"
	LogFieldScope  = "scope"
	LogFieldAtRule = "at_rule"
)
