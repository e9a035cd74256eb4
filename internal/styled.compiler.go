package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Compiler flattens a parsed Block tree into standalone CSS rules scoped to
// a selector. Nested blocks resolve '&' against their parent selectors;
// blocks without '&' become descendants of the parent.
type Compiler struct {
	logger *zap.Logger
}

// NewCompiler creates a new rule compiler
func NewCompiler(logger *zap.Logger) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{logger: logger}
}

// Compile scopes root to selector and returns the flat rule list.
// Hoisted statements (@import, @charset, ...) come first, followed by the
// root declarations and then nested rules in source order.
func (c *Compiler) Compile(root *Block, selector string) ([]string, error) {
	selector = strings.TrimSpace(selector)
	if selector == StringValueEmpty {
		return nil, &CompileError{Message: ErrMsgEmptyScope}
	}
	c.logger.Debug(LogMsgCompileStart, zap.String(LogFieldScope, selector))

	var statements []string
	var rules []string
	if err := c.emit(root, []string{selector}, &statements, &rules); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(statements)+len(rules))
	for _, stmt := range statements {
		out = append(out, stmt+string(CharSemicolon))
	}
	out = append(out, rules...)

	c.logger.Debug(LogMsgCompileEnd,
		zap.String(LogFieldScope, selector),
		zap.Int(LogFieldRules, len(out)),
	)
	return out, nil
}

// CompileSource lexes, parses and scopes source in one step
func CompileSource(source, selector string, logger *zap.Logger) ([]string, error) {
	root, err := ParseSource(source, logger)
	if err != nil {
		return nil, err
	}
	return NewCompiler(logger).Compile(root, selector)
}

func (c *Compiler) emit(b *Block, selectors []string, statements, rules *[]string) error {
	*statements = append(*statements, b.Statements...)

	if len(b.Declarations) > 0 {
		*rules = append(*rules, strings.Join(selectors, StrSelectorSep)+string(CharOpenBrace)+b.declarationsString()+string(CharCloseBrace))
	}

	for _, child := range b.Children {
		if !child.IsAtRule() {
			if err := c.emit(child, CombineSelectors(selectors, child.Prelude), statements, rules); err != nil {
				return err
			}
			continue
		}

		name := child.AtRuleName()
		switch name {
		case AtRuleMedia, AtRuleSupports, AtRuleContainer, AtRuleLayer, AtRuleScope, AtRuleDocument:
			var inner []string
			if err := c.emit(child, selectors, statements, &inner); err != nil {
				return err
			}
			if len(inner) > 0 {
				*rules = append(*rules, child.Prelude+string(CharOpenBrace)+strings.Join(inner, StringValueEmpty)+string(CharCloseBrace))
			}
		case AtRuleKeyframes, AtRuleWebkitKeyframes, AtRuleFontFace, AtRulePage,
			AtRuleCounterStyle, AtRuleProperty, AtRuleFontFeatureValue:
			c.logger.Debug(LogMsgAtRuleGlobal, zap.String(LogFieldAtRule, name))
			*rules = append(*rules, rawBlock(child))
		default:
			return &CompileError{Message: ErrMsgUnsupportedAtRule, Name: child.Prelude, Position: child.Position}
		}
	}
	return nil
}

// rawBlock renders a block and its children without any selector scoping
func rawBlock(b *Block) string {
	var sb strings.Builder
	sb.WriteString(b.Prelude)
	sb.WriteByte(CharOpenBrace)
	sb.WriteString(b.declarationsString())
	for _, child := range b.Children {
		sb.WriteString(rawBlock(child))
	}
	sb.WriteByte(CharCloseBrace)
	return sb.String()
}

// CombineSelectors resolves a nested selector list against its parents.
// Each comma-separated part containing '&' has every '&' replaced by the
// parent; other parts are joined to the parent with a descendant combinator.
func CombineSelectors(parents []string, nested string) []string {
	parts := SplitSelectorList(nested)
	out := make([]string, 0, len(parents)*len(parts))
	for _, parent := range parents {
		for _, part := range parts {
			if strings.Contains(part, StrParentRef) {
				out = append(out, strings.ReplaceAll(part, StrParentRef, parent))
			} else {
				out = append(out, parent+StrSpace+part)
			}
		}
	}
	return out
}

// SplitSelectorList splits a selector list on top-level commas, ignoring
// commas inside parentheses, brackets or quoted strings.
func SplitSelectorList(list string) []string {
	var parts []string
	var quote byte
	depth := 0
	start := 0
	for i := 0; i < len(list); i++ {
		ch := list[i]
		switch {
		case quote != 0:
			if ch == CharBackslash {
				i++
			} else if ch == quote {
				quote = 0
			}
		case ch == CharDoubleQuote || ch == CharSingleQuote:
			quote = ch
		case ch == CharOpenParen || ch == CharOpenSquare:
			depth++
		case ch == CharCloseParen || ch == CharCloseSquare:
			if depth > 0 {
				depth--
			}
		case ch == CharComma && depth == 0:
			if part := strings.TrimSpace(list[start:i]); part != StringValueEmpty {
				parts = append(parts, part)
			}
			start = i + 1
		}
	}
	if part := strings.TrimSpace(list[start:]); part != StringValueEmpty {
		parts = append(parts, part)
	}
	return parts
}

// CompileError represents a rule scoping error
type CompileError struct {
	Message  string
	Name     string
	Position Position
}

func (e *CompileError) Error() string {
	if e.Name != StringValueEmpty {
		return e.Message + " " + quoteText(e.Name) + " at " + e.Position.String()
	}
	return e.Message
}
