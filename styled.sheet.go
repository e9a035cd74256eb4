package styled

import (
	"io"
	"strings"
	"sync"

	"github.com/itsatony/go-styled/internal"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

// StyleEngine compiles a style input into a single CSS class name.
// Implementations may register the corresponding rules as a side effect.
type StyleEngine interface {
	Compile(input StyleInput) (string, error)
}

// StyleEngineFunc adapts a function to the StyleEngine interface.
type StyleEngineFunc func(input StyleInput) (string, error)

// Compile calls f(input).
func (f StyleEngineFunc) Compile(input StyleInput) (string, error) {
	return f(input)
}

// SheetOption configures a Sheet.
type SheetOption func(*sheetConfig)

type sheetConfig struct {
	prefix   string
	maxDepth int
	logger   *zap.Logger
}

func defaultSheetConfig() *sheetConfig {
	return &sheetConfig{
		prefix:   DefaultClassPrefix,
		maxDepth: DefaultMaxDepth,
	}
}

// WithClassPrefix sets the generated class name prefix.
// Default: "css"
func WithClassPrefix(prefix string) SheetOption {
	return func(c *sheetConfig) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithMaxDepth sets the maximum nesting depth of style fragments.
// Use 0 for unlimited depth.
// Default: 32
func WithMaxDepth(depth int) SheetOption {
	return func(c *sheetConfig) {
		c.maxDepth = depth
	}
}

// WithSheetLogger sets the logger for the sheet.
// Default: nil (no logging)
func WithSheetLogger(logger *zap.Logger) SheetOption {
	return func(c *sheetConfig) {
		c.logger = logger
	}
}

// sheetEntry holds the rules registered for one class
type sheetEntry struct {
	class string
	rules []string
}

// Sheet is the default StyleEngine. It serializes a StyleInput, hashes it
// into "<prefix>-<hash>[-<label>...]" and registers the scoped rules the
// first time a class is seen. Identical input always yields the same class.
// A Sheet is safe for concurrent use.
type Sheet struct {
	mu       sync.RWMutex
	prefix   string
	maxDepth int
	entries  []sheetEntry
	index    map[string]int
	logger   *zap.Logger
}

// NewSheet creates an empty stylesheet.
func NewSheet(opts ...SheetOption) *Sheet {
	config := defaultSheetConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgSheetCreated, zap.String(LogFieldClass, config.prefix))

	return &Sheet{
		prefix:   config.prefix,
		maxDepth: config.maxDepth,
		index:    make(map[string]int),
		logger:   logger,
	}
}

// Prefix returns the class name prefix.
func (s *Sheet) Prefix() string {
	return s.prefix
}

// Compile serializes input and returns its class name, inserting the
// scoped rules on first sight. Errors are cuserr validation errors.
func (s *Sheet) Compile(input StyleInput) (string, error) {
	text, err := SerializeStyle(input, s.maxDepth)
	if err != nil {
		return "", err
	}

	source, labels := internal.ExtractLabels(text)
	class := s.prefix + ClassSeparator + internal.Hash(source)
	if len(labels) > 0 {
		class += ClassSeparator + strings.Join(labels, ClassSeparator)
	}

	if s.Inserted(class) {
		return class, nil
	}

	rules, err := internal.CompileSource(source, SelectorDot+class, s.logger)
	if err != nil {
		return "", NewStyleSyntaxError(class, err)
	}

	s.insert(class, rules)
	return class, nil
}

func (s *Sheet) insert(class string, rules []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[class]; exists {
		return
	}
	s.index[class] = len(s.entries)
	s.entries = append(s.entries, sheetEntry{class: class, rules: rules})
	s.logger.Debug(LogMsgRulesInserted,
		zap.String(LogFieldClass, class),
		zap.Int(LogFieldRules, len(rules)),
	)
}

// Inserted reports whether rules for class are registered.
func (s *Sheet) Inserted(class string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[class]
	return ok
}

// Classes returns registered class names in insertion order.
func (s *Sheet) Classes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	classes := make([]string, len(s.entries))
	for i, e := range s.entries {
		classes[i] = e.class
	}
	return classes
}

// Rules returns all registered rules in insertion order.
func (s *Sheet) Rules() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rules []string
	for _, e := range s.entries {
		rules = append(rules, e.rules...)
	}
	return rules
}

// RulesFor returns the rules registered for class.
func (s *Sheet) RulesFor(class string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[class]
	if !ok {
		return nil, false
	}
	return append([]string(nil), s.entries[idx].rules...), true
}

// Len returns the number of registered classes.
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// CSS returns the stylesheet text, one rule per line.
func (s *Sheet) CSS() string {
	rules := s.Rules()
	if len(rules) == 0 {
		return ""
	}
	return strings.Join(rules, "\n") + "\n"
}

// WriteTo writes the stylesheet text to w.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.CSS())
	return int64(n), err
}

// StyleNode renders the sheet as a <style> element tagged with the prefix
// and the registered classes, for server-side rendered pages.
func (s *Sheet) StyleNode() g.Node {
	ids := append([]string{s.prefix}, s.Classes()...)
	css := strings.ReplaceAll(s.CSS(), "</", "<\\/")
	return g.El("style",
		g.Attr(StyleDataAttr, strings.Join(ids, ClassListSep)),
		g.Raw(css),
	)
}

// Reset drops every registered rule.
func (s *Sheet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.index = make(map[string]int)
	s.logger.Debug(LogMsgSheetReset)
}

// Snapshot captures the registered rules as a storable record.
func (s *Sheet) Snapshot(name string) *StoredSheet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]SheetEntry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = SheetEntry{
			Class: e.class,
			Rules: append([]string(nil), e.rules...),
		}
	}
	return &StoredSheet{
		Name:    name,
		Prefix:  s.prefix,
		Entries: entries,
	}
}

// Hydrate registers the entries of a stored sheet, skipping classes that
// are already present. Later compiles of the same input reuse them.
func (s *Sheet) Hydrate(stored *StoredSheet) error {
	if stored == nil {
		return NewConfigError(ErrMsgNilSheet)
	}
	for _, e := range stored.Entries {
		s.insert(e.Class, append([]string(nil), e.Rules...))
	}
	s.logger.Debug(LogMsgSheetHydrated,
		zap.String(LogFieldSheet, stored.Name),
		zap.Int(LogFieldClasses, len(stored.Entries)),
	)
	return nil
}
