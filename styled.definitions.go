package styled

import (
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Definition declares one named component in a definitions file.
type Definition struct {
	Name  string `yaml:"name" validate:"required,component_name"`
	Tag   string `yaml:"tag" validate:"required,tag_name"`
	CSS   string `yaml:"css"`
	Label string `yaml:"label" validate:"omitempty,css_ident"`
}

// Definitions is a parsed component definitions file.
//
//	config:
//	  class_prefix: app
//	components:
//	  - name: Button
//	    tag: button
//	    label: button
//	    css: |
//	      padding: 4px 8px;
//	      &:hover { color: red; }
type Definitions struct {
	Config     *Config      `yaml:"config"`
	Components []Definition `yaml:"components" validate:"dive"`
}

// LoadDefinitions reads and validates a YAML definitions file.
func LoadDefinitions(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigFileError(ErrMsgReadDefinitions, path, err)
	}
	return ParseDefinitions(data)
}

// ParseDefinitions parses and validates YAML component definitions.
func ParseDefinitions(data []byte) (*Definitions, error) {
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, NewConfigFileError(ErrMsgParseDefinitions, "", err)
	}
	if err := defs.Validate(); err != nil {
		return nil, err
	}
	return &defs, nil
}

// Validate checks every definition and rejects repeated names.
func (d *Definitions) Validate() error {
	if d.Config != nil {
		if err := d.Config.Validate(); err != nil {
			return err
		}
	}
	if err := validatorInstance().Struct(d); err != nil {
		return convertValidationError(ErrCodeDefinition, ErrMsgInvalidDefinition, err)
	}

	seen := make(map[string]struct{}, len(d.Components))
	for _, def := range d.Components {
		if _, dup := seen[def.Name]; dup {
			return NewDuplicateComponentError(def.Name)
		}
		seen[def.Name] = struct{}{}
	}
	return nil
}

// Options returns the factory options of the embedded configuration, or
// nil when the file has none.
func (d *Definitions) Options(extra ...SheetOption) []Option {
	if d.Config == nil {
		if len(extra) == 0 {
			return nil
		}
		return []Option{WithEngine(NewSheet(extra...))}
	}
	return d.Config.Options(extra...)
}

// Input returns the style input of a definition. A label is appended as a
// "label:" declaration so that it shows in the class name.
func (def Definition) Input() StyleInput {
	if def.Label == "" {
		return CSS(def.CSS)
	}
	return CSS(def.CSS, "\nlabel:", def.Label, ";")
}

// Compile builds every definition with f, in file order.
func (d *Definitions) Compile(f *Factory) (*ComponentSet, error) {
	set := &ComponentSet{
		byName: make(map[string]*Component, len(d.Components)),
	}
	for _, def := range d.Components {
		if _, dup := set.byName[def.Name]; dup {
			return nil, NewDuplicateComponentError(def.Name)
		}
		c, err := f.Tag(def.Tag)(def.Input())
		if err != nil {
			return nil, NewDefinitionCompileError(def.Name, err)
		}
		set.names = append(set.names, def.Name)
		set.byName[def.Name] = c
	}
	f.logger.Debug(LogMsgDefinitionsLoad, zap.Int(LogFieldComponents, len(set.names)))
	return set, nil
}

// ComponentSet holds compiled components by name.
type ComponentSet struct {
	names  []string
	byName map[string]*Component
}

// Get returns the component called name.
func (s *ComponentSet) Get(name string) (*Component, error) {
	c, ok := s.byName[name]
	if !ok {
		return nil, NewComponentNotFoundError(name)
	}
	return c, nil
}

// Names returns component names in definition order.
func (s *ComponentSet) Names() []string {
	return append([]string(nil), s.names...)
}

// SortedNames returns component names in lexical order.
func (s *ComponentSet) SortedNames() []string {
	names := s.Names()
	sort.Strings(names)
	return names
}

// Len returns the number of components.
func (s *ComponentSet) Len() int {
	return len(s.names)
}
