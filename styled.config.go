package styled

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the default collaborators' settings.
//
//	class_prefix: app
//	strict_tags: false
//	max_depth: 16
type Config struct {
	// ClassPrefix prefixes generated class names. Default: "css".
	ClassPrefix string `yaml:"class_prefix" validate:"omitempty,css_ident"`

	// StrictTags restricts rendering to known tags and custom elements.
	// Default: true.
	StrictTags *bool `yaml:"strict_tags"`

	// MaxDepth bounds nested style fragments; 0 means unlimited.
	// Default: 32.
	MaxDepth *int `yaml:"max_depth" validate:"omitempty,gte=0,lte=1024"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssIdentPattern      = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)
	componentNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.-]*$`)
)

// validatorInstance returns the shared validator with the package's custom tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			return cssIdentPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("tag_name", func(fl validator.FieldLevel) bool {
			return isValidTagName(fl.Field().String())
		})

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// convertValidationError turns the first validator failure into a cuserr
// error naming the offending field.
func convertValidationError(code, msg string, err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return NewValidationFailedError(code, msg, yamlishFieldName(ves[0]), err)
	}
	return NewValidationFailedError(code, msg, "", err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigFileError(ErrMsgReadConfig, path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig parses and validates YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigFileError(ErrMsgParseConfig, "", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(ErrCodeConfig, ErrMsgInvalidConfig, err)
	}
	return nil
}

// SheetOptions returns the sheet options described by the configuration.
func (c *Config) SheetOptions() []SheetOption {
	var opts []SheetOption
	if c.ClassPrefix != "" {
		opts = append(opts, WithClassPrefix(c.ClassPrefix))
	}
	if c.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*c.MaxDepth))
	}
	return opts
}

// Options returns factory options with a new Sheet and HTMLRenderer built
// from the configuration. Extra sheet options are applied after the
// configured ones.
func (c *Config) Options(extra ...SheetOption) []Option {
	sheetOpts := append(c.SheetOptions(), extra...)

	strict := true
	if c.StrictTags != nil {
		strict = *c.StrictTags
	}

	return []Option{
		WithEngine(NewSheet(sheetOpts...)),
		WithRenderer(NewHTMLRenderer(WithStrictTags(strict))),
	}
}
