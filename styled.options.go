package styled

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Factory.
type Option func(*factoryConfig)

// factoryConfig holds the collaborators of a Factory.
type factoryConfig struct {
	engine     StyleEngine
	engineSet  bool
	renderer   Renderer
	normalizer ChildrenNormalizer
	logger     *zap.Logger
}

// defaultFactoryConfig returns the default factory configuration.
// The default engine is created in New so that it picks up the logger.
func defaultFactoryConfig() *factoryConfig {
	return &factoryConfig{
		renderer:   NewHTMLRenderer(),
		normalizer: CallableChildren,
		logger:     nil,
	}
}

// WithEngine sets the style engine that compiles style input to class names.
// Default: a new Sheet
func WithEngine(engine StyleEngine) Option {
	return func(c *factoryConfig) {
		c.engine = engine
		c.engineSet = true
	}
}

// WithRenderer sets the renderer that builds element nodes.
// Default: NewHTMLRenderer()
func WithRenderer(renderer Renderer) Option {
	return func(c *factoryConfig) {
		c.renderer = renderer
	}
}

// WithNormalizer sets the children normalizer applied before rendering.
// Default: CallableChildren
func WithNormalizer(normalizer ChildrenNormalizer) Option {
	return func(c *factoryConfig) {
		c.normalizer = normalizer
	}
}

// WithLogger sets the logger for the factory and its default engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *factoryConfig) {
		c.logger = logger
	}
}
