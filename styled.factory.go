package styled

import (
	"sync"

	"go.uber.org/zap"
)

// Factory turns tag names into component builders. It holds no mutable
// state of its own and is safe for concurrent use as long as its
// collaborators are.
type Factory struct {
	engine     StyleEngine
	renderer   Renderer
	normalizer ChildrenNormalizer
	logger     *zap.Logger
}

// New creates a Factory with the given options.
func New(opts ...Option) (*Factory, error) {
	config := defaultFactoryConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := config.engine
	if !config.engineSet {
		engine = NewSheet(WithSheetLogger(logger))
	}
	if engine == nil {
		return nil, NewConfigError(ErrMsgNilEngine)
	}
	if config.renderer == nil {
		return nil, NewConfigError(ErrMsgNilRenderer)
	}
	if config.normalizer == nil {
		return nil, NewConfigError(ErrMsgNilNormalizer)
	}

	logger.Debug(LogMsgFactoryCreated)

	return &Factory{
		engine:     engine,
		renderer:   config.renderer,
		normalizer: config.normalizer,
		logger:     logger,
	}, nil
}

// MustNew creates a new Factory and panics if there's an error.
func MustNew(opts ...Option) *Factory {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Tag returns a builder for elements named tag. The lookup is lazy: any
// string is accepted and nothing is cached, so two lookups of the same tag
// return independent builders. Invalid tags surface when a component built
// from the builder is rendered.
func (f *Factory) Tag(tag string) Builder {
	f.logger.Debug(LogMsgBuilderLookup, zap.String(LogFieldTag, tag))
	return func(input StyleInput) (*Component, error) {
		class, err := f.engine.Compile(input)
		if err != nil {
			return nil, err
		}
		f.logger.Debug(LogMsgStyleCompiled,
			zap.String(LogFieldTag, tag),
			zap.String(LogFieldClass, class),
		)
		return &Component{
			tag:        tag,
			className:  class,
			renderer:   f.renderer,
			normalizer: f.normalizer,
			logger:     f.logger,
		}, nil
	}
}

// Engine returns the style engine.
func (f *Factory) Engine() StyleEngine {
	return f.engine
}

// Renderer returns the renderer.
func (f *Factory) Renderer() Renderer {
	return f.renderer
}

// Normalizer returns the children normalizer.
func (f *Factory) Normalizer() ChildrenNormalizer {
	return f.normalizer
}

// Sheet returns the engine as a *Sheet, or nil when a custom engine is used.
func (f *Factory) Sheet() *Sheet {
	sheet, _ := f.engine.(*Sheet)
	return sheet
}

// DefaultSheet collects the rules of components built with the package-level
// accessors (Tag, Div, Span, ...).
var DefaultSheet = NewSheet()

var defaultFactory = sync.OnceValue(func() *Factory {
	return MustNew(WithEngine(DefaultSheet))
})

// Default returns the process-wide factory used by the package-level
// accessors. It is created on first use and lives for the whole process.
func Default() *Factory {
	return defaultFactory()
}

// Tag returns a builder for elements named tag from the default factory.
func Tag(tag string) Builder {
	return Default().Tag(tag)
}
