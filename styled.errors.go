package styled

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-styled/internal"
)

// NewConfigError creates a factory or sheet configuration error
func NewConfigError(msg string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}

// NewUnsupportedInterpolationError creates an error for a style fragment of an unsupported type
func NewUnsupportedInterpolationError(value any) error {
	return cuserr.NewValidationError(ErrCodeStyle, ErrMsgUnsupportedInterpolation).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", value))
}

// NewTemplateArityError creates an error for a template whose parts and values do not interleave
func NewTemplateArityError(strs, values int) error {
	return cuserr.NewValidationError(ErrCodeStyle, ErrMsgTemplateArity).
		WithMetadata(MetaKeyStrings, strconv.Itoa(strs)).
		WithMetadata(MetaKeyValues, strconv.Itoa(values))
}

// NewMaxDepthError creates an error for style fragments nested too deeply
func NewMaxDepthError(depth int) error {
	return cuserr.NewValidationError(ErrCodeStyle, ErrMsgMaxDepthExceeded).
		WithMetadata(MetaKeyDepth, strconv.Itoa(depth))
}

// NewNilInputError creates an error for a nil style input
func NewNilInputError() error {
	return cuserr.NewValidationError(ErrCodeStyle, ErrMsgNilInput)
}

// NewStyleSyntaxError wraps a CSS lexer, parser or scoping failure.
// Line and column metadata are attached when the cause carries a position.
func NewStyleSyntaxError(class string, cause error) error {
	err := cuserr.WrapStdError(cause, ErrCodeStyle, ErrMsgStyleSyntax).
		WithMetadata(MetaKeyClass, class)

	var pos internal.Position
	var lexErr *internal.LexerError
	var parseErr *internal.ParserError
	var compileErr *internal.CompileError
	switch {
	case errors.As(cause, &lexErr):
		pos = lexErr.Position
	case errors.As(cause, &parseErr):
		pos = parseErr.Position
	case errors.As(cause, &compileErr):
		pos = compileErr.Position
	}
	if pos.Line > 0 {
		err = err.
			WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
			WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column))
	}
	return err
}

// NewInvalidTagError creates an error for a syntactically invalid tag name
func NewInvalidTagError(tag string) error {
	return cuserr.NewValidationError(ErrCodeRender, ErrMsgInvalidTagName).
		WithMetadata(MetaKeyTag, tag)
}

// NewUnknownTagError creates an error for a tag outside the known HTML set
func NewUnknownTagError(tag string) error {
	return cuserr.NewNotFoundError(MetaKeyTag, ErrMsgUnknownTag).
		WithMetadata(MetaKeyTag, tag)
}

// NewInvalidPropError creates an error for a property name that cannot be an attribute
func NewInvalidPropError(tag, prop string) error {
	return cuserr.NewValidationError(ErrCodeProps, ErrMsgInvalidPropName).
		WithMetadata(MetaKeyTag, tag).
		WithMetadata(MetaKeyProp, prop)
}

// NewUnsupportedPropError creates an error for a property value the renderer cannot express
func NewUnsupportedPropError(tag, prop string, value any) error {
	return cuserr.NewValidationError(ErrCodeProps, ErrMsgUnsupportedProp).
		WithMetadata(MetaKeyTag, tag).
		WithMetadata(MetaKeyProp, prop).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", value))
}

// NewUnsupportedChildError creates an error for a child value the renderer cannot express
func NewUnsupportedChildError(tag string, value any) error {
	return cuserr.NewValidationError(ErrCodeProps, ErrMsgUnsupportedChild).
		WithMetadata(MetaKeyTag, tag).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", value))
}

// NewUnsupportedChildrenFuncError creates an error for a children function of the wrong shape
func NewUnsupportedChildrenFuncError(value any) error {
	return cuserr.NewValidationError(ErrCodeProps, ErrMsgUnsupportedChildFn).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", value))
}

// NewChildrenFuncError wraps a failure returned by a children function
func NewChildrenFuncError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeProps, ErrMsgChildrenFuncFailed)
}

// NewConfigFileError wraps a configuration read or parse failure
func NewConfigFileError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg).
		WithMetadata(MetaKeyPath, path)
}

// NewValidationFailedError wraps a struct validation failure for field
func NewValidationFailedError(code, msg, field string, cause error) error {
	return cuserr.WrapStdError(cause, code, msg).
		WithMetadata(MetaKeyField, field)
}

// NewDuplicateComponentError creates an error for a repeated definition name
func NewDuplicateComponentError(name string) error {
	return cuserr.NewValidationError(ErrCodeDefinition, ErrMsgDuplicateComponent).
		WithMetadata(MetaKeyComponent, name)
}

// NewComponentNotFoundError creates an error for a missing named component
func NewComponentNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyComponent, ErrMsgComponentNotFound).
		WithMetadata(MetaKeyComponent, name)
}

// NewDefinitionCompileError wraps a failure compiling a named definition
func NewDefinitionCompileError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDefinition, ErrMsgInvalidDefinition).
		WithMetadata(MetaKeyComponent, name)
}
