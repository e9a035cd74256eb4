package styled

import "time"

// Well-known property keys
const (
	PropClassName = "className"
	PropChildren  = "children"
	PropHTMLFor   = "htmlFor"
	PropStyle     = "style"
)

// HTML attribute names produced from well-known properties
const (
	AttrClass = "class"
	AttrFor   = "for"
	AttrStyle = "style"
)

// Class name constants
const (
	DefaultClassPrefix = "css"
	ClassSeparator     = "-"
	SelectorDot        = "."
	ClassListSep       = " "
)

// Serialization limits
const (
	// DefaultMaxDepth bounds nested style fragments. Use 0 for unlimited.
	DefaultMaxDepth = 32
)

// Style element attribute used when rendering the stylesheet
const (
	StyleDataAttr = "data-styled"
)

// CSS unit appended to bare numbers in object styles
const (
	UnitPixel = "px"
)

// Storage driver names
const (
	StorageDriverNameMemory     = "memory"
	StorageDriverNameFilesystem = "filesystem"
	StorageDriverNamePostgres   = "postgres"
)

// Stored sheet ID prefix
const (
	SheetIDPrefix = "sheet_"
	SheetIDLength = 12
)

// Filesystem storage constants
const (
	FilesystemDirPermissions  = 0o755
	FilesystemFilePermissions = 0o644
	FilesystemVersionPrefix   = "v"
	FilesystemVersionExt      = ".json"
)

// PostgreSQL storage defaults
const (
	PostgresTablePrefix            = "styled_"
	PostgresDefaultMaxOpenConns    = 10
	PostgresDefaultMaxIdleConns    = 2
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)

// Error codes for categorization
const (
	ErrCodeConfig     = "STYLED_CONFIG"
	ErrCodeStyle      = "STYLED_STYLE"
	ErrCodeRender     = "STYLED_RENDER"
	ErrCodeProps      = "STYLED_PROPS"
	ErrCodeDefinition = "STYLED_DEFINITION"
)

// Error message constants - factory configuration
const (
	ErrMsgNilEngine     = "style engine cannot be nil"
	ErrMsgNilRenderer   = "renderer cannot be nil"
	ErrMsgNilNormalizer = "children normalizer cannot be nil"
)

// Error message constants - style input
const (
	ErrMsgStyleSerialize           = "style input serialization failed"
	ErrMsgUnsupportedInterpolation = "unsupported style interpolation"
	ErrMsgTemplateArity            = "template strings must outnumber values by exactly one"
	ErrMsgMaxDepthExceeded         = "style nesting exceeds maximum depth"
	ErrMsgStyleSyntax              = "invalid style syntax"
	ErrMsgNilInput                 = "style input cannot be nil"
)

// Error message constants - rendering
const (
	ErrMsgInvalidTagName     = "invalid tag name"
	ErrMsgUnknownTag         = "unknown tag"
	ErrMsgInvalidPropName    = "invalid property name"
	ErrMsgUnsupportedProp    = "unsupported property value"
	ErrMsgUnsupportedChild   = "unsupported child value"
	ErrMsgUnsupportedChildFn = "unsupported children function"
	ErrMsgChildrenFuncFailed = "children function failed"
)

// Error message constants - configuration and definitions
const (
	ErrMsgReadConfig         = "failed to read configuration"
	ErrMsgParseConfig        = "failed to parse configuration"
	ErrMsgInvalidConfig      = "configuration failed validation"
	ErrMsgReadDefinitions    = "failed to read component definitions"
	ErrMsgParseDefinitions   = "failed to parse component definitions"
	ErrMsgInvalidDefinition  = "component definition failed validation"
	ErrMsgDuplicateComponent = "duplicate component name"
	ErrMsgComponentNotFound  = "component not found"
)

// Error message constants - storage
const (
	ErrMsgNilStorageDriver         = "storage driver is nil"
	ErrMsgDriverAlreadyRegistered  = "storage driver already registered"
	ErrMsgStorageDriverNotFound    = "storage driver not found"
	ErrMsgStorageClosed            = "storage is closed"
	ErrMsgSheetNotFound            = "stylesheet not found"
	ErrMsgVersionNotFound          = "stylesheet version not found"
	ErrMsgInvalidSheetName         = "stylesheet name cannot be empty"
	ErrMsgNilSheet                 = "stylesheet cannot be nil"
	ErrMsgInvalidStorageRoot       = "storage root directory cannot be empty"
	ErrMsgCreateStorageDir         = "failed to create storage directory"
	ErrMsgReadStorageDir           = "failed to read storage directory"
	ErrMsgMarshalSheet             = "failed to marshal stylesheet"
	ErrMsgUnmarshalSheet           = "failed to unmarshal stylesheet"
	ErrMsgWriteSheet               = "failed to write stylesheet"
	ErrMsgReadSheet                = "failed to read stylesheet"
	ErrMsgDeleteSheet              = "failed to delete stylesheet"
	ErrMsgGenerateID               = "failed to generate stylesheet ID"
	ErrMsgPostgresConnectionFailed = "failed to connect to PostgreSQL"
	ErrMsgPostgresQueryFailed      = "PostgreSQL query failed"
	ErrMsgPostgresMigrationFailed  = "PostgreSQL migration failed"
	ErrMsgPostgresTxFailed         = "PostgreSQL transaction failed"
	ErrMsgPostgresEmptyConnString  = "PostgreSQL connection string is empty"
	ErrMsgPathTraversalDetected    = "path traversal detected in stylesheet name"
)

// Metadata key constants for errors
const (
	MetaKeyTag       = "tag"
	MetaKeyProp      = "prop"
	MetaKeyType      = "type"
	MetaKeyDepth     = "depth"
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyClass     = "class"
	MetaKeyPath      = "path"
	MetaKeyField     = "field"
	MetaKeyComponent = "component"
	MetaKeyStrings   = "strings"
	MetaKeyValues    = "values"
)

// Log message constants
const (
	LogMsgFactoryCreated  = "styled factory created"
	LogMsgBuilderLookup   = "builder created for tag"
	LogMsgStyleCompiled   = "style compiled"
	LogMsgComponentRender = "rendering styled component"
	LogMsgSheetCreated    = "stylesheet created"
	LogMsgRulesInserted   = "stylesheet rules inserted"
	LogMsgSheetHydrated   = "stylesheet hydrated"
	LogMsgSheetReset      = "stylesheet reset"
	LogMsgDefinitionsLoad = "component definitions loaded"
	LogMsgStorageMigrated = "stylesheet storage migrated"
)

// Log field constants
const (
	LogFieldTag        = "tag"
	LogFieldClass      = "class"
	LogFieldRules      = "rules"
	LogFieldClasses    = "classes"
	LogFieldComponents = "components"
	LogFieldSheet      = "sheet"
	LogFieldVersion    = "version"
	LogFieldMigration  = "migration"
)
