package main

// Command names
const (
	CmdNameCSS     = "css"
	CmdNameClasses = "classes"
	CmdNameRender  = "render"
	CmdNameSave    = "save"
	CmdNameShow    = "show"
	CmdNameTags    = "tags"
	CmdNameVersion = "version"
)

// Flag names - long form
const (
	FlagFile      = "file"
	FlagOutput    = "output"
	FlagFormat    = "format"
	FlagVerbose   = "verbose"
	FlagProps     = "props"
	FlagChildren  = "children"
	FlagStyleTag  = "style-tag"
	FlagDriver    = "driver"
	FlagDSN       = "dsn"
	FlagName      = "name"
	FlagCreatedBy = "created-by"
	FlagVersion   = "version"
)

// Flag names - short form
const (
	FlagFileShort    = "f"
	FlagOutputShort  = "o"
	FlagFormatShort  = "F"
	FlagVerboseShort = "v"
	FlagPropsShort   = "p"
	FlagNameShort    = "n"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultDriver = "filesystem"
	FlagDefaultDSN    = ".styled"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatCSS  = "css"
	OutputFormatHTML = "html"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
	ExitCodeStorageError    = 5
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingFile         = "definitions file required"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgInvalidDefinitions  = "invalid component definitions"
	ErrMsgCompileFailed       = "component compilation failed"
	ErrMsgInvalidJSON         = "invalid JSON props"
	ErrMsgRenderFailed        = "render failed"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgOpenStorageFailed   = "failed to open storage"
	ErrMsgSaveFailed          = "failed to save stylesheet"
	ErrMsgLoadFailed          = "failed to load stylesheet"
	ErrMsgMissingSheetName    = "stylesheet name required"
	ErrMsgJSONMarshalFailed   = "failed to marshal JSON"
	ErrMsgLoggerFailed        = "failed to create logger"
	ErrMsgComponentNotDefined = "component not defined"
)

// Command descriptions
const (
	ShortRoot    = "Styled component definitions compiler"
	ShortCSS     = "Compile definitions and write the stylesheet"
	ShortClasses = "List the generated class of every component"
	ShortRender  = "Render one component to HTML, style tag first"
	ShortSave    = "Compile definitions and store the stylesheet"
	ShortShow    = "Print a stored stylesheet"
	ShortTags    = "List the known element names"
	ShortVersion = "Show version information"

	LongRoot = `styled compiles YAML component definitions into scoped CSS and HTML.

A definitions file looks like:

    config:
      class_prefix: app
    components:
      - name: Button
        tag: button
        css: |
          padding: 4px 8px;
          &:hover { color: red; }`

	ExampleRender = `  styled render -f components.yaml Button -p '{"type": "submit"}' --children Save`
	ExampleSave   = `  styled save -f components.yaml -n landing --driver postgres --dsn postgres://localhost/styled`
)

// Version output format templates
const (
	VersionTextTemplate = "go-styled version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Text output templates
const (
	ClassesTextFormat = "%s\t%s\t%s\n"
	SavedTextFormat   = "saved %s v%d (%s)\n"
)

// CLI metadata
const (
	CLIName = "styled"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %v"
	FmtNewline        = "\n"
)
