package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	styled "github.com/itsatony/go-styled"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// project is a compiled definitions file
type project struct {
	factory    *styled.Factory
	components *styled.ComponentSet
	logger     *zap.Logger
}

// loadProject reads, validates and compiles the definitions at path
func loadProject(cmd *cobra.Command, rf *rootFlags, path string) (*project, error) {
	if path == "" {
		return nil, newCLIError(ExitCodeUsageError, ErrMsgMissingFile, nil)
	}

	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return nil, newCLIError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}

	defs, err := styled.ParseDefinitions(data)
	if err != nil {
		return nil, newCLIError(ExitCodeValidationError, ErrMsgInvalidDefinitions, err)
	}

	logger := newLogger(cmd.ErrOrStderr(), rf.verbose)
	opts := append(defs.Options(styled.WithSheetLogger(logger)), styled.WithLogger(logger))
	f, err := styled.New(opts...)
	if err != nil {
		return nil, newCLIError(ExitCodeError, ErrMsgCompileFailed, err)
	}

	set, err := defs.Compile(f)
	if err != nil {
		return nil, newCLIError(ExitCodeValidationError, ErrMsgCompileFailed, err)
	}

	return &project{factory: f, components: set, logger: logger}, nil
}
