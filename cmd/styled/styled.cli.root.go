package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           CLIName,
		Short:         ShortRoot,
		Long:          LongRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, FlagVerbose, FlagVerboseShort, false, "Log compilation details to stderr")

	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newClassesCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSaveCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newTagsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger writes console-encoded logs to w. Only warnings and errors are
// shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
