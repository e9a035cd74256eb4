package main

import (
	"bytes"

	"github.com/spf13/cobra"
)

type cssOptions struct {
	file     string
	output   string
	styleTag bool
}

func newCSSCmd(rf *rootFlags) *cobra.Command {
	opts := &cssOptions{}

	cmd := &cobra.Command{
		Use:   CmdNameCSS,
		Short: ShortCSS,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSS(cmd, rf, opts)
		},
	}

	addFileFlag(cmd, &opts.file)
	cmd.Flags().StringVarP(&opts.output, FlagOutput, FlagOutputShort, FlagDefaultOutput, "Output file")
	cmd.Flags().BoolVar(&opts.styleTag, FlagStyleTag, false, "Wrap the rules in a <style> element")

	return cmd
}

func runCSS(cmd *cobra.Command, rf *rootFlags, opts *cssOptions) error {
	p, err := loadProject(cmd, rf, opts.file)
	if err != nil {
		return err
	}

	sheet := p.factory.Sheet()
	var out bytes.Buffer
	if opts.styleTag {
		if err := sheet.StyleNode().Render(&out); err != nil {
			return newCLIError(ExitCodeError, ErrMsgRenderFailed, err)
		}
		out.WriteString(FmtNewline)
	} else {
		out.WriteString(sheet.CSS())
	}

	if err := writeOutput(opts.output, out.Bytes(), cmd.OutOrStdout()); err != nil {
		return newCLIError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

func addFileFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, FlagFile, FlagFileShort, "", `Definitions file (use "-" for stdin)`)
}
