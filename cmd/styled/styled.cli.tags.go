package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	styled "github.com/itsatony/go-styled"
)

func newTagsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameTags,
		Short: ShortTags,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "Output format: text, json")

	return cmd
}

func runTags(cmd *cobra.Command, format string) error {
	tags := styled.KnownTags()
	out := cmd.OutOrStdout()

	switch format {
	case OutputFormatText:
		fmt.Fprintln(out, strings.Join(tags, FmtNewline))
	case OutputFormatJSON:
		data, err := json.Marshal(tags)
		if err != nil {
			return newCLIError(ExitCodeError, ErrMsgJSONMarshalFailed, err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, fmt.Errorf("%q", format))
	}
	return nil
}
