package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type classesOptions struct {
	file   string
	format string
}

// classEntry is one line of classes output
type classEntry struct {
	Name  string `json:"name"`
	Tag   string `json:"tag"`
	Class string `json:"class"`
}

func newClassesCmd(rf *rootFlags) *cobra.Command {
	opts := &classesOptions{}

	cmd := &cobra.Command{
		Use:   CmdNameClasses,
		Short: ShortClasses,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd, rf, opts)
		},
	}

	addFileFlag(cmd, &opts.file)
	cmd.Flags().StringVarP(&opts.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "Output format: text, json")

	return cmd
}

func runClasses(cmd *cobra.Command, rf *rootFlags, opts *classesOptions) error {
	if opts.format != OutputFormatText && opts.format != OutputFormatJSON {
		return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, fmt.Errorf("%q", opts.format))
	}

	p, err := loadProject(cmd, rf, opts.file)
	if err != nil {
		return err
	}

	names := p.components.Names()
	entries := make([]classEntry, 0, len(names))
	for _, name := range names {
		c, err := p.components.Get(name)
		if err != nil {
			return newCLIError(ExitCodeError, ErrMsgComponentNotDefined, err)
		}
		entries = append(entries, classEntry{Name: name, Tag: c.Tag(), Class: c.ClassName()})
	}

	out := cmd.OutOrStdout()
	if opts.format == OutputFormatJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return newCLIError(ExitCodeError, ErrMsgJSONMarshalFailed, err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, ClassesTextFormat, e.Name, e.Tag, e.Class)
	}
	return nil
}
