package main

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"
	g "maragu.dev/gomponents"

	styled "github.com/itsatony/go-styled"
)

type renderOptions struct {
	file     string
	props    string
	children string
	output   string
}

func newRenderCmd(rf *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     CmdNameRender + " <component>",
		Short:   ShortRender,
		Example: ExampleRender,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rf, args[0], opts)
		},
	}

	addFileFlag(cmd, &opts.file)
	cmd.Flags().StringVarP(&opts.props, FlagProps, FlagPropsShort, "", "JSON object of props")
	cmd.Flags().StringVar(&opts.children, FlagChildren, "", "Text content")
	cmd.Flags().StringVarP(&opts.output, FlagOutput, FlagOutputShort, FlagDefaultOutput, "Output file")

	return cmd
}

func runRender(cmd *cobra.Command, rf *rootFlags, name string, opts *renderOptions) error {
	props, err := parseProps(opts.props)
	if err != nil {
		return newCLIError(ExitCodeInputError, ErrMsgInvalidJSON, err)
	}
	if opts.children != "" {
		props[styled.PropChildren] = opts.children
	}

	p, err := loadProject(cmd, rf, opts.file)
	if err != nil {
		return err
	}

	c, err := p.components.Get(name)
	if err != nil {
		return newCLIError(ExitCodeInputError, ErrMsgComponentNotDefined, err)
	}

	node, err := c.Render(props)
	if err != nil {
		return newCLIError(ExitCodeError, ErrMsgRenderFailed, err)
	}

	var out bytes.Buffer
	if err := (g.Group{p.factory.Sheet().StyleNode(), node}).Render(&out); err != nil {
		return newCLIError(ExitCodeError, ErrMsgRenderFailed, err)
	}
	out.WriteString(FmtNewline)

	if err := writeOutput(opts.output, out.Bytes(), cmd.OutOrStdout()); err != nil {
		return newCLIError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

func parseProps(raw string) (styled.Props, error) {
	props := styled.Props{}
	if raw == "" {
		return props, nil
	}
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		return nil, err
	}
	if props == nil {
		props = styled.Props{}
	}
	return props, nil
}
