package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	styled "github.com/itsatony/go-styled"
)

// storageFlags selects a storage backend
type storageFlags struct {
	driver string
	dsn    string
}

func (sf *storageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sf.driver, FlagDriver, FlagDefaultDriver, "Storage driver: memory, filesystem, postgres")
	cmd.Flags().StringVar(&sf.dsn, FlagDSN, FlagDefaultDSN, "Driver connection string (directory for filesystem)")
}

func (sf *storageFlags) open() (styled.SheetStorage, error) {
	storage, err := styled.OpenStorage(sf.driver, sf.dsn)
	if err != nil {
		return nil, newCLIError(ExitCodeStorageError, ErrMsgOpenStorageFailed, err)
	}
	return storage, nil
}

type saveOptions struct {
	file      string
	name      string
	createdBy string
	storage   storageFlags
}

func newSaveCmd(rf *rootFlags) *cobra.Command {
	opts := &saveOptions{}

	cmd := &cobra.Command{
		Use:     CmdNameSave,
		Short:   ShortSave,
		Example: ExampleSave,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, rf, opts)
		},
	}

	addFileFlag(cmd, &opts.file)
	cmd.Flags().StringVarP(&opts.name, FlagName, FlagNameShort, "", "Stylesheet name")
	cmd.Flags().StringVar(&opts.createdBy, FlagCreatedBy, "", "Author recorded with the version")
	opts.storage.register(cmd)

	return cmd
}

func runSave(cmd *cobra.Command, rf *rootFlags, opts *saveOptions) error {
	if opts.name == "" {
		return newCLIError(ExitCodeUsageError, ErrMsgMissingSheetName, nil)
	}

	p, err := loadProject(cmd, rf, opts.file)
	if err != nil {
		return err
	}

	storage, err := opts.storage.open()
	if err != nil {
		return err
	}
	defer storage.Close()

	record := p.factory.Sheet().Snapshot(opts.name)
	record.CreatedBy = opts.createdBy
	if err := storage.Save(context.Background(), record); err != nil {
		return newCLIError(ExitCodeStorageError, ErrMsgSaveFailed, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), SavedTextFormat, record.Name, record.Version, record.ID)
	return nil
}

type showOptions struct {
	version int
	format  string
	storage storageFlags
}

func newShowCmd(rf *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   CmdNameShow + " <name>",
		Short: ShortShow,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rf, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.version, FlagVersion, 0, "Version to show (default: latest)")
	cmd.Flags().StringVarP(&opts.format, FlagFormat, FlagFormatShort, OutputFormatCSS, "Output format: css, html, json")
	opts.storage.register(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, rf *rootFlags, name string, opts *showOptions) error {
	switch opts.format {
	case OutputFormatCSS, OutputFormatHTML, OutputFormatJSON:
	default:
		return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, fmt.Errorf("%q", opts.format))
	}

	storage, err := opts.storage.open()
	if err != nil {
		return err
	}
	defer storage.Close()

	ctx := context.Background()
	var record *styled.StoredSheet
	if opts.version > 0 {
		record, err = storage.GetVersion(ctx, name, opts.version)
	} else {
		record, err = storage.Get(ctx, name)
	}
	if err != nil {
		code := ExitCodeStorageError
		if styled.IsSheetNotFound(err) {
			code = ExitCodeInputError
		}
		return newCLIError(code, ErrMsgLoadFailed, err)
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return newCLIError(ExitCodeError, ErrMsgJSONMarshalFailed, err)
		}
		fmt.Fprintln(out, string(data))
	case OutputFormatHTML:
		sheet := styled.NewSheet(
			styled.WithClassPrefix(record.Prefix),
			styled.WithSheetLogger(newLogger(cmd.ErrOrStderr(), rf.verbose)),
		)
		if err := sheet.Hydrate(record); err != nil {
			return newCLIError(ExitCodeError, ErrMsgLoadFailed, err)
		}
		if err := sheet.StyleNode().Render(out); err != nil {
			return newCLIError(ExitCodeError, ErrMsgRenderFailed, err)
		}
		fmt.Fprint(out, FmtNewline)
	default:
		fmt.Fprint(out, record.CSS())
	}
	return nil
}
