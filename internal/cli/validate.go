package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	InputFile     string
	KitFile       string
	StrictColumns bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a lab manifest without writing anything",
		Long: `Validate a lab manifest without building a samplesheet.

Runs the same checks as build - required columns, empty cells, index
names against the active kit, duplicate index pairs - and reports every
problem found. Useful as a pre-flight check before a sequencing run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateCmd(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputFile, "input-file", "", "path to the manifest to validate (.csv or .xlsx)")
	cmd.Flags().StringVar(&opts.KitFile, "kit", "", "index kit YAML file (default: built-in Agilent SureSelect)")
	cmd.Flags().BoolVar(&opts.StrictColumns, "strict-columns", false, "reject manifest columns outside the required set")
	_ = cmd.MarkFlagRequired("input-file")

	return cmd
}

func runValidateCmd(rootOpts *RootOptions, opts *ValidateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	kit, err := loadKit(opts.KitFile)
	if err != nil {
		return commandError(formatter, ErrCodeKit, err)
	}

	rows, verrs, err := loadManifest(opts.InputFile, kit, opts.StrictColumns)
	if err != nil {
		return commandError(formatter, ErrCodeIO, err)
	}
	if len(verrs) > 0 {
		return reportValidationErrors(formatter, verrs)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintf(formatter.Writer, "✓ %s is valid (%d samples)\n", opts.InputFile, len(rows))
	return nil
}
