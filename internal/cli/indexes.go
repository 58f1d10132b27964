package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqops/sheetforge/internal/indexkit"
	"github.com/seqops/sheetforge/internal/input"
)

// IndexesOptions holds flags for the indexes command.
type IndexesOptions struct {
	KitFile string
	FromTSV string
	KitName string
	Output  string
}

// NewIndexesCommand creates the indexes command.
func NewIndexesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IndexesOptions{}

	cmd := &cobra.Command{
		Use:   "indexes",
		Short: "List the active index kit or import a vendor index file",
		Long: `List the sequencing indexes of the active kit.

With --from-tsv, import a vendor index listing (tab-separated [name,
sequence] columns) and emit it as a kit YAML file usable with --kit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexes(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.KitFile, "kit", "", "index kit YAML file (default: built-in Agilent SureSelect)")
	cmd.Flags().StringVar(&opts.FromTSV, "from-tsv", "", "import a vendor TSV index listing instead of listing a kit")
	cmd.Flags().StringVar(&opts.KitName, "kit-name", "imported", "kit name to use with --from-tsv")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write imported kit YAML to this file (default: stdout)")

	return cmd
}

func runIndexes(rootOpts *RootOptions, opts *IndexesOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	if opts.FromTSV != "" {
		return importTSV(formatter, opts)
	}

	kit, err := loadKit(opts.KitFile)
	if err != nil {
		return commandError(formatter, ErrCodeKit, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(kit)
	}

	records := [][]string{{"name", "sequence"}}
	for _, name := range kit.Names() {
		seq, _ := kit.Sequence(name)
		records = append(records, []string{name, seq})
	}
	return input.WriteCSV(formatter.Writer, records)
}

func importTSV(formatter *OutputFormatter, opts *IndexesOptions) error {
	kit, err := indexkit.LoadTSV(opts.FromTSV, opts.KitName)
	if err != nil {
		return commandError(formatter, ErrCodeKit, err)
	}

	data, err := indexkit.MarshalYAML(kit)
	if err != nil {
		return commandError(formatter, ErrCodeKit, err)
	}

	if opts.Output == "" {
		_, err := formatter.Writer.Write(data)
		return err
	}
	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return commandError(formatter, ErrCodeIO, err)
	}
	formatter.VerboseLog("wrote kit %q (%d indexes) to %s", kit.Name, len(kit.Indexes), opts.Output)
	fmt.Fprintf(formatter.Writer, "✓ imported %d indexes to %s\n", len(kit.Indexes), opts.Output)
	return nil
}
