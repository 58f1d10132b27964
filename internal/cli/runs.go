package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seqops/sheetforge/internal/manifest"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	ManifestDB string
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{}

	cmd := &cobra.Command{
		Use:           "runs",
		Short:         "List samplesheet builds recorded in a manifest database",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ManifestDB, "manifest-db", "", "SQLite manifest database to read")
	_ = cmd.MarkFlagRequired("manifest-db")

	return cmd
}

func runRuns(rootOpts *RootOptions, opts *RunsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	if _, err := os.Stat(opts.ManifestDB); err != nil {
		return commandError(formatter, ErrCodeIO, fmt.Errorf("manifest database not found: %w", err))
	}

	store, err := manifest.Open(opts.ManifestDB)
	if err != nil {
		return commandError(formatter, ErrCodeIO, err)
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context())
	if err != nil {
		return commandError(formatter, ErrCodeIO, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tRUN ID\tOUTPUT\tSAMPLES\tKIT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.ID,
			run.OutputFile,
			run.SampleCount,
			run.Kit,
		)
	}
	return w.Flush()
}
