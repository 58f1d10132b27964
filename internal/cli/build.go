package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seqops/sheetforge/internal/manifest"
	"github.com/seqops/sheetforge/internal/samplesheet"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	InputFile     string
	HeadersFile   string
	OutputFile    string
	KitFile       string
	ManifestDB    string
	StrictColumns bool
}

// BuildResult is the success payload of the build command.
type BuildResult struct {
	OutputFile  string `json:"output_file"`
	SampleCount int    `json:"sample_count"`
	Kit         string `json:"kit"`
	RunID       string `json:"run_id,omitempty"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a SampleSheet.csv from a lab manifest",
		Long: `Build a SampleSheet.csv from a lab manifest and a headers file.

The manifest (CSV or XLSX) must carry the columns SampleID, Name,
Index1Name, Index2Name. Index names are validated against the active
index kit and resolved to barcode sequences. The headers file is the
instrument preamble, prepended verbatim to the output.

Nothing is written unless the whole manifest validates; missing parent
directories of the output path are created.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputFile, "input-file", "", "path to the manifest to process (.csv or .xlsx)")
	cmd.Flags().StringVar(&opts.HeadersFile, "headers-file", "", "path to the run preamble prepended to the output")
	cmd.Flags().StringVar(&opts.OutputFile, "output-file", "", "path of the samplesheet to write")
	cmd.Flags().StringVar(&opts.KitFile, "kit", "", "index kit YAML file (default: built-in Agilent SureSelect)")
	cmd.Flags().StringVar(&opts.ManifestDB, "manifest-db", "", "record the run in this SQLite manifest database")
	cmd.Flags().BoolVar(&opts.StrictColumns, "strict-columns", false, "reject manifest columns outside the required set")
	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("headers-file")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}

func runBuild(rootOpts *RootOptions, opts *BuildOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}
	logger := rootOpts.Logger

	kit, err := loadKit(opts.KitFile)
	if err != nil {
		return commandError(formatter, ErrCodeKit, err)
	}
	formatter.VerboseLog("using index kit %q (%d indexes)", kit.Name, len(kit.Indexes))

	rows, verrs, err := loadManifest(opts.InputFile, kit, opts.StrictColumns)
	if err != nil {
		return commandError(formatter, ErrCodeIO, err)
	}
	if len(verrs) > 0 {
		return reportValidationErrors(formatter, verrs)
	}
	logger.Debug("manifest validated",
		zap.String("input_file", opts.InputFile),
		zap.Int("rows", len(rows)))

	pre, err := samplesheet.LoadPreamble(opts.HeadersFile)
	if err != nil {
		return commandError(formatter, ErrCodeIO, err)
	}

	sheet, err := samplesheet.Build(pre, rows, kit)
	if err != nil {
		var verr *samplesheet.Error
		if errors.As(err, &verr) {
			return reportValidationErrors(formatter, []*samplesheet.Error{verr})
		}
		return commandError(formatter, ErrCodeIO, err)
	}

	if err := sheet.WriteFile(opts.OutputFile); err != nil {
		return commandError(formatter, ErrCodeIO, err)
	}
	logger.Debug("samplesheet written",
		zap.String("output_file", opts.OutputFile),
		zap.Int("samples", len(sheet.Records)))

	result := BuildResult{
		OutputFile:  opts.OutputFile,
		SampleCount: len(sheet.Records),
		Kit:         kit.Name,
	}

	// Manifest recording is best-effort: the samplesheet is already on
	// disk, so a manifest failure is a warning, not a command failure.
	if opts.ManifestDB != "" {
		runID, err := recordRun(cmd.Context(), opts, sheet, kit.Name)
		if err != nil {
			logger.Warn("failed to record run in manifest database",
				zap.String("manifest_db", opts.ManifestDB),
				zap.Error(err))
		} else {
			result.RunID = runID
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ wrote %s (%d samples, kit %s)\n",
		result.OutputFile, result.SampleCount, result.Kit)
	return nil
}

// recordRun stores the build in the manifest database and returns the run ID.
func recordRun(ctx context.Context, opts *BuildOptions, sheet *samplesheet.Sheet, kitName string) (string, error) {
	content, err := sheet.Render()
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(content)

	store, err := manifest.Open(opts.ManifestDB)
	if err != nil {
		return "", err
	}
	defer store.Close()

	run := manifest.Run{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		InputFile:    opts.InputFile,
		HeadersFile:  opts.HeadersFile,
		OutputFile:   opts.OutputFile,
		Kit:          kitName,
		SampleCount:  len(sheet.Records),
		OutputSHA256: hex.EncodeToString(digest[:]),
	}
	if err := store.RecordRun(ctx, run); err != nil {
		return "", err
	}
	return run.ID, nil
}

// commandError reports a command-level failure (exit code 2).
func commandError(formatter *OutputFormatter, code string, err error) error {
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitCommandError, code, err)
}
