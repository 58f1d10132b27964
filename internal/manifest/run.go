package manifest

import (
	"context"
	"fmt"
	"time"
)

// Run records one successful samplesheet build.
type Run struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	InputFile    string    `json:"input_file"`
	HeadersFile  string    `json:"headers_file"`
	OutputFile   string    `json:"output_file"`
	Kit          string    `json:"kit"`
	SampleCount  int       `json:"sample_count"`
	OutputSHA256 string    `json:"output_sha256"`
}

// RecordRun inserts a run record. Idempotent on ID: recording the same run
// twice is silently ignored.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, created_at, input_file, headers_file, output_file, kit, sample_count, output_sha256)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339),
		run.InputFile,
		run.HeadersFile,
		run.OutputFile,
		run.Kit,
		run.SampleCount,
		run.OutputSHA256,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// ListRuns returns all recorded runs, newest first. Ties on created_at are
// broken by id for stable output.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, input_file, headers_file, output_file, kit, sample_count, output_sha256
		FROM runs
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &createdAt, &run.InputFile, &run.HeadersFile,
			&run.OutputFile, &run.Kit, &run.SampleCount, &run.OutputSHA256); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", createdAt, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	if runs == nil {
		runs = []Run{}
	}
	return runs, nil
}
