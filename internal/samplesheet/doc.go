// Package samplesheet builds bcl2fastq samplesheets from lab manifests.
//
// The pipeline is a straight line with no retries and no branching back:
//
//	read manifest -> validate headers -> validate rows -> build -> write
//
// Validation is collect-all: every offending row and column is reported in
// one pass, and nothing is written unless the whole manifest is clean. The
// writer goes through a temp file and rename, so a failed run never leaves
// a partial SampleSheet.csv behind.
//
// All validation failures are coded Errors (see errors.go); filesystem
// failures from the write path are wrapped os errors.
package samplesheet
