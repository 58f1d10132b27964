// Package manifest provides the optional SQLite audit log of generated
// samplesheets.
//
// Each successful build may be recorded as a Run: what went in (manifest,
// headers file, kit), what came out (output path, sample count, content
// checksum), and when. The log answers "which samplesheet was generated
// from which manifest" long after the run directory is gone.
//
// Database configuration:
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//
// Recording is best-effort from the CLI's point of view: a manifest write
// failure never invalidates an already-written samplesheet.
package manifest
