package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validManifest = `SampleID,Name,Index1Name,Index2Name
S1,Alpha,P7_i1,P5_i13
S2,Beta,P7_i2,P5_i14
`

const validHeaders = `[Header]
IEMFileVersion,4
Investigator Name,LabOps
[Reads]
75
75
[Settings]
[Data]
`

func testRootOptions(format string) *RootOptions {
	return &RootOptions{Format: format, Logger: zap.NewNop()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
