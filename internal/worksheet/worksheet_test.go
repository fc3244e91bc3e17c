// SPDX-License-Identifier: MIT
package worksheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/linalg/internal/worksheet"
	"github.com/stretchr/testify/require"
)

const demoYAML = `
name: demo
vectors:
  u: [1, 0, 0]
  v: [0, 1, 0]
matrices:
  A: [[1, 2], [3, 4]]
  B: [[5, 6], [7, 8]]
steps:
  - op: mul
    args: [A, B]
    as: C
  - op: cross
    args: [u, v]
  - op: power
    args: [A]
    exponent: 0
`

// TestParseDemo decodes every section of a worksheet.
func TestParseDemo(t *testing.T) {
	t.Parallel()

	ws, err := worksheet.Parse([]byte(demoYAML))
	require.NoError(t, err)
	require.Equal(t, "demo", ws.Name)
	require.Equal(t, []float64{1, 0, 0}, ws.Vectors["u"])
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, ws.Matrices["A"])
	require.Len(t, ws.Steps, 3)
	require.Equal(t, "C", ws.Steps[0].As)
	require.NotNil(t, ws.Steps[2].Exponent)
	require.Equal(t, 0, *ws.Steps[2].Exponent)
	require.Nil(t, ws.Steps[0].Scalar)
}

// TestParseErrors covers structural failures detected before evaluation.
func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", worksheet.ErrEmptyWorksheet},
		{"no steps", "name: x\nvectors:\n  u: [1]\n", worksheet.ErrEmptyWorksheet},
		{"empty op", "steps:\n  - args: [u]\n", worksheet.ErrUnknownOp},
		{"duplicate name", "vectors:\n  a: [1]\nmatrices:\n  a: [[1]]\nsteps:\n  - op: identity\n    size: 1\n", worksheet.ErrDuplicateName},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := worksheet.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParseRejectsUnknownKeys ensures typos in step parameters are reported.
func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := worksheet.Parse([]byte("steps:\n  - op: scale\n    scaler: 2\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "scaler")
}

// TestParseDefaultName applies the default when the document has no name.
func TestParseDefaultName(t *testing.T) {
	t.Parallel()

	ws, err := worksheet.Parse([]byte("steps:\n  - op: identity\n    size: 2\n"))
	require.NoError(t, err)
	require.Equal(t, worksheet.DefaultName, ws.Name)
}

// TestLoadSave round-trips a worksheet through a file and names unnamed
// worksheets after the file.
func TestLoadSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoYAML), 0o644))
	ws, err := worksheet.Load(path)
	require.NoError(t, err)
	require.Equal(t, "demo", ws.Name)

	copyPath := filepath.Join(dir, "copy.yaml")
	require.NoError(t, worksheet.Save(copyPath, ws))
	again, err := worksheet.Load(copyPath)
	require.NoError(t, err)
	require.Equal(t, ws, again)

	unnamed := filepath.Join(dir, "rotations.yml")
	require.NoError(t, os.WriteFile(unnamed, []byte("steps:\n  - op: identity\n    size: 1\n"), 0o644))
	ws, err = worksheet.Load(unnamed)
	require.NoError(t, err)
	require.Equal(t, "rotations", ws.Name)

	_, err = worksheet.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
