package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pec/format"
	"github.com/arloliu/pec/tuple"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestFormatsCmd(t *testing.T) {
	out, err := runCmd(t, "formats")
	require.NoError(t, err)

	for _, want := range []string{"weight", "pdfX", "trueNumPU", "131008", "subnormal", "clamp"} {
		require.Contains(t, out, want)
	}
}

func TestDemoAndInspect(t *testing.T) {
	for _, kind := range []string{"generator", "lepton", "pileup"} {
		t.Run(kind, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), kind+".pec")

			out, err := runCmd(t, "demo", "--kind", kind, "--rows", "200", "--out", file, "--compression", "s2", "--names")
			require.NoError(t, err)
			require.Contains(t, out, "wrote 200 "+kind+" rows")

			data, err := os.ReadFile(file)
			require.NoError(t, err)
			r, err := tuple.NewReader(data)
			require.NoError(t, err)
			require.Equal(t, 200, r.Len())
			require.Equal(t, format.CompressionS2, r.Compression())
			require.True(t, r.HasColumnNames())

			out, err = runCmd(t, "inspect", file, "--rows", "3")
			require.NoError(t, err)
			require.Contains(t, out, "rows:        200")
			require.Contains(t, out, "compression: s2")
			require.Contains(t, out, "little-endian")
		})
	}
}

func TestInspect_RowLimit(t *testing.T) {
	data, err := buildDemo(demoOptions{kind: "lepton", rows: 5, compression: "lz4", bigEndian: true, seed: 7})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, inspect(&out, data, 2))
	require.Contains(t, out.String(), "big-endian")
	require.Contains(t, out.String(), "compression: lz4\n")
	require.Contains(t, out.String(), "relIso")
	require.Contains(t, out.String(), "charge")
}

func TestDemo_InvalidFlags(t *testing.T) {
	_, err := buildDemo(demoOptions{kind: "muon", rows: 1, compression: "zstd"})
	require.ErrorContains(t, err, "unknown record kind")

	_, err = buildDemo(demoOptions{kind: "lepton", rows: 1, compression: "brotli"})
	require.ErrorContains(t, err, "unknown compression")

	_, err = buildDemo(demoOptions{kind: "lepton", rows: 0, compression: "zstd"})
	require.Error(t, err)

	_, err = runCmd(t, "formats", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")
}

func TestInspect_InvalidFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.pec")
	require.NoError(t, os.WriteFile(file, []byte("garbage"), 0o600))

	_, err := runCmd(t, "inspect", file)
	require.Error(t, err)
}
