package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forcelayout/dataset"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := execute(t, "generate", "-k", "3", "-n", "5", "--background", "2", "--prefix", "r")
	require.NoError(t, err)

	f, err := dataset.Decode(strings.NewReader(out), dataset.FormatYAML)
	require.NoError(t, err)
	require.Len(t, f.Nodes, 17)
	assert.Equal(t, "r0", f.Nodes[0].Name)
	assert.Equal(t, 1, *f.Nodes[0].Cluster)
	assert.Nil(t, f.Nodes[16].Cluster)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _, err := execute(t, "generate", "--seed", "9")
	require.NoError(t, err)
	b, _, err := execute(t, "generate", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_BadFlags(t *testing.T) {
	_, _, err := execute(t, "generate", "--min-value", "5", "--max-value", "1")
	assert.Error(t, err)
	_, _, err = execute(t, "generate", "--p-negative", "2")
	assert.Error(t, err)
	_, _, err = execute(t, "generate", "--p-intra", "1.5")
	assert.Error(t, err)
}

// TestGenerateThenRun drives the whole pipeline through files.
func TestGenerateThenRun(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.json")
	layout := filepath.Join(dir, "layout.yaml")

	_, summary, err := execute(t, "generate", "-k", "2", "-n", "4", "--twins", "-o", data)
	require.NoError(t, err)
	assert.Contains(t, summary, "nodes")

	_, summary, err = execute(t, "run", "-d", data, "-o", layout,
		"--width", "500", "--height", "400", "--max-ticks", "40", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, summary, "ticks")
	assert.Contains(t, summary, "forcelayout_ticks_total")

	f, err := dataset.ReadFile(layout)
	require.NoError(t, err)
	require.Len(t, f.Nodes, 8)
	for _, n := range f.Nodes {
		require.NotNil(t, n.X)
		assert.GreaterOrEqual(t, *n.X, 26.0)
		assert.LessOrEqual(t, *n.X, 500-26.0)
		assert.GreaterOrEqual(t, *n.Y, 26.0)
		assert.LessOrEqual(t, *n.Y, 400-26.0)
	}
}

func TestRun_ToRestStdout(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(data, []byte(`
nodes:
  - {name: a, cluster: 1}
  - {name: b, cluster: 1}
  - {name: c}
links:
  - {source: a, target: b, value: 2}
  - {source: a, target: ghost}
`), 0o644))

	out, summary, err := execute(t, "run", "-d", data)
	require.NoError(t, err)
	assert.Contains(t, summary, "yes", "runs until rest")

	f, err := dataset.Decode(strings.NewReader(out), dataset.FormatJSON)
	require.NoError(t, err)
	assert.Len(t, f.Nodes, 3)
	assert.Len(t, f.Links, 1, "the dangling link is dropped")
}

// TestRun_NonFinitePin ignores a NaN pin and still writes a finite layout.
func TestRun_NonFinitePin(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(data, []byte(`
nodes:
  - {name: a, cluster: 1, fx: .nan, fy: 10}
  - {name: b, cluster: 1}
links:
  - {source: a, target: b}
`), 0o644))

	out, _, err := execute(t, "run", "-d", data, "--max-ticks", "3")
	require.NoError(t, err)

	f, err := dataset.Decode(strings.NewReader(out), dataset.FormatJSON)
	require.NoError(t, err)
	require.Len(t, f.Nodes, 2)
	assert.Nil(t, f.Nodes[0].FX, "the NaN pin was dropped")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.Error(t, err, "--data is required")

	_, _, err = execute(t, "run", "-d", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, _, err = execute(t, "run", "-d", "x.yaml", "--log-level", "loud")
	assert.Error(t, err)
}

func TestConfig_Layers(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "viewport_width = 960.0")

	path := filepath.Join(t.TempDir(), "forcelayout.toml")
	require.NoError(t, os.WriteFile(path, []byte("viewport_width = 1200.0\nframe_rate = 30.0\n"), 0o644))
	t.Setenv("FORCELAYOUT_FRAME_RATE", "24")

	out, _, err = execute(t, "config", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "viewport_width = 1200.0")
	assert.Contains(t, out, "frame_rate = 24.0")

	require.NoError(t, os.WriteFile(path, []byte("viewport_width = -1.0\n"), 0o644))
	_, _, err = execute(t, "config", "-c", path)
	assert.Error(t, err)
}
