package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/experiment"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunAndPlot(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "plots", "experiment.svg")
	data := filepath.Join(dir, "data", "experiment.gob")

	out, err := execute(t, "run", "--trials", "3", "--steps", "25",
		"--seed", "5", "--k", "4", "--distribution", "normal", "--smooth",
		"--output", output, "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "100.00%")
	assert.FileExists(t, output)

	results, err := experiment.Load(data)
	require.NoError(t, err)
	assert.Equal(t, 3, results.Trials)
	assert.Equal(t, 25, results.Steps)
	assert.Equal(t, 4, results.K)
	assert.Equal(t, environment.Normal, results.Distribution)
	assert.True(t, results.Smooth)
	assert.Len(t, results.Curves, 4)

	html := filepath.Join(dir, "experiment.html")
	out, err = execute(t, "plot", "--no-color", data, html)
	require.NoError(t, err)
	assert.Contains(t, out, "plotted 4 curves to "+html+"\n")
	assert.Contains(t, out, "normal bandit (k = 4, 3 trials of 25 steps)")
	assert.NotContains(t, out, "\x1b[")
	assert.FileExists(t, html)
}

func TestRunNoColor(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "run", "-q", "--no-color", "--trials", "2",
		"--steps", "10", "-o", filepath.Join(dir, "curves.svg"))
	require.NoError(t, err)
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "uniform bandit (k = 2, 2 trials of 10 steps)")
	assert.NotContains(t, out, "\x1b[")
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bandit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
trials: 2
steps: 10
seed: 1
experiment:
  k: 3
  distribution: beta
  agents:
    - algorithm: UCB
      c: 1
logger:
  level: error
`), 0o644))

	data := filepath.Join(dir, "curves.gob")
	_, err := execute(t, "run", "-q", "-c", path,
		"-o", filepath.Join(dir, "curves.png"), "--data", data)
	require.NoError(t, err)

	results, err := experiment.Load(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"UCB c=1"}, results.Names)
	assert.Equal(t, environment.Beta, results.Distribution)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "run", "-q", "--trials", "-1",
		"-o", filepath.Join(dir, "a.svg"))
	assert.Error(t, err)

	_, err = execute(t, "run", "-q", "--trials", "1", "--steps", "1",
		"-o", filepath.Join(dir, "a.txt"))
	assert.Error(t, err)

	_, err = execute(t, "run", "-q", "-c", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "plot", filepath.Join(dir, "missing.gob"),
		filepath.Join(dir, "a.svg"))
	assert.Error(t, err)

	_, err = execute(t, "plot", "only-one-arg")
	assert.Error(t, err)
}
