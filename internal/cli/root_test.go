package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"version", "eval"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "arrnd "+Version+"\n", out)
}

func TestEvalText(t *testing.T) {
	out, _, err := execute(t, "eval", filepath.Join("testdata", "batch.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "c = {2,2,1} [[[5] [11]] [[17] [23]]]\n", out)
}

func TestEvalJSON(t *testing.T) {
	out, _, err := execute(t, "eval", "--format", "json", filepath.Join("testdata", "batch.yaml"))
	require.NoError(t, err)

	var got []struct {
		Name   string    `json:"name"`
		Dims   []int     `json:"dims"`
		Values []float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, []int{2, 2, 1}, got[0].Dims)
	assert.Equal(t, []float64{5, 11, 17, 23}, got[0].Values)
}

func TestEvalVerboseLogsRunID(t *testing.T) {
	_, stderr, err := execute(t, "eval", "-v", filepath.Join("testdata", "batch.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "program finished")
	assert.Contains(t, stderr, "run=")
}

func TestEvalErrors(t *testing.T) {
	_, _, err := execute(t, "eval", filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, _, err = execute(t, "eval", "--format", "xml", filepath.Join("testdata", "batch.yaml"))
	assert.ErrorContains(t, err, "invalid format")

	_, _, err = execute(t, "eval")
	assert.Error(t, err)
}
