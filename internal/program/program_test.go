package program

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/arrnd"
)

func runGolden(t *testing.T, name string) {
	t.Helper()

	p, err := LoadFile(filepath.Join("testdata", name+".yaml"))
	require.NoError(t, err)

	results, err := p.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, results))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

func TestGoldenEndToEnd(t *testing.T) {
	runGolden(t, "end_to_end")
}

func TestGoldenViews(t *testing.T) {
	runGolden(t, "views")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("arrays: []\nbogus: 1\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown op",
			doc:  "arrays: [{name: a, dims: [2]}]\nsteps: [{op: fft, args: [a]}]\n",
			want: ErrUnknownOp,
		},
		{
			name: "unknown array",
			doc:  "arrays: [{name: a, dims: [2]}]\nsteps: [{op: add, args: [a, b]}]\n",
			want: ErrUnknownArray,
		},
		{
			name: "arity",
			doc:  "arrays: [{name: a, dims: [2]}]\nsteps: [{op: dot, args: [a]}]\n",
			want: ErrBadStep,
		},
		{
			name: "assign selector",
			doc:  "arrays: [{name: a, dims: [2]}]\nsteps: [{op: assign, args: [a], value: 1}]\n",
			want: ErrBadStep,
		},
		{
			name: "data and range",
			doc:  "arrays: [{name: a, dims: [2], data: [1, 2], range: true}]\n",
			want: ErrBadArray,
		},
		{
			name: "range and fill",
			doc:  "arrays: [{name: a, dims: [2], range: true, fill: 3}]\n",
			want: ErrBadArray,
		},
		{
			name: "print unknown",
			doc:  "arrays: [{name: a, dims: [2]}]\nprint: [z]\n",
			want: ErrUnknownArray,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateParallelConfig(t *testing.T) {
	_, err := Load(strings.NewReader("parallel: {enabled: true, workers: 0, min_chunk: 1}\n"))
	assert.Error(t, err)
}

func TestRunReportsEngineErrors(t *testing.T) {
	doc := `
arrays:
  - {name: a, dims: [2, 3]}
  - {name: b, dims: [2, 3]}
steps:
  - {op: dot, args: [a, b], out: c}
`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = p.Run()
	require.ErrorIs(t, err, arrnd.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "step 0 (dot)")
}

func TestRunBuildErrors(t *testing.T) {
	p, err := Load(strings.NewReader("arrays: [{name: a, dims: [2, 2], data: [1, 2, 3]}]\n"))
	require.NoError(t, err)
	_, err = p.Run()
	assert.ErrorIs(t, err, arrnd.ErrShapeMismatch)
}

func TestRunDefaultsToLastStep(t *testing.T) {
	doc := `
arrays:
  - {name: a, dims: [2, 2], fill: 1.5}
steps:
  - {op: add, args: [a, a], out: b}
  - {op: min, args: [b]}
`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	results, err := p.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].Name)
	assert.Equal(t, []float64{3}, results[0].Array.Values())
}

func TestWriteJSON(t *testing.T) {
	a := arrnd.Must(arrnd.FromSlice([]int{2}, []float64{1, 2.5}))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []Result{{Name: "a", Array: a}}))

	var decoded []jsonResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a", decoded[0].Name)
	assert.Equal(t, []int{2}, decoded[0].Dims)
	assert.Equal(t, []float64{1, 2.5}, decoded[0].Values)
}

func TestParseIntervals(t *testing.T) {
	ivs, err := ParseIntervals([]string{"1", ":", "1:", ":3", "0:4:2", "::3", "-1"})
	require.NoError(t, err)
	require.Len(t, ivs, 7)

	expected := []arrnd.Interval{
		arrnd.At(1), arrnd.Full(), arrnd.From(1), arrnd.Until(3),
		arrnd.Range(0, 4, 2), arrnd.Full().WithStep(3), arrnd.At(-1),
	}
	for i := range expected {
		assert.Equal(t, expected[i].String(), ivs[i].String(), "interval %d", i)
	}

	for _, bad := range []string{"", "a", "1:2:3:4", "1:x"} {
		_, err := ParseIntervals([]string{bad})
		assert.ErrorIs(t, err, ErrBadStep, "spec %q", bad)
	}
}

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		expr string
		in   float64
		want bool
	}{
		{"> 3", 4, true},
		{"> 3", 3, false},
		{">= 3", 3, true},
		{"< 0", -1, true},
		{"<= -1", -1, true},
		{"== 2.5", 2.5, true},
		{"!= 2.5", 2.5, false},
	}
	for _, tt := range tests {
		pred, err := ParsePredicate(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, pred(tt.in), "%s with %v", tt.expr, tt.in)
	}

	for _, bad := range []string{"", ">", "~ 3", "> x"} {
		_, err := ParsePredicate(bad)
		assert.ErrorIs(t, err, ErrBadStep, "expr %q", bad)
	}
}
