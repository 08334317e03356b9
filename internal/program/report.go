package program

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/born-ml/ndarray/internal/format"
)

// WriteText writes one "name = {dims} [values]" line per result.
func WriteText(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s = %s\n", r.Name, format.Format(r.Array, format.WithDims())); err != nil {
			return err
		}
	}
	return nil
}

type jsonResult struct {
	Name   string    `json:"name"`
	Dims   []int     `json:"dims"`
	Values []float64 `json:"values"`
}

// WriteJSON writes the results as a JSON array of {name, dims, values} objects.
func WriteJSON(w io.Writer, results []Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		values := r.Array.Values()
		if values == nil {
			values = []float64{}
		}
		out = append(out, jsonResult{Name: r.Name, Dims: r.Array.Dims(), Values: values})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
