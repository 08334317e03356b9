// Package program loads and evaluates array programs: a YAML document that
// declares float64 arrays and a sequence of engine operations over them.
//
// Example document:
//
//	arrays:
//	  - {name: a, dims: [3, 2, 3], range: true}
//	  - {name: b, dims: [3, 1], data: [1, 2, 3]}
//	steps:
//	  - {op: dot, args: [a, b], out: c}
//	  - {op: sum, args: [c], axis: 0, out: d}
//	print: [c, d]
package program

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Common errors.
var (
	ErrUnknownOp    = errors.New("unknown operation")
	ErrUnknownArray = errors.New("unknown array")
	ErrBadStep      = errors.New("invalid step")
	ErrBadArray     = errors.New("invalid array")
)

// Program is a parsed array program.
type Program struct {
	Parallel *parallel.Config `yaml:"parallel"`
	Arrays   []ArraySpec      `yaml:"arrays"`
	Steps    []Step           `yaml:"steps"`
	Print    []string         `yaml:"print"`
}

// ArraySpec declares an input array. At most one of Data, Range or Fill sets
// its contents; with none of them the array is zero-filled.
type ArraySpec struct {
	Name  string    `yaml:"name"`
	Dims  []int     `yaml:"dims"`
	Data  []float64 `yaml:"data"`
	Range bool      `yaml:"range"` // Fill with 1, 2, ..., N
	Fill  *float64  `yaml:"fill"`
}

// Step is one operation. Args name the input arrays; Out names the result
// (defaults to the first argument).
type Step struct {
	Op      string   `yaml:"op"`
	Args    []string `yaml:"args"`
	Out     string   `yaml:"out"`
	Axis    *int     `yaml:"axis"`
	Slice   []string `yaml:"slice"`   // One "start:stop:step" interval per axis
	Perm    []int    `yaml:"perm"`    // transpose
	Dims    []int    `yaml:"dims"`    // reshape
	Value   float64  `yaml:"value"`   // scale, assign
	Indices []int    `yaml:"indices"` // assign by flat index
	Where   string   `yaml:"where"`   // assign by predicate, e.g. "> 10"
}

// arity lists the number of array arguments each operation takes.
var arity = map[string]int{
	"dot":       2,
	"add":       2,
	"sub":       2,
	"mul":       2,
	"div":       2,
	"sum":       1,
	"max":       1,
	"min":       1,
	"transpose": 1,
	"squeeze":   1,
	"reshape":   1,
	"slice":     1,
	"scale":     1,
	"assign":    1,
}

// Load parses a program from YAML. Unknown fields are rejected.
func Load(r io.Reader) (*Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Program
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("program: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile parses a program from a YAML file.
func LoadFile(path string) (*Program, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is provided by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks names, arities and the parallel config without evaluating anything.
func (p *Program) Validate() error {
	if p.Parallel != nil {
		if err := p.Parallel.Validate(); err != nil {
			return fmt.Errorf("program: %w", err)
		}
	}

	known := make(map[string]bool)
	for i, a := range p.Arrays {
		if a.Name == "" {
			return fmt.Errorf("program: array %d: missing name", i)
		}
		if known[a.Name] {
			return fmt.Errorf("program: array %q declared twice", a.Name)
		}
		if a.sources() > 1 {
			return fmt.Errorf("program: array %q: %w: at most one of data, range or fill may be set", a.Name, ErrBadArray)
		}
		known[a.Name] = true
	}

	for i, s := range p.Steps {
		n, ok := arity[s.Op]
		if !ok {
			return fmt.Errorf("program: step %d: %w %q", i, ErrUnknownOp, s.Op)
		}
		if len(s.Args) != n {
			return fmt.Errorf("program: step %d (%s): %w: want %d args, got %d", i, s.Op, ErrBadStep, n, len(s.Args))
		}
		for _, name := range s.Args {
			if !known[name] {
				return fmt.Errorf("program: step %d (%s): %w %q", i, s.Op, ErrUnknownArray, name)
			}
		}
		if s.Op == "assign" && (len(s.Indices) == 0) == (s.Where == "") {
			return fmt.Errorf("program: step %d (assign): %w: exactly one of indices or where is required", i, ErrBadStep)
		}
		known[s.output()] = true
	}

	for _, name := range p.Print {
		if !known[name] {
			return fmt.Errorf("program: print: %w %q", ErrUnknownArray, name)
		}
	}
	return nil
}

// sources counts how many of Data, Range and Fill are set.
func (a ArraySpec) sources() int {
	n := 0
	if a.Data != nil {
		n++
	}
	if a.Range {
		n++
	}
	if a.Fill != nil {
		n++
	}
	return n
}

// output returns the name the step's result is stored under.
func (s Step) output() string {
	if s.Out != "" {
		return s.Out
	}
	return s.Args[0]
}
