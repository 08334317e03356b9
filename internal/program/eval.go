package program

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/arrnd"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Result is a named array produced by a run.
type Result struct {
	Name  string
	Array arrnd.Array[float64]
}

// Run evaluates the program and returns the arrays listed under print, in
// order. Without a print list the output of the last step is returned.
func (p *Program) Run() ([]Result, error) {
	env := make(map[string]arrnd.Array[float64], len(p.Arrays))
	for _, spec := range p.Arrays {
		a, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("program: array %q: %w", spec.Name, err)
		}
		env[spec.Name] = a
	}

	cfg := parallel.Sequential()
	if p.Parallel != nil {
		cfg = *p.Parallel
	}

	for i, s := range p.Steps {
		out, err := s.eval(env, cfg)
		if err != nil {
			return nil, fmt.Errorf("program: step %d (%s): %w", i, s.Op, err)
		}
		env[s.output()] = out
	}

	names := p.Print
	if len(names) == 0 && len(p.Steps) > 0 {
		names = []string{p.Steps[len(p.Steps)-1].output()}
	}
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, Result{Name: name, Array: env[name]})
	}
	return results, nil
}

func (spec ArraySpec) build() (arrnd.Array[float64], error) {
	switch {
	case spec.Data != nil:
		return arrnd.FromSlice(spec.Dims, spec.Data)
	case spec.Range:
		return arrnd.Generate(spec.Dims, func(i int) float64 { return float64(i + 1) })
	case spec.Fill != nil:
		return arrnd.Fill(spec.Dims, *spec.Fill)
	default:
		return arrnd.Zeros[float64](spec.Dims...)
	}
}

func (s Step) eval(env map[string]arrnd.Array[float64], cfg parallel.Config) (arrnd.Array[float64], error) {
	a := env[s.Args[0]]
	switch s.Op {
	case "dot":
		return arrnd.Dot(a, env[s.Args[1]])
	case "add":
		return arrnd.Add(a, env[s.Args[1]])
	case "sub":
		return arrnd.Sub(a, env[s.Args[1]])
	case "mul":
		return arrnd.Mul(a, env[s.Args[1]])
	case "div":
		return arrnd.Div(a, env[s.Args[1]])
	case "sum":
		if s.Axis != nil {
			return arrnd.SumAxis(a, *s.Axis)
		}
		return arrnd.FromSlice([]int{1}, []float64{arrnd.Sum(a)})
	case "max":
		return s.reduce(a, func(acc, x float64) float64 { return max(acc, x) })
	case "min":
		return s.reduce(a, func(acc, x float64) float64 { return min(acc, x) })
	case "transpose":
		return a.Transpose(s.Perm...)
	case "squeeze":
		return a.Squeeze(), nil
	case "reshape":
		return a.Reshape(s.Dims...)
	case "slice":
		ivs, err := ParseIntervals(s.Slice)
		if err != nil {
			return arrnd.Array[float64]{}, err
		}
		return a.Slice(ivs...)
	case "scale":
		v := s.Value
		return arrnd.TransformParallel(a, cfg, func(x float64) float64 { return x * v }), nil
	case "assign":
		return s.assign(a)
	default:
		return arrnd.Array[float64]{}, fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
	}
}

// reduce runs f over the whole array, or along Axis when it is set.
func (s Step) reduce(a arrnd.Array[float64], f func(acc, x float64) float64) (arrnd.Array[float64], error) {
	if s.Axis != nil {
		return arrnd.ReduceAxis(a, *s.Axis, f)
	}
	v, err := arrnd.Reduce(a, f)
	if err != nil {
		return arrnd.Array[float64]{}, err
	}
	return arrnd.FromSlice([]int{1}, []float64{v})
}

// assign scatters Value into a, in place, selecting by Indices or Where.
func (s Step) assign(a arrnd.Array[float64]) (arrnd.Array[float64], error) {
	var f *arrnd.Filter[float64]
	if len(s.Indices) > 0 {
		f = a.Select(s.Indices...)
	} else {
		pred, err := ParsePredicate(s.Where)
		if err != nil {
			return arrnd.Array[float64]{}, err
		}
		f = a.SelectFunc(pred)
	}
	if err := f.Assign(s.Value); err != nil {
		return arrnd.Array[float64]{}, err
	}
	return a, nil
}

// ParseIntervals parses one interval per axis. Each entry is either an index
// ("2", "-1") or a "start:stop:step" range where every part may be omitted
// (":", "1:", ":3", "::2").
func ParseIntervals(specs []string) ([]arrnd.Interval, error) {
	ivs := make([]arrnd.Interval, 0, len(specs))
	for _, spec := range specs {
		iv, err := parseInterval(spec)
		if err != nil {
			return nil, err
		}
		ivs = append(ivs, iv)
	}
	return ivs, nil
}

func parseInterval(spec string) (arrnd.Interval, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	if len(parts) > 3 {
		return arrnd.Interval{}, fmt.Errorf("%w: interval %q", ErrBadStep, spec)
	}

	nums := make([]*int, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return arrnd.Interval{}, fmt.Errorf("%w: interval %q: %w", ErrBadStep, spec, err)
		}
		nums[i] = &n
	}

	if len(parts) == 1 {
		if nums[0] == nil {
			return arrnd.Interval{}, fmt.Errorf("%w: empty interval", ErrBadStep)
		}
		return arrnd.At(*nums[0]), nil
	}

	var iv arrnd.Interval
	start, stop := nums[0], nums[1]
	switch {
	case start == nil && stop == nil:
		iv = arrnd.Full()
	case stop == nil:
		iv = arrnd.From(*start)
	case start == nil:
		iv = arrnd.Until(*stop)
	default:
		iv = arrnd.Between(*start, *stop)
	}
	if len(parts) == 3 && nums[2] != nil {
		iv = iv.WithStep(*nums[2])
	}
	return iv, nil
}

// ParsePredicate parses a comparison against a number, e.g. "> 10" or "!= 0".
func ParsePredicate(expr string) (func(float64) bool, error) {
	fields := strings.Fields(expr)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: predicate %q: want \"<op> <number>\"", ErrBadStep, expr)
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: predicate %q: %w", ErrBadStep, expr, err)
	}

	switch fields[0] {
	case ">":
		return func(x float64) bool { return x > v }, nil
	case ">=":
		return func(x float64) bool { return x >= v }, nil
	case "<":
		return func(x float64) bool { return x < v }, nil
	case "<=":
		return func(x float64) bool { return x <= v }, nil
	case "==":
		return func(x float64) bool { return x == v }, nil
	case "!=":
		return func(x float64) bool { return x != v }, nil
	default:
		return nil, fmt.Errorf("%w: predicate %q: unknown comparison %q", ErrBadStep, expr, fields[0])
	}
}
