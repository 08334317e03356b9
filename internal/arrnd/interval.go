package arrnd

import "fmt"

type intervalKind int

const (
	kindFull intervalKind = iota
	kindAt
	kindFrom
	kindUntil
	kindBetween
)

// Interval is a half-open [start, stop) range over one axis with a positive step.
// Open-ended intervals (Full, From, Until, At with a negative index) are resolved
// against the axis length only when they are used, never in advance.
//
// The zero Interval selects the whole axis.
type Interval struct {
	kind  intervalKind
	start int
	stop  int
	skip  int // step - 1, so the zero value has step 1
}

// Full selects the whole axis.
func Full() Interval {
	return Interval{kind: kindFull}
}

// At selects the single index i. Negative i counts from the end of the axis.
func At(i int) Interval {
	return Interval{kind: kindAt, start: i}
}

// From selects [i, len).
func From(i int) Interval {
	return Interval{kind: kindFrom, start: i}
}

// Until selects [0, i).
func Until(i int) Interval {
	return Interval{kind: kindUntil, stop: i}
}

// Between selects [start, stop).
func Between(start, stop int) Interval {
	return Interval{kind: kindBetween, start: start, stop: stop}
}

// Range selects [start, stop) taking every step-th index.
func Range(start, stop, step int) Interval {
	return Between(start, stop).WithStep(step)
}

// WithStep returns a copy of the interval with a different step.
func (iv Interval) WithStep(step int) Interval {
	iv.skip = step - 1
	return iv
}

// Step returns the interval's step.
func (iv Interval) Step() int {
	return iv.skip + 1
}

// Resolve computes concrete bounds against an axis of length n.
// Negative bounds count from the end. The result satisfies
// 0 <= start <= stop <= n and step >= 1.
func (iv Interval) Resolve(n int) (start, stop, step int, err error) {
	step = iv.Step()
	if step < 1 {
		return 0, 0, 0, newError("interval", ErrIndexOutOfRange, "step %d must be positive", step)
	}
	norm := func(x int) int {
		if x < 0 {
			return x + n
		}
		return x
	}

	switch iv.kind {
	case kindFull:
		return 0, n, step, nil
	case kindAt:
		start = norm(iv.start)
		if start < 0 || start >= n {
			return 0, 0, 0, newError("interval", ErrIndexOutOfRange, "index %d out of bounds for axis of size %d", iv.start, n)
		}
		return start, start + 1, step, nil
	case kindFrom:
		start, stop = norm(iv.start), n
	case kindUntil:
		start, stop = 0, norm(iv.stop)
	default:
		start, stop = norm(iv.start), norm(iv.stop)
	}

	if start < 0 || stop > n || start > stop {
		return 0, 0, 0, newError("interval", ErrIndexOutOfRange, "%s out of bounds for axis of size %d", iv, n)
	}
	return start, stop, step, nil
}

// String returns a human-readable representation of the interval.
func (iv Interval) String() string {
	var s string
	switch iv.kind {
	case kindFull:
		s = "[:"
	case kindAt:
		s = fmt.Sprintf("[%d", iv.start)
	case kindFrom:
		s = fmt.Sprintf("[%d:", iv.start)
	case kindUntil:
		s = fmt.Sprintf("[:%d", iv.stop)
	default:
		s = fmt.Sprintf("[%d:%d", iv.start, iv.stop)
	}
	if iv.skip != 0 {
		s += fmt.Sprintf(":%d", iv.Step())
	}
	return s + ")"
}
