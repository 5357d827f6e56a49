package model

import (
	"fmt"
	"strings"
)

// Slice describes one axis of a hyperslab. A nil bound leaves that side
// open, matching the "[]" form of the bracket syntax; a nil step means 1.
type Slice struct {
	Start *int
	Stop  *int
	Step  *int
}

// Int returns a pointer to v, for building slice bounds in place.
func Int(v int) *int { return &v }

// All returns the slice covering a whole axis.
func All() Slice { return Slice{} }

// isAll reports whether every bound of the slice is open.
func (s Slice) isAll() bool {
	return s.Start == nil && s.Stop == nil && s.Step == nil
}

// fix resolves the slice against an axis of size n. Open and negative
// bounds become concrete indexes, clamped into range, following the
// numpy indexing rules. A zero step is treated as 1.
func (s Slice) fix(n int) (start, stop, step int) {
	step = 1
	if s.Step != nil && *s.Step != 0 {
		step = *s.Step
	}
	if s.Start == nil {
		if step > 0 {
			start = 0
		} else {
			start = n - 1
		}
	} else {
		start = *s.Start
		if start < 0 {
			start += n
		}
	}
	if s.Stop == nil {
		if step > 0 {
			stop = n
		} else {
			stop = -1
		}
	} else {
		stop = *s.Stop
		if stop < 0 {
			stop += n
		}
	}
	if step > 0 {
		start = clamp(start, 0, n)
		stop = clamp(stop, 0, n)
	} else {
		start = clamp(start, -1, n-1)
		stop = clamp(stop, -1, n-1)
	}
	return start, stop, step
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FixSlice normalizes slices against shape: missing axes are padded with
// full slices and every bound is made concrete and non-negative where
// possible.
func FixSlice(slices []Slice, shape []int) []Slice {
	out := make([]Slice, len(shape))
	for i, n := range shape {
		var s Slice
		if i < len(slices) {
			s = slices[i]
		}
		start, stop, step := s.fix(n)
		out[i] = Slice{Start: Int(start), Stop: Int(stop), Step: Int(step)}
	}
	return out
}

// CombineSlices composes two hyperslabs sequentially, so that applying
// the result equals applying a and then b:
//
//	x[CombineSlices(a, b)] == x[a][b]
//
// Bounds are assumed normalized: non-negative with positive steps.
func CombineSlices(a, b []Slice) []Slice {
	size := len(a)
	if len(b) > size {
		size = len(b)
	}
	out := make([]Slice, size)
	for i := range out {
		s1, s2 := All(), All()
		if i < len(a) {
			s1 = a[i]
		}
		if i < len(b) {
			s2 = b[i]
		}
		start1, step1 := intOr(s1.Start, 0), intOr(s1.Step, 1)
		start2, step2 := intOr(s2.Start, 0), intOr(s2.Step, 1)
		combined := Slice{
			Start: Int(start1 + start2*step1),
			Step:  Int(step1 * step2),
		}
		switch {
		case s1.Stop == nil && s2.Stop == nil:
		case s2.Stop == nil:
			combined.Stop = Int(*s1.Stop)
		default:
			stop := start1 + *s2.Stop*step1
			if s1.Stop != nil && *s1.Stop < stop {
				stop = *s1.Stop
			}
			combined.Stop = Int(stop)
		}
		out[i] = combined
	}
	return out
}

// Hyperslab renders slices back to the DAP bracket syntax, with the
// exclusive stop converted back to an inclusive bound. Trailing full
// slices are omitted; an open stop leaves the last field empty.
func Hyperslab(slices ...Slice) string {
	trimmed := slices
	for len(trimmed) > 0 && trimmed[len(trimmed)-1].isAll() {
		trimmed = trimmed[:len(trimmed)-1]
	}
	var b strings.Builder
	for _, s := range trimmed {
		stop := ""
		if s.Stop != nil {
			stop = fmt.Sprintf("%d", *s.Stop-1)
		}
		fmt.Fprintf(&b, "[%d:%d:%s]", intOr(s.Start, 0), intOr(s.Step, 1), stop)
	}
	return b.String()
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

// applySlices applies one slice per axis to nested data, returning a new
// value. Axes beyond the slices are passed through untouched.
func applySlices(data interface{}, slices []Slice) (interface{}, error) {
	if len(slices) == 0 {
		return data, nil
	}
	xs, ok := data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: cannot slice scalar %v", ErrBadData, data)
	}
	start, stop, step := slices[0].fix(len(xs))
	out := []interface{}{}
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		v := xs[i]
		if len(slices) > 1 {
			sub, err := applySlices(v, slices[1:])
			if err != nil {
				return nil, err
			}
			v = sub
		}
		out = append(out, v)
	}
	return out, nil
}
