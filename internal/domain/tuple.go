package domain

import "fmt"

// CheckTuple validates that vals holds exactly n integers, recording a
// required/length failure at path. It reports whether the tuple is usable.
// A nil tuple whose path already failed decoding is not reported again.
func CheckTuple(fe *FieldErrors, path string, vals []int, n int) bool {
	if vals == nil {
		if !fe.Failed(path) {
			fe.Add(path, MsgRequired)
		}
		return false
	}
	if len(vals) != n {
		fe.Add(path, fmt.Sprintf("must have exactly %d elements, got %d", n, len(vals)))
		return false
	}
	return true
}

// CheckRange records a failure at path when v is outside [lo, hi].
func CheckRange(fe *FieldErrors, path string, v, lo, hi int) bool {
	if v < lo || v > hi {
		fe.Add(path, fmt.Sprintf("must be %d-%d, got %d", lo, hi, v))
		return false
	}
	return true
}
