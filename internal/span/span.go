// Package span provides offset checks for string edits.
//
// An offset outside the string being edited indicates a programming error
// (offsets captured from one string applied to another), so Check panics
// instead of returning an error or clamping.
package span

import "strconv"

// RangeError describes an offset pair that does not fit the edited string.
type RangeError struct {
	Start, Stop int
	Len         int
}

func (e *RangeError) Error() string {
	return "span out of range: [" + strconv.Itoa(e.Start) + ":" + strconv.Itoa(e.Stop) +
		"] with length " + strconv.Itoa(e.Len)
}

// Check panics with a *RangeError unless 0 <= start <= stop <= n.
//
//go:inline
func Check(start, stop, n int) {
	if !Within(start, stop, n) {
		panic(&RangeError{Start: start, Stop: stop, Len: n})
	}
}

// Within reports whether 0 <= start <= stop <= n.
func Within(start, stop, n int) bool {
	// Compare as uint so negative offsets fail the same test as large ones.
	return uint(start) <= uint(stop) && uint(stop) <= uint(n)
}
