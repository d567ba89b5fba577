package rengsub

import (
	"errors"
	"strconv"
)

var (
	// ErrNoMatch is matched by every *NoMatchError.
	ErrNoMatch = errors.New("no match found")

	// ErrDuplicateName is wrapped by a *PatternError when two capturing
	// groups share a name.
	ErrDuplicateName = errors.New("duplicate capture group name")

	// ErrInconsistentIndex reports a name-to-number index that is not
	// one-to-one. A pattern accepted by Compile never produces it.
	ErrInconsistentIndex = errors.New("inconsistent capture group index")
)

// PatternError reports a pattern that could not be compiled.
type PatternError struct {
	Pattern string // pattern source as passed to Compile
	Err     error  // dialect error, or ErrDuplicateName
}

func (e *PatternError) Error() string {
	return "rengsub: invalid pattern " + quote(e.Pattern) + ": " + e.Err.Error()
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// NoMatchError reports a pattern that does not match the start of its input.
type NoMatchError struct {
	Pattern string
	Input   string
}

func (e *NoMatchError) Error() string {
	return "rengsub: " + ErrNoMatch.Error() + ": " + quote(e.Pattern) + " against " + strconv.Quote(e.Input)
}

// Is reports whether target is ErrNoMatch.
func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
