package rengsub

import "github.com/KeeperCyclone/rengsub/internal/span"

// unset marks an omitted splice offset.
const unset = -1

// splice replaces s[start:stop] with repl.
//
// If ok is false there is no replacement and s is returned unchanged.
// An unset start means 0 and an unset stop means len(s). Any other offset
// outside 0 <= start <= stop <= len(s) panics with a *span.RangeError.
func splice(s, repl string, ok bool, start, stop int) string {
	if !ok {
		return s
	}
	if start == unset {
		start = 0
	}
	if stop == unset {
		stop = len(s)
	}
	span.Check(start, stop, len(s))

	return s[:start] + repl + s[stop:]
}
