package rengsub

import (
	"fmt"
	"regexp/syntax"
)

// nameIndex builds the name-to-number index from a SubexpNames slice.
// names[0] is the whole match and is never indexed; unnamed groups are
// skipped. A name used twice is an error.
func nameIndex(names []string) (map[string]int, error) {
	index := make(map[string]int, len(names))
	for num, name := range names {
		if num == 0 || name == "" {
			continue
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateName, name)
		}
		index[name] = num
	}
	return index, nil
}

// mirror inverts a name-to-number index, failing if two names share a
// number.
func mirror(index map[string]int) (map[int]string, error) {
	names := make(map[int]string, len(index))
	for name, num := range index {
		if other, taken := names[num]; taken {
			return nil, fmt.Errorf("%w: group %d is named %q and %q", ErrInconsistentIndex, num, other, name)
		}
		names[num] = name
	}
	return names, nil
}

// nesting returns, for each group number, the number of the innermost group
// enclosing it (0 at top level). It returns nil if the pattern cannot be
// parsed as RE2 syntax or disagrees with numGroups.
func nesting(pattern string, numGroups int) []int {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil || re.MaxCap() != numGroups {
		return nil
	}
	parents := make([]int, numGroups+1)
	var walk func(re *syntax.Regexp, parent int)
	walk = func(re *syntax.Regexp, parent int) {
		if re.Op == syntax.OpCapture {
			parents[re.Cap] = parent
			parent = re.Cap
		}
		for _, sub := range re.Sub {
			walk(sub, parent)
		}
	}
	walk(re, 0)
	return parents
}

// encloses reports whether group outer syntactically contains group inner.
func encloses(parents []int, outer, inner int) bool {
	if inner >= len(parents) {
		return false
	}
	for p := parents[inner]; p != 0; p = parents[p] {
		if p == outer {
			return true
		}
	}
	return false
}
