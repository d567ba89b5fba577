package rengsub

import "fmt"

// Group describes one capturing group of a match.
//
// Start and End are byte offsets into the matched string. Both are -1 if
// the group did not participate in the match, for example inside an
// alternation branch that was not taken.
type Group struct {
	Num   int    // group number, 1-based
	Start int    // start offset, or -1
	End   int    // end offset, or -1
	Name  string // group name, or "" if unnamed
}

// Matched reports whether the group participated in the match.
func (g Group) Matched() bool {
	return g.Start >= 0 && g.End >= 0
}

func (g Group) String() string {
	if g.Name == "" {
		return fmt.Sprintf("$%d[%d:%d]", g.Num, g.Start, g.End)
	}
	return fmt.Sprintf("$%d(%s)[%d:%d]", g.Num, g.Name, g.Start, g.End)
}

// extractGroups returns a descriptor for every capturing group 1..numGroups
// of the match loc, ascending by number. loc is laid out as returned by
// FindStringSubmatchIndex. Names come from mirroring index.
func extractGroups(index map[string]int, numGroups int, loc []int) ([]Group, error) {
	names, err := mirror(index)
	if err != nil {
		return nil, err
	}
	if len(loc) < 2*(numGroups+1) {
		return nil, fmt.Errorf("%w: match has %d offsets for %d groups", ErrInconsistentIndex, len(loc), numGroups)
	}

	groups := make([]Group, 0, numGroups)
	for num := 1; num <= numGroups; num++ {
		start, end := loc[2*num], loc[2*num+1]
		if start < 0 || end < 0 {
			start, end = -1, -1
		}
		groups = append(groups, Group{
			Num:   num,
			Start: start,
			End:   end,
			Name:  names[num],
		})
	}
	return groups, nil
}
