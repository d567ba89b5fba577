package rengsub

// edit is a splice already applied to the working string.
type edit struct {
	num        int // group number
	start, end int // span in the original string
	delta      int // change in length
}

type placement int

const (
	before placement = iota // edit lies left of the group
	inside                  // edit lies within the group
	after                   // edit lies right of the group
)

// edits maps spans of the original match onto the working string as
// splices accumulate.
//
// Splices run in descending group number, so every applied edit belongs to
// a group that is either nested in the current one or disjoint from it.
// Nested edits move only the current group's end; edits to its left move
// both offsets.
type edits struct {
	parents []int
	applied []edit
}

// locate returns g's span in the working string.
func (l *edits) locate(g Group) (start, stop int) {
	start, stop = g.Start, g.End
	for _, e := range l.applied {
		switch l.place(g, e) {
		case before:
			start += e.delta
			stop += e.delta
		case inside:
			stop += e.delta
		}
	}
	return start, stop
}

// record notes that g, located at [start, stop), was replaced by repl.
func (l *edits) record(g Group, start, stop int, repl string) {
	l.applied = append(l.applied, edit{
		num:   g.Num,
		start: g.Start,
		end:   g.End,
		delta: len(repl) - (stop - start),
	})
}

func (l *edits) place(g Group, e edit) placement {
	if e.start < e.end {
		switch {
		case e.end <= g.Start:
			return before
		case e.start >= g.End:
			return after
		default:
			return inside
		}
	}

	// e is an insertion at a single point.
	p := e.start
	switch {
	case p < g.Start:
		return before
	case p > g.End:
		return after
	case p > g.Start && p < g.End:
		return inside
	}

	// On an edge of g, only the pattern structure tells the two apart.
	if encloses(l.parents, g.Num, e.num) {
		return inside
	}
	if p == g.Start && g.Start < g.End {
		return before
	}
	return after
}
