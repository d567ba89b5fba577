// Package rengsub substitutes the text of named capture groups within a
// single regular expression match.
//
// The pattern is matched once, anchored at the start of the input (the match
// need not consume the whole input). Every named group with an entry in the
// substitution map has its matched text replaced; unnamed groups, groups
// without an entry and text outside the groups are left untouched.
//
// Basic usage:
//
//	e, err := rengsub.Compile(`This (?P<copula>\w+) a string`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := e.Apply("This is a string", map[string]string{"copula": "was"})
//	fmt.Println(out) // "This was a string"
//
// One-shot usage, recompiling the pattern on every call:
//
//	out, err := rengsub.Substitute(`(?P<year>\d{4})-\d{2}`, "2023-03", map[string]string{"year": "2024"})
//
// Patterns use RE2 syntax. The regex engine is github.com/coregx/coregex by
// default; see the Dialect option.
package rengsub

import (
	"errors"
	"sort"

	"github.com/go-logr/logr"

	"github.com/KeeperCyclone/rengsub/dialect"
)

// Engine is a compiled substitution pattern.
//
// An Engine is immutable and safe for concurrent use by multiple goroutines.
type Engine struct {
	pattern   string
	re        dialect.Regexp
	index     map[string]int // group name -> group number
	parents   []int          // group number -> enclosing group number
	numGroups int
	log       logr.Logger
}

// Compile compiles a substitution pattern.
//
// It returns a *PatternError if the pattern is not valid for the selected
// dialect or if two groups share a name.
//
// Example:
//
//	e, err := rengsub.Compile(`(?P<key>\w+)=(?P<value>\w+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string, opts ...Option) (*Engine, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt.SetOption(c); err != nil {
			return nil, err
		}
	}

	re, err := c.compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	numGroups := dialect.NumGroups(re)
	index, err := nameIndex(re.SubexpNames())
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	c.log.V(1).Info("compiled pattern", "pattern", pattern, "dialect", c.dialect,
		"groups", numGroups, "named", len(index))

	return &Engine{
		pattern:   pattern,
		re:        re,
		index:     index,
		parents:   nesting(pattern, numGroups),
		numGroups: numGroups,
		log:       c.log,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var dateSub = rengsub.MustCompile(`(?P<year>\d{4})-(?P<month>\d{2})`)
func MustCompile(pattern string, opts ...Option) *Engine {
	e, err := Compile(pattern, opts...)
	if err != nil {
		var pe *PatternError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		panic("rengsub: Compile(" + quote(pattern) + "): " + err.Error())
	}
	return e
}

// String returns the source text used to compile the pattern.
func (e *Engine) String() string {
	return e.pattern
}

// SubexpNames returns the names of the capturing groups. names[0] is the
// whole match and is always "", as are unnamed groups.
// The slice returned is shared and must not be modified.
func (e *Engine) SubexpNames() []string {
	return e.re.SubexpNames()
}

// NumGroups returns the number of capturing groups in the pattern.
func (e *Engine) NumGroups() int {
	return e.numGroups
}

// Groups matches s and returns a descriptor for every capturing group,
// ascending by group number.
//
// It returns a *NoMatchError if the pattern does not match at the start of s.
func (e *Engine) Groups(s string) ([]Group, error) {
	// The leftmost match starts at 0 whenever any match does.
	loc := e.re.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 {
		return nil, &NoMatchError{Pattern: e.pattern, Input: s}
	}
	return extractGroups(e.index, e.numGroups, loc)
}

// Apply matches s and replaces the text of each named group that has an
// entry in subs.
//
// Keys of subs that name no group are ignored, as is the empty key. A named
// group that did not participate in the match is left alone even if subs
// has an entry for it. When both a group and a group nested inside it have
// entries, the outer replacement replaces the inner one. subs is not
// modified.
//
// It returns a *NoMatchError if the pattern does not match at the start of s.
//
// Example:
//
//	e := rengsub.MustCompile(`This (?P<copula>\w+) a (?P<noun>\w+)`)
//	out, _ := e.Apply("This is a string", map[string]string{"noun": "str"})
//	// out == "This is a str"
func (e *Engine) Apply(s string, subs map[string]string) (string, error) {
	groups, err := e.Groups(s)
	if err != nil {
		return "", err
	}

	// Highest number first: a later group is nested in or to the right of
	// every earlier one, so earlier offsets stay meaningful.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Num > groups[j].Num
	})

	result := s
	l := edits{parents: e.parents}
	for _, g := range groups {
		if g.Name == "" || !g.Matched() {
			continue
		}
		repl, ok := subs[g.Name]
		start, stop := l.locate(g)
		result = splice(result, repl, ok, start, stop)
		if ok {
			e.log.V(2).Info("replaced group", "group", g.Num, "name", g.Name,
				"start", start, "stop", stop, "replacement", repl)
			l.record(g, start, stop, repl)
		}
	}
	return result, nil
}

// Substitute compiles pattern and applies subs to s.
//
// The pattern is recompiled on every call. Callers reusing a pattern should
// Compile it once and call Apply.
func Substitute(pattern, s string, subs map[string]string, opts ...Option) (string, error) {
	e, err := Compile(pattern, opts...)
	if err != nil {
		return "", err
	}
	return e.Apply(s, subs)
}
