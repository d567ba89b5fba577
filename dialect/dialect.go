// Package dialect selects the regex engine a substitution pattern is
// compiled with.
//
// Every dialect accepts RE2 syntax, including (?P<name>...) named groups.
// They differ in implementation only:
//   - coregex: github.com/coregx/coregex, the default
//   - re2: github.com/wasilibs/go-re2, RE2 compiled to WebAssembly
//   - stdlib: the standard library regexp package
package dialect

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"
	"sort"

	"github.com/coregx/coregex"
	"github.com/wasilibs/go-re2"
)

// ErrUnknownDialect is returned by Lookup for a name it does not know.
var ErrUnknownDialect = errors.New("unknown regex dialect")

// Regexp is the part of a compiled pattern the substitution engine uses.
//
// SubexpNames follows the stdlib contract: names[0] is the whole match and
// names[i] is the name of group i, or "" if it is unnamed.
// FindStringSubmatchIndex returns nil on no match and -1 pairs for groups
// that did not participate.
type Regexp interface {
	String() string
	SubexpNames() []string
	FindStringSubmatchIndex(s string) []int
}

// Compiler compiles pattern source into a Regexp.
type Compiler func(pattern string) (Regexp, error)

// Default is the dialect used when none is configured.
const Default = "coregex"

var compilers = map[string]Compiler{
	"coregex": Coregex,
	"re2":     RE2,
	"stdlib":  Stdlib,
}

// Coregex compiles pattern with github.com/coregx/coregex.
func Coregex(pattern string) (Regexp, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// RE2 compiles pattern with github.com/wasilibs/go-re2.
//
// The pattern is parsed with regexp/syntax first; go-re2 is only handed
// patterns that parse, since it can fault on malformed input instead of
// returning an error.
func RE2(pattern string) (Regexp, error) {
	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return nil, err
	}
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// Stdlib compiles pattern with the standard library regexp package.
func Stdlib(pattern string) (Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// Lookup returns the compiler registered under name.
// An empty name selects Default.
func Lookup(name string) (Compiler, error) {
	if name == "" {
		name = Default
	}
	c, ok := compilers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownDialect, name, Names())
	}
	return c, nil
}

// Names returns the registered dialect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(compilers))
	for name := range compilers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumGroups returns the number of capturing groups in re, not counting the
// whole match.
//
// It is derived from SubexpNames because NumSubexp disagrees between
// engines: coregex counts the whole match, regexp does not.
func NumGroups(re Regexp) int {
	names := re.SubexpNames()
	if len(names) == 0 {
		return 0
	}
	return len(names) - 1
}
