package rengsub

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
)

func TestLoggerOption(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 2})

	e, err := Compile(`This (?P<copula>\w+) a (?P<noun>\w+)`, Logger(log))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Apply("This is a string", map[string]string{"noun": "str"}); err != nil {
		t.Fatal(err)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[0], `"msg"="compiled pattern"`) || !strings.Contains(lines[0], `"dialect"="coregex"`) {
		t.Errorf("compile log line = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"msg"="replaced group"`) || !strings.Contains(lines[1], `"name"="noun"`) {
		t.Errorf("splice log line = %s", lines[1])
	}
}

func TestLoggerVerbosity(t *testing.T) {
	var n int
	log := funcr.New(func(prefix, args string) { n++ }, funcr.Options{Verbosity: 0})

	e := MustCompile(`(?P<a>x)`, Logger(log))
	if _, err := e.Apply("x", map[string]string{"a": "y"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("got %d log lines at verbosity 0, want none", n)
	}
}

func TestDialectOption(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "coregex"},
		{"coregex", "coregex"},
		{"re2", "re2"},
		{"stdlib", "stdlib"},
	}
	for _, tt := range tests {
		c := defaultConfig()
		if err := Dialect(tt.name).SetOption(c); err != nil {
			t.Fatalf("Dialect(%q) error = %v", tt.name, err)
		}
		if c.dialect != tt.want {
			t.Errorf("Dialect(%q) set dialect %q, want %q", tt.name, c.dialect, tt.want)
		}
	}
}
