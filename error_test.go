package rengsub

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

// TestPatternErrorMessage verifies that the dialect error is kept intact.
func TestPatternErrorMessage(t *testing.T) {
	patterns := []string{
		"[invalid",
		`\`,
		"(abc",
		"*abc",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			_, stdlibErr := regexp.Compile(pattern)
			_, ourErr := Compile(pattern, Dialect("stdlib"))

			if stdlibErr == nil {
				t.Skip("stdlib accepts this pattern")
			}
			if ourErr == nil {
				t.Fatalf("Compile(%q) expected error, got nil", pattern)
			}

			var pe *PatternError
			if !errors.As(ourErr, &pe) {
				t.Fatalf("Compile(%q) error %T, want *PatternError", pattern, ourErr)
			}
			if pe.Unwrap().Error() != stdlibErr.Error() {
				t.Errorf("wrapped error mismatch:\n  got:  %q\n  want: %q", pe.Unwrap().Error(), stdlibErr.Error())
			}
			if !strings.HasPrefix(ourErr.Error(), "rengsub: invalid pattern ") {
				t.Errorf("Error() = %q, want rengsub prefix", ourErr.Error())
			}
			if !strings.HasSuffix(ourErr.Error(), stdlibErr.Error()) {
				t.Errorf("Error() = %q, want suffix %q", ourErr.Error(), stdlibErr.Error())
			}
		})
	}
}

func TestNoMatchErrorMessage(t *testing.T) {
	err := &NoMatchError{Pattern: `\d+`, Input: "abc"}
	want := "rengsub: no match found: `\\d+` against \"abc\""
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrNoMatch) {
		t.Error("errors.Is(NoMatchError, ErrNoMatch) = false")
	}
	if errors.Is(err, ErrDuplicateName) {
		t.Error("errors.Is(NoMatchError, ErrDuplicateName) = true")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`a(b)`, "`a(b)`"},
		{"a`b", "\"a`b\""},
		{"a\nb", "\"a\\nb\""},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
