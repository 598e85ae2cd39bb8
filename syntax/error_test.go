package syntax

import (
	"errors"
	"fmt"
	"testing"
)

// TestErrorMessageFormat verifies the rendered message of every kind.
func TestErrorMessageFormat(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{`\x`, "ParseError: invalid escape: pos = 1, char = 'x'"},
		{`ab\é`, "ParseError: invalid escape: pos = 3, char = 'é'"},
		{"a)", "ParseError: invalid right parenthesis: pos = 1"},
		{"*", "ParseError: no previous expression: pos = 0"},
		{"(a", "ParseError: no right parenthesis"},
		{"", "ParseError: empty expression"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.pattern)
			}
			if err.Error() != tt.want {
				t.Errorf("error message mismatch:\n  got:  %q\n  want: %q", err.Error(), tt.want)
			}
		})
	}
}

// TestEmptyMessageDistinct guards against Empty reusing the unterminated
// group message.
func TestEmptyMessageDistinct(t *testing.T) {
	empty := &ParseError{Kind: Empty, Pos: NoPos}
	noParen := &ParseError{Kind: NoRightParen, Pos: NoPos}
	if empty.Error() == noParen.Error() {
		t.Errorf("Empty and NoRightParen share message %q", empty.Error())
	}
}

// TestErrorIs verifies sentinel matching through wrapping.
func TestErrorIs(t *testing.T) {
	tests := []struct {
		pattern string
		target  error
	}{
		{`\q`, ErrInvalidEscape},
		{")", ErrInvalidRightParen},
		{"?", ErrNoPrev},
		{"(", ErrNoRightParen},
		{"", ErrEmpty},
	}

	sentinels := []error{ErrInvalidEscape, ErrInvalidRightParen, ErrNoPrev, ErrNoRightParen, ErrEmpty}

	for _, tt := range tests {
		t.Run(tt.target.(*ParseError).Kind.String(), func(t *testing.T) {
			_, err := Parse(tt.pattern)
			wrapped := fmt.Errorf("compile %q: %w", tt.pattern, err)

			if !errors.Is(wrapped, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.target)
			}
			for _, s := range sentinels {
				if s != tt.target && errors.Is(err, s) {
					t.Errorf("errors.Is(%v, %v) = true, want false", err, s)
				}
			}

			var perr *ParseError
			if !errors.As(wrapped, &perr) {
				t.Fatalf("errors.As failed for %v", wrapped)
			}
		})
	}
}

// TestErrorHasPos checks which kinds carry an offset.
func TestErrorHasPos(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{`\z`, true},
		{")", true},
		{"+", true},
		{"(", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := Parse(tt.pattern)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Parse(%q) error %v is not *ParseError", tt.pattern, err)
		}
		if perr.HasPos() != tt.want {
			t.Errorf("Parse(%q) HasPos() = %v, want %v", tt.pattern, perr.HasPos(), tt.want)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{InvalidEscape, "InvalidEscape"},
		{InvalidRightParen, "InvalidRightParen"},
		{NoPrev, "NoPrev"},
		{NoRightParen, "NoRightParen"},
		{Empty, "Empty"},
		{ErrorKind(99), "UnknownErrorKind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
