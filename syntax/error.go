package syntax

import "fmt"

// ErrorKind classifies parse errors.
type ErrorKind uint8

const (
	// InvalidEscape indicates a backslash followed by a character that has
	// no escaped meaning.
	InvalidEscape ErrorKind = iota + 1

	// InvalidRightParen indicates a ')' with no open group.
	InvalidRightParen

	// NoPrev indicates a quantifier or '|' with nothing before it.
	NoPrev

	// NoRightParen indicates a group still open at end of input.
	NoRightParen

	// Empty indicates a pattern with no matchable content.
	Empty
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidRightParen:
		return "InvalidRightParen"
	case NoPrev:
		return "NoPrev"
	case NoRightParen:
		return "NoRightParen"
	case Empty:
		return "Empty"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// NoPos is the Pos of errors that are not tied to a location in the pattern.
const NoPos = -1

// ParseError describes why a pattern could not be parsed.
//
// Pos is a zero-based character (rune) offset into the pattern, or NoPos for
// NoRightParen and Empty. Char is only set for InvalidEscape.
type ParseError struct {
	Kind ErrorKind
	Pos  int
	Char rune
}

// Sentinel errors for use with errors.Is. Only Kind is compared.
var (
	ErrInvalidEscape     = &ParseError{Kind: InvalidEscape, Pos: NoPos}
	ErrInvalidRightParen = &ParseError{Kind: InvalidRightParen, Pos: NoPos}
	ErrNoPrev            = &ParseError{Kind: NoPrev, Pos: NoPos}
	ErrNoRightParen      = &ParseError{Kind: NoRightParen, Pos: NoPos}
	ErrEmpty             = &ParseError{Kind: Empty, Pos: NoPos}
)

// Error implements the error interface
func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidEscape:
		return fmt.Sprintf("ParseError: invalid escape: pos = %d, char = '%c'", e.Pos, e.Char)
	case InvalidRightParen:
		return fmt.Sprintf("ParseError: invalid right parenthesis: pos = %d", e.Pos)
	case NoPrev:
		return fmt.Sprintf("ParseError: no previous expression: pos = %d", e.Pos)
	case NoRightParen:
		return "ParseError: no right parenthesis"
	case Empty:
		return "ParseError: empty expression"
	default:
		return fmt.Sprintf("ParseError: %s", e.Kind)
	}
}

// Is implements error comparison for errors.Is
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// HasPos reports whether the error points at a location in the pattern.
func (e *ParseError) HasPos() bool {
	return e.Pos != NoPos
}

func errInvalidEscape(pos int, c rune) *ParseError {
	return &ParseError{Kind: InvalidEscape, Pos: pos, Char: c}
}

func errInvalidRightParen(pos int) *ParseError {
	return &ParseError{Kind: InvalidRightParen, Pos: pos}
}

func errNoPrev(pos int) *ParseError {
	return &ParseError{Kind: NoPrev, Pos: pos}
}
