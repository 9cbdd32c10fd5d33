package sfv

import (
	"golang.org/x/exp/utf8string"

	"github.com/kyori19/net-http-structured-field-values/internal/charclass"
)

// Scanner is a forward byte cursor over an ASCII-encoded input. It has no
// notion of grammar; it only knows how to look ahead at, and consume, bytes
// and byte classes. The Parser drives it.
//
// A Scanner is stateful and single-pass. It is not safe for concurrent use
// and cannot be rewound.
type Scanner struct {
	data []byte
	pos  int
}

// NewScanner constructs a Scanner over data. data must be strict ASCII
// (0x00-0x7F); any other byte is a ParseError, reported before any
// production runs.
func NewScanner(data []byte) (*Scanner, error) {
	if !utf8string.NewString(string(data)).IsASCII() {
		return nil, &ParseError{Offset: 0, Message: "input is not strict ASCII"}
	}
	return &Scanner{data: data}, nil
}

// Offset returns the scanner's current byte offset, for error reporting.
func (s *Scanner) Offset() int {
	return s.pos
}

// EOF reports whether the cursor has reached the end of input.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.data)
}

// Peek returns the next byte without advancing, and ok=false at EOF.
func (s *Scanner) Peek() (b byte, ok bool) {
	if s.EOF() {
		return 0, false
	}
	return s.data[s.pos], true
}

// PeekMatch reports whether the next byte is present and matches class,
// without advancing.
func (s *Scanner) PeekMatch(class charclass.Class) bool {
	b, ok := s.Peek()
	return ok && class(b)
}

// TryConsumeByte advances past the next byte and returns true iff it equals
// want; otherwise the cursor is left unchanged and false is returned.
func (s *Scanner) TryConsumeByte(want byte) bool {
	b, ok := s.Peek()
	if !ok || b != want {
		return false
	}
	s.pos++
	return true
}

// TryConsumeClass advances past the next byte and returns true iff it
// matches class; otherwise the cursor is left unchanged and false is
// returned.
func (s *Scanner) TryConsumeClass(class charclass.Class) bool {
	b, ok := s.Peek()
	if !ok || !class(b) {
		return false
	}
	s.pos++
	return true
}

// Scan greedily consumes the longest run of bytes matching class, starting
// at the current position, and returns the matched bytes. A zero-length
// result (no bytes matched) is a valid, distinct outcome from EOF -- it
// simply means the next byte, if any, does not match class.
func (s *Scanner) Scan(class charclass.Class) []byte {
	start := s.pos
	for !s.EOF() && class(s.data[s.pos]) {
		s.pos++
	}
	return s.data[start:s.pos]
}

// SkipClass advances past every leading byte matching class, discarding
// them. It is Scan without returning the matched bytes, for callers that
// don't need them (e.g. whitespace skipping).
func (s *Scanner) SkipClass(class charclass.Class) {
	for !s.EOF() && class(s.data[s.pos]) {
		s.pos++
	}
}

// GetByte consumes and returns the next byte, failing at EOF.
func (s *Scanner) GetByte() (byte, error) {
	b, ok := s.Peek()
	if !ok {
		return 0, s.errorf("unexpected end of input")
	}
	s.pos++
	return b, nil
}

// errorf builds a ParseError anchored at the scanner's current offset.
func (s *Scanner) errorf(format string, args ...any) error {
	return newParseErrorf(s.pos, format, args...)
}
