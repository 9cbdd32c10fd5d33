package sfv

import (
	"errors"
	"fmt"
)

// ParseError reports that input was not a well-formed instance of the
// requested top-level Structured Field type. Offset is the byte position at
// which the failing grammar production was entered or detected.
type ParseError struct {
	Offset  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sfv: parse error at byte %d: %s", e.Offset, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseErrorf(offset int, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &ParseError{Offset: offset, Message: err.Error(), Err: errors.Unwrap(err)}
}

// SerializationError reports that a value tree could not be rendered into
// Structured Field Value bytes. Path, when non-empty, names the location
// within the tree (a dictionary key, a list index) at which the failure
// occurred.
type SerializationError struct {
	Path    string
	Message string
	Err     error
}

func (e *SerializationError) Error() string {
	prefix := "sfv: serialization error"
	if e.Path != "" {
		prefix += " at " + e.Path
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func newSerializationErrorf(path string, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &SerializationError{Path: path, Message: err.Error(), Err: errors.Unwrap(err)}
}

func wrapSerializationError(path string, err error) error {
	var serr *SerializationError
	if errors.As(err, &serr) {
		return err
	}
	return &SerializationError{Path: path, Message: "failed to serialize", Err: err}
}

// Sentinel causes, wrapped by ParseError/SerializationError so callers can
// match on the underlying constraint with errors.Is.
var (
	ErrIntegerOutOfRange   = errors.New("integer magnitude exceeds 999999999999999")
	ErrDecimalOutOfRange   = errors.New("decimal integer part exceeds 12 digits")
	ErrInvalidToken        = errors.New("value is not a valid token")
	ErrInvalidKey          = errors.New("value is not a valid key")
	ErrNonASCIIString      = errors.New("string contains a byte outside the printable ASCII subset")
	ErrUnsupportedBareItem = errors.New("value has no valid bare-item representation")
	ErrInvalidKind         = errors.New("kind must be one of KindList, KindDictionary, KindItem")
)
