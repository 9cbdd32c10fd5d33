package sfv

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/kyori19/net-http-structured-field-values/internal/charclass"
)

// Kind selects which top-level production Parse should attempt, per RFC
// 8941 §4.2.
type Kind int

const (
	// KindList parses input as an sf-list (§4.2.1).
	KindList Kind = iota
	// KindDictionary parses input as an sf-dictionary (§4.2.2).
	KindDictionary
	// KindItem parses input as an sf-item (§4.2.4).
	KindItem
)

// Parse runs the top-level "Parsing Structured Fields" algorithm (RFC 8941
// §4.2) for the given Kind: convert data to ASCII, discard leading SP,
// dispatch to the requested production, discard trailing SP, and fail if
// anything remains. It returns a List, *Dictionary, or Item depending on
// kind.
func Parse(data []byte, kind Kind) (any, error) {
	s, err := NewScanner(data)
	if err != nil {
		return nil, err
	}

	var output any
	switch kind {
	case KindList:
		output, err = parseList(s)
	case KindDictionary:
		output, err = parseDictionary(s)
	case KindItem:
		s.SkipClass(charclass.SP)
		output, err = parseItem(s)
	default:
		return nil, newParseErrorf(0, "unknown kind %d: %w", int(kind), ErrInvalidKind)
	}
	if err != nil {
		return nil, err
	}

	s.SkipClass(charclass.SP)
	if !s.EOF() {
		return nil, s.errorf("unexpected trailing data")
	}
	return output, nil
}

// ParseList parses data as an sf-list.
func ParseList(data []byte) (List, error) {
	v, err := Parse(data, KindList)
	if err != nil {
		return nil, err
	}
	return v.(List), nil
}

// ParseDictionary parses data as an sf-dictionary.
func ParseDictionary(data []byte) (*Dictionary, error) {
	v, err := Parse(data, KindDictionary)
	if err != nil {
		return nil, err
	}
	return v.(*Dictionary), nil
}

// ParseItem parses data as an sf-item.
func ParseItem(data []byte) (Item, error) {
	v, err := Parse(data, KindItem)
	if err != nil {
		return nil, err
	}
	return v.(Item), nil
}

// parseList implements RFC 8941 §4.2.1.
func parseList(s *Scanner) (List, error) {
	members := List{}

	s.SkipClass(charclass.SP)
	if s.EOF() {
		return members, nil
	}

	for {
		member, err := parseItemOrInnerList(s)
		if err != nil {
			return nil, err
		}
		members = append(members, member)

		s.SkipClass(charclass.OWS)
		if s.EOF() {
			return members, nil
		}
		if !s.TryConsumeByte(',') {
			return nil, s.errorf("expected ',' between list members")
		}
		s.SkipClass(charclass.OWS)
		if s.EOF() {
			return nil, s.errorf("unexpected trailing comma")
		}
	}
}

// parseDictionary implements RFC 8941 §4.2.2.
func parseDictionary(s *Scanner) (*Dictionary, error) {
	dict := NewDictionary()

	s.SkipClass(charclass.SP)
	if s.EOF() {
		return dict, nil
	}

	for {
		key, err := parseKey(s)
		if err != nil {
			return nil, err
		}

		var member Item
		if s.TryConsumeByte('=') {
			member, err = parseItemOrInnerList(s)
			if err != nil {
				return nil, err
			}
		} else {
			params, err := parseParameters(s)
			if err != nil {
				return nil, err
			}
			member = True().ToItem().With(params)
		}

		// A key repeated in the input moves to the position of its last
		// occurrence, carrying the last value.
		if _, exists := dict.values[key]; exists {
			for i, k := range dict.keys {
				if k == key {
					dict.keys = append(dict.keys[:i], dict.keys[i+1:]...)
					break
				}
			}
			delete(dict.values, key)
		}
		if err := dict.Set(key, member); err != nil {
			return nil, wrapParseError(s, err)
		}

		s.SkipClass(charclass.OWS)
		if s.EOF() {
			return dict, nil
		}
		if !s.TryConsumeByte(',') {
			return nil, s.errorf("expected ',' between dictionary members")
		}
		s.SkipClass(charclass.OWS)
		if s.EOF() {
			return nil, s.errorf("unexpected trailing comma")
		}
	}
}

// parseItemOrInnerList implements RFC 8941 §4.2.1.1: a list or dictionary
// member is either an Item or a parameterized Inner List, distinguished by
// whether the next byte opens a "(".
func parseItemOrInnerList(s *Scanner) (Item, error) {
	if s.PeekMatch(charclass.Single('(')) {
		return parseInnerList(s)
	}
	return parseItem(s)
}

// parseInnerList implements RFC 8941 §4.2.1.2, returning the inner list
// wrapped as an Item carrying its own Parameters.
func parseInnerList(s *Scanner) (Item, error) {
	if !s.TryConsumeByte('(') {
		return nil, s.errorf("expected '(' to start an inner list")
	}

	il := &InnerList{}
	for {
		s.SkipClass(charclass.SP)
		if s.TryConsumeByte(')') {
			params, err := parseParameters(s)
			if err != nil {
				return nil, err
			}
			return newInnerListValue(il, params), nil
		}

		member, err := parseItem(s)
		if err != nil {
			return nil, err
		}
		il.values = append(il.values, member)

		if b, ok := s.Peek(); ok && b != ' ' && b != ')' {
			return nil, s.errorf("expected ' ' or ')' after inner list member, got %q", b)
		}
		if s.EOF() {
			return nil, s.errorf("unexpected end of input inside inner list")
		}
	}
}

// parseKey implements RFC 8941 §4.2.3.3.
func parseKey(s *Scanner) (string, error) {
	if !s.PeekMatch(charclass.KeyStart) {
		b, _ := s.Peek()
		return "", s.errorf("key must start with a lowercase letter or '*', got %q", b)
	}
	key := s.Scan(charclass.KeyRest)
	return string(key), nil
}

// parseParameters implements RFC 8941 §4.2.3.2.
func parseParameters(s *Scanner) (*Parameters, error) {
	params := NewParameters()
	for s.TryConsumeByte(';') {
		s.SkipClass(charclass.SP)
		key, err := parseKey(s)
		if err != nil {
			return nil, err
		}

		var value BareItem = True()
		if s.TryConsumeByte('=') {
			value, err = parseBareItem(s)
			if err != nil {
				return nil, err
			}
		}

		if err := params.Set(key, value); err != nil {
			return nil, wrapParseError(s, err)
		}
	}
	return params, nil
}

// parseItem implements RFC 8941 §4.2.4.
func parseItem(s *Scanner) (Item, error) {
	bare, err := parseBareItem(s)
	if err != nil {
		return nil, err
	}
	params, err := parseParameters(s)
	if err != nil {
		return nil, err
	}
	return bare.ToItem().With(params), nil
}

// parseBareItem implements RFC 8941 §4.2.3.1, dispatching on the next byte.
func parseBareItem(s *Scanner) (BareItem, error) {
	b, ok := s.Peek()
	if !ok {
		return nil, s.errorf("unexpected end of input while parsing a bare item")
	}
	switch {
	case b == '-' || charclass.Digit(b):
		return parseIntegerOrDecimal(s)
	case b == '"':
		return parseString(s)
	case b == '*' || charclass.Alpha(b):
		return parseToken(s)
	case b == ':':
		return parseByteSequence(s)
	case b == '?':
		return parseBoolean(s)
	default:
		return nil, s.errorf("unrecognized character %q while parsing a bare item", b)
	}
}

// parseIntegerOrDecimal implements RFC 8941 §4.2.4, producing either an
// IntegerBareItem or a DecimalBareItem depending on whether a '.' appears.
func parseIntegerOrDecimal(s *Scanner) (BareItem, error) {
	var sb strings.Builder

	negative := s.TryConsumeByte('-')
	if negative {
		sb.WriteByte('-')
	}

	digits := s.Scan(charclass.Digit)
	if len(digits) == 0 {
		return nil, s.errorf("expected a digit")
	}
	if len(digits) > maxIntegerDigits {
		return nil, s.errorf("integer part has too many (%d) digits", len(digits))
	}
	sb.Write(digits)

	if !s.TryConsumeByte('.') {
		v, err := strconv.ParseInt(sb.String(), 10, 64)
		if err != nil {
			return nil, s.errorf("invalid integer: %v", err)
		}
		return BareInteger(v), nil
	}

	if len(digits) > maxDecimalIntegerDigits {
		return nil, s.errorf("decimal integer part has too many (%d) digits", len(digits))
	}
	sb.WriteByte('.')

	fraction := s.Scan(charclass.Digit)
	if len(fraction) == 0 {
		return nil, s.errorf("expected a digit after '.'")
	}
	if len(fraction) > 3 {
		return nil, s.errorf("decimal fractional part has too many (%d) digits", len(fraction))
	}
	sb.Write(fraction)

	v, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return nil, s.errorf("invalid decimal: %v", err)
	}
	return BareDecimal(v), nil
}

// parseString implements RFC 8941 §4.2.5.
func parseString(s *Scanner) (BareItem, error) {
	if !s.TryConsumeByte('"') {
		return nil, s.errorf("expected '\"' to start a string")
	}

	var sb strings.Builder
	for {
		b, err := s.GetByte()
		if err != nil {
			return nil, s.errorf("unterminated string")
		}
		switch {
		case b == '"':
			return BareString(sb.String()), nil
		case b == '\\':
			next, err := s.GetByte()
			if err != nil {
				return nil, s.errorf("unterminated escape sequence")
			}
			if next != '"' && next != '\\' {
				return nil, s.errorf("invalid escape sequence \\%q", next)
			}
			sb.WriteByte(next)
		case b < 0x20 || b >= 0x7f:
			return nil, s.errorf("invalid character 0x%02x in string", b)
		default:
			sb.WriteByte(b)
		}
	}
}

// parseToken implements RFC 8941 §4.2.6.
func parseToken(s *Scanner) (BareItem, error) {
	if !s.PeekMatch(charclass.TokenStart) {
		return nil, s.errorf("token must start with ALPHA or '*'")
	}
	first, _ := s.GetByte()
	rest := s.Scan(charclass.TokenRest)

	tok := string(append([]byte{first}, rest...))
	return BareToken(tok), nil
}

// parseByteSequence implements RFC 8941 §4.2.7.
func parseByteSequence(s *Scanner) (BareItem, error) {
	if !s.TryConsumeByte(':') {
		return nil, s.errorf("expected ':' to start a byte sequence")
	}
	encoded := s.Scan(charclass.Base64Char)
	if !s.TryConsumeByte(':') {
		return nil, s.errorf("expected closing ':' for byte sequence")
	}
	decoded, err := base64.StdEncoding.DecodeString(padBase64(string(encoded)))
	if err != nil {
		return nil, s.errorf("invalid base64 content: %v", err)
	}
	return BareByteSequence(decoded), nil
}

// padBase64 appends the '=' padding standard base64 requires but that
// RFC 8941's source representation allows callers to omit, so that
// ":aGVsbG8:" and ":aGVsbG8=:" both decode to "hello".
func padBase64(s string) string {
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	return s
}

// parseBoolean implements RFC 8941 §4.2.8.
func parseBoolean(s *Scanner) (BareItem, error) {
	if !s.TryConsumeByte('?') {
		return nil, s.errorf("expected '?' to start a boolean")
	}
	b, err := s.GetByte()
	if err != nil {
		return nil, s.errorf("unexpected end of input, expected '0' or '1'")
	}
	switch b {
	case '1':
		return True(), nil
	case '0':
		return False(), nil
	default:
		return nil, s.errorf("invalid boolean value %q, expected '0' or '1'", b)
	}
}

// wrapParseError anchors err, if it isn't already a *ParseError, at the
// scanner's current offset.
func wrapParseError(s *Scanner, err error) error {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return newParseErrorf(s.Offset(), "%v", err)
}
