// Package charclass provides named byte-range matchers for the character
// classes used by RFC 8941's ABNF grammar (token, key, string, base64, ...).
//
// Keeping these as values rather than inline comparisons in the parser means
// the grammar's character sets are testable on their own, and the scanner's
// scan/peek/try-consume operations can stay generic over "a class of bytes"
// instead of being duplicated per production.
package charclass

// Class reports whether a byte belongs to a character class.
type Class func(b byte) bool

// Range matches any byte in [Lo, Hi] inclusive.
type Range struct {
	Lo, Hi byte
}

func (r Range) contains(b byte) bool {
	return b >= r.Lo && b <= r.Hi
}

// Ranges returns a Class matching any byte contained in one of the given
// ranges.
func Ranges(rs ...Range) Class {
	return func(b byte) bool {
		for _, r := range rs {
			if r.contains(b) {
				return true
			}
		}
		return false
	}
}

// Or returns a Class matching any byte matched by at least one of cs.
func Or(cs ...Class) Class {
	return func(b byte) bool {
		for _, c := range cs {
			if c(b) {
				return true
			}
		}
		return false
	}
}

// Single returns a Class matching exactly one byte.
func Single(want byte) Class {
	return func(b byte) bool { return b == want }
}

var (
	// Digit matches ASCII 0-9.
	Digit = Ranges(Range{'0', '9'})

	// UpperAlpha matches ASCII A-Z.
	UpperAlpha = Ranges(Range{'A', 'Z'})

	// LowerAlpha matches ASCII a-z.
	LowerAlpha = Ranges(Range{'a', 'z'})

	// Alpha matches ASCII A-Z and a-z.
	Alpha = Or(UpperAlpha, LowerAlpha)

	// SP matches the single space character.
	SP = Single(' ')

	// HTAB matches the horizontal tab character.
	HTAB = Single('\t')

	// OWS matches optional whitespace: SP or HTAB.
	OWS = Or(SP, HTAB)

	// KeyStart matches the first byte of a Key: lcalpha or "*".
	KeyStart = Or(LowerAlpha, Single('*'))

	// KeyRest matches subsequent Key bytes: lcalpha, DIGIT, "_", "-", ".", "*".
	KeyRest = Or(LowerAlpha, Digit, Single('_'), Single('-'), Single('.'), Single('*'))

	// TokenStart matches the first byte of a Token: ALPHA or "*".
	TokenStart = Or(Alpha, Single('*'))

	// TokenRest matches subsequent Token bytes per RFC 8941's tchar production:
	// "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." / "^" / "_" /
	// "`" / "|" / "~" / DIGIT / ALPHA / ":" / "/"
	TokenRest = Or(
		Alpha, Digit,
		Single('!'), Single('#'), Single('$'), Single('%'), Single('&'),
		Single('\''), Single('*'), Single('+'), Single('-'), Single('.'),
		Single('^'), Single('_'), Single('`'), Single('|'), Single('~'),
		Single(':'), Single('/'),
	)

	// StringChar matches bytes allowed verbatim inside a quoted String:
	// SP and VCHAR, excluding '"' and '\'.
	StringChar = Ranges(Range{0x20, 0x21}, Range{0x23, 0x5B}, Range{0x5D, 0x7E})

	// Base64Char matches the standard base64 alphabet plus padding.
	Base64Char = Or(Alpha, Digit, Single('+'), Single('/'), Single('='))
)
