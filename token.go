package sfv

import (
	"github.com/kyori19/net-http-structured-field-values/internal/charclass"
)

// TokenBareItem is a bare item representing a symbolic identifier: a token,
// emitted unquoted. It is distinct from StringBareItem even when the
// underlying characters coincide.
type TokenBareItem struct {
	uvalue[string]
}

var _ BareItem = (*TokenBareItem)(nil)

// BareToken constructs a TokenBareItem from s. s is not validated here;
// validation happens on MarshalSFV.
func BareToken(s string) *TokenBareItem {
	v := &TokenBareItem{}
	v.setValue(s)
	return v
}

// Token constructs an Item wrapping a TokenBareItem with empty parameters.
func Token(s string) Item {
	return BareToken(s).ToItem()
}

// ToItem implements BareItem.
func (t *TokenBareItem) ToItem() Item {
	return NewItem(t, nil)
}

// Type implements CoreItem.
func (t *TokenBareItem) Type() Type {
	return TokenType
}

// MarshalSFV implements Marshaler. Per RFC 8941 §4.1.7, a token must match
// (ALPHA / "*") *tchar.
func (t *TokenBareItem) MarshalSFV() ([]byte, error) {
	s := t.Value()
	if len(s) == 0 || !charclass.TokenStart(s[0]) {
		return nil, newSerializationErrorf("", "token must start with ALPHA or '*': %w", ErrInvalidToken)
	}
	for i := 1; i < len(s); i++ {
		if !charclass.TokenRest(s[i]) {
			return nil, newSerializationErrorf("", "token contains invalid character %q: %w", s[i], ErrInvalidToken)
		}
	}
	return []byte(s), nil
}
