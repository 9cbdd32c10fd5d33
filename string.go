package sfv

import (
	"bytes"

	"github.com/kyori19/net-http-structured-field-values/internal/charclass"
)

// StringBareItem is a bare item representing a quoted string: a sequence of
// bytes in the printable ASCII subset. It is distinct from TokenBareItem
// even when the underlying characters coincide.
type StringBareItem struct {
	uvalue[string]
}

var _ BareItem = (*StringBareItem)(nil)

// BareString constructs a StringBareItem from s. s is not validated here;
// validation happens on MarshalSFV.
func BareString(s string) *StringBareItem {
	v := &StringBareItem{}
	v.setValue(s)
	return v
}

// String constructs an Item wrapping a StringBareItem with empty
// parameters.
func String(s string) Item {
	return BareString(s).ToItem()
}

// ToItem implements BareItem.
func (s *StringBareItem) ToItem() Item {
	return NewItem(s, nil)
}

// Type implements CoreItem.
func (s *StringBareItem) Type() Type {
	return StringType
}

// MarshalSFV implements Marshaler. Per RFC 8941 §4.1.6, every byte must be
// in the printable ASCII subset {0x20, 0x21, 0x23-0x5B, 0x5D-0x7E}; '"' and
// '\' are escaped, everything else in range is emitted verbatim.
func (s *StringBareItem) MarshalSFV() ([]byte, error) {
	text := s.Value()
	var buf bytes.Buffer
	buf.WriteByte('"')
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"' || c == '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case charclass.StringChar(c):
			buf.WriteByte(c)
		default:
			return nil, newSerializationErrorf("", "string contains byte 0x%02x outside the printable ASCII subset: %w", c, ErrNonASCIIString)
		}
	}
	buf.WriteByte('"')
	return buf.Bytes(), nil
}
