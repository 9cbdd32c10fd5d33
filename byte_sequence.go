package sfv

import (
	"bytes"
	"encoding/base64"
)

// ByteSequenceBareItem is a bare item representing an opaque binary blob,
// serialized as base64 between colons (":aGVsbG8=:"). It is distinct from
// StringBareItem even when the underlying bytes coincide.
type ByteSequenceBareItem struct {
	uvalue[[]byte]
}

var _ BareItem = (*ByteSequenceBareItem)(nil)

// BareByteSequence constructs a ByteSequenceBareItem from raw bytes. Any
// bytes are accepted, here and in MarshalSFV, which always produces ASCII
// base64 output; only the parser checks the base64 alphabet.
func BareByteSequence(b []byte) *ByteSequenceBareItem {
	v := &ByteSequenceBareItem{}
	v.setValue(b)
	return v
}

// ByteSequence constructs an Item wrapping a ByteSequenceBareItem with
// empty parameters.
func ByteSequence(b []byte) Item {
	return BareByteSequence(b).ToItem()
}

// ToItem implements BareItem.
func (b *ByteSequenceBareItem) ToItem() Item {
	return NewItem(b, nil)
}

// Type implements CoreItem.
func (b *ByteSequenceBareItem) Type() Type {
	return ByteSequenceType
}

// MarshalSFV implements Marshaler.
func (b *ByteSequenceBareItem) MarshalSFV() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(':')
	buf.WriteString(base64.StdEncoding.EncodeToString(b.Value()))
	buf.WriteByte(':')
	return buf.Bytes(), nil
}
