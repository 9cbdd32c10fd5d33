package sfv

import (
	"bytes"
)

// Dictionary is an ordered mapping of string keys to Items, where an Item's
// Inner() may itself be an *InnerList, per RFC 8941 §3.2. Insertion order is
// preserved; Set on an existing key overwrites its value without moving its
// position. ParseDictionary treats a key repeated in its input differently:
// the key ends up at the position of its last occurrence, with the last
// value.
type Dictionary struct {
	keys   []string
	values map[string]Item
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{values: make(map[string]Item)}
}

// Len returns the number of entries. A nil *Dictionary has length 0.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns a copy of the dictionary's keys, in insertion order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	ret := make([]string, len(d.keys))
	copy(ret, d.keys)
	return ret
}

// Set inserts or overwrites the Item for key. On first insertion the key is
// appended to the insertion order; overwriting an existing key leaves its
// position unchanged. value must already be an Item: no BareItemFrom-style
// conversion is applied here, so wrap a BareItem with ToItem or NewItem and
// an *InnerList with NewInnerListItem first.
func (d *Dictionary) Set(key string, value Item) error {
	if d == nil {
		return newSerializationErrorf(key, "cannot set entry on nil Dictionary")
	}
	if value == nil {
		return newSerializationErrorf(key, "dictionary value cannot be nil: %w", ErrUnsupportedBareItem)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return nil
}

// Get returns the Item for key, or (nil, false) if absent.
func (d *Dictionary) Get(key string) (Item, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// GetValue assigns the bare value stored at key to dst. It fails if key is
// absent or its Item wraps an *InnerList rather than a BareItem.
func (d *Dictionary) GetValue(key string, dst any) error {
	item, ok := d.Get(key)
	if !ok {
		return newSerializationErrorf(key, "key not found in dictionary")
	}
	bare, ok := item.Bare()
	if !ok {
		return newSerializationErrorf(key, "value is an inner list, not a bare item")
	}
	return bare.GetValue(dst)
}

// MarshalSFV implements Marshaler, per RFC 8941 §4.1.2. Entries are
// separated by ", "; a Boolean-true entry with no parameters serializes as
// a bare key, matching the rule Parameters.MarshalSFV applies to individual
// parameters (§4.1.1.2).
func (d *Dictionary) MarshalSFV() ([]byte, error) {
	if d.Len() == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteString(", ")
		}

		keyBytes, err := serializeKey(key)
		if err != nil {
			return nil, wrapSerializationError(key, err)
		}
		buf.Write(keyBytes)

		item := d.values[key]
		if bare, ok := item.Bare(); ok && bare.Type() == BooleanType {
			var b bool
			if err := bare.GetValue(&b); err != nil {
				return nil, wrapSerializationError(key, err)
			}
			if b {
				paramBytes, err := item.Parameters().MarshalSFV()
				if err != nil {
					return nil, wrapSerializationError(key, err)
				}
				buf.Write(paramBytes)
				continue
			}
		}

		buf.WriteByte('=')
		valueBytes, err := serializeParameterizedValue(item)
		if err != nil {
			return nil, wrapSerializationError(key, err)
		}
		buf.Write(valueBytes)
	}

	return buf.Bytes(), nil
}
