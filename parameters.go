package sfv

import (
	"bytes"
)

// Parameters is an ordered mapping from Key to BareItem, attached to an
// Item or an InnerList. Insertion order is preserved; setting an existing
// key again overwrites its value without moving its position, matching the
// parser's last-writer-wins rule (§4.2.7).
type Parameters struct {
	keys   []string
	values map[string]BareItem
}

// NewParameters returns an empty Parameters.
func NewParameters() *Parameters {
	return &Parameters{values: make(map[string]BareItem)}
}

// Len returns the number of parameters. A nil *Parameters has length 0.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns a copy of the parameter keys, in insertion order.
func (p *Parameters) Keys() []string {
	if p == nil {
		return nil
	}
	ret := make([]string, len(p.keys))
	copy(ret, p.keys)
	return ret
}

// Get assigns the value for key to dst. It returns an error if key is not
// present or dst is not assignment-compatible.
func (p *Parameters) Get(key string, dst any) error {
	if p == nil {
		return newSerializationErrorf(key, "parameter not found")
	}
	value, exists := p.values[key]
	if !exists {
		return newSerializationErrorf(key, "parameter not found")
	}
	return value.GetValue(dst)
}

// GetBareItem returns the BareItem for key, or (nil, false) if absent.
func (p *Parameters) GetBareItem(key string) (BareItem, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Set inserts or overwrites the value for key. On first insertion the key
// is appended to the insertion order; overwriting an existing key leaves
// its position unchanged. The parser stores parameters through Set, so a
// parameter key repeated in the input keeps the position of its first
// occurrence and the value of its last (dictionary keys are handled
// differently by ParseDictionary; see Dictionary).
func (p *Parameters) Set(key string, value BareItem) error {
	if p == nil {
		return newSerializationErrorf(key, "cannot set parameter on nil Parameters")
	}
	if value == nil {
		return newSerializationErrorf(key, "parameter value cannot be nil: %w", ErrUnsupportedBareItem)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return nil
}

// MarshalSFV implements Marshaler, per RFC 8941 §4.1.1.2. Iteration is
// read-only: unlike the teacher repository, which destructively rebuilt
// p.keys from map iteration (nondeterministic order) whenever the slice
// was empty, this never mutates p and always uses the recorded insertion
// order.
func (p *Parameters) MarshalSFV() ([]byte, error) {
	if p.Len() == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	for _, key := range p.keys {
		value := p.values[key]

		if value.Type() == BooleanType {
			var b bool
			if err := value.GetValue(&b); err != nil {
				return nil, wrapSerializationError(key, err)
			}
			if b {
				buf.WriteByte(';')
				keyBytes, err := serializeKey(key)
				if err != nil {
					return nil, wrapSerializationError(key, err)
				}
				buf.Write(keyBytes)
				continue
			}
		}

		buf.WriteByte(';')
		keyBytes, err := serializeKey(key)
		if err != nil {
			return nil, wrapSerializationError(key, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte('=')

		valueBytes, err := value.MarshalSFV()
		if err != nil {
			return nil, wrapSerializationError(key, err)
		}
		buf.Write(valueBytes)
	}

	return buf.Bytes(), nil
}
