package sfv

import (
	"bytes"

	"github.com/kyori19/net-http-structured-field-values/internal/charclass"
)

// serializeKey renders a parameter or dictionary key, per RFC 8941 §4.1.1.3
// / §4.1.1.4. Unlike parsing (§4.2.8, via charclass.KeyStart/KeyRest), which
// accepts '.' as an interior key character, serialization rejects it: RFC
// 8941 defines Key's ABNF identically for parsing and serializing, but this
// library treats '.' as parse-only leniency and refuses to emit it, so that
// round-tripping a key containing '.' fails loudly instead of producing
// output a strict parser might reject. Any caller that legitimately needs a
// '.' in a key is working outside RFC 8941's own grammar recommendation.
func serializeKey(key string) ([]byte, error) {
	if key == "" {
		return nil, newSerializationErrorf(key, "key must not be empty: %w", ErrInvalidKey)
	}
	if key[0] == '.' || !charclass.KeyStart(key[0]) {
		return nil, newSerializationErrorf(key, "key must start with a lowercase letter or '*': %w", ErrInvalidKey)
	}
	for i := 1; i < len(key); i++ {
		c := key[i]
		if c == '.' {
			return nil, newSerializationErrorf(key, "key must not contain '.': %w", ErrInvalidKey)
		}
		if !charclass.KeyRest(c) {
			return nil, newSerializationErrorf(key, "key contains invalid character %q: %w", c, ErrInvalidKey)
		}
	}
	return []byte(key), nil
}

// serializeParameterizedValue renders a single Item or InnerList member
// (inner value followed by its Parameters), per RFC 8941 §4.1.1 / §4.1.1.1.
func serializeParameterizedValue(pv *ParameterizedValue) ([]byte, error) {
	if pv == nil {
		return nil, newSerializationErrorf("", "cannot serialize a nil value")
	}

	var buf bytes.Buffer
	switch inner := pv.Inner().(type) {
	case BareItem:
		b, err := inner.MarshalSFV()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	case *InnerList:
		b, err := serializeInnerListBody(inner)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	default:
		return nil, newSerializationErrorf("", "value has unrecognized inner type %T", inner)
	}

	paramBytes, err := pv.Parameters().MarshalSFV()
	if err != nil {
		return nil, err
	}
	buf.Write(paramBytes)

	return buf.Bytes(), nil
}

// serializeInnerListBody renders "(" member (SP member)* ")", without any
// trailing parameters: for a List/Dictionary member serializeParameterizedValue
// appends the enclosing ParameterizedValue's parameters, and
// SerializeAsInnerList appends the InnerList's own.
func serializeInnerListBody(il *InnerList) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i := 0; i < il.Len(); i++ {
		if i > 0 {
			buf.WriteByte(' ')
		}
		member, ok := il.Get(i)
		if !ok {
			continue
		}
		b, err := serializeParameterizedValue(member)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(')')
	return buf.Bytes(), nil
}

// Serialize renders a top-level List, *Dictionary, or Item as Structured
// Field Value bytes, per RFC 8941 §4.1. Any other value type is rejected.
func Serialize(value any) ([]byte, error) {
	switch v := value.(type) {
	case List:
		return v.MarshalSFV()
	case *Dictionary:
		return v.MarshalSFV()
	case Item:
		return serializeParameterizedValue(v)
	case BareItem:
		return serializeParameterizedValue(v.ToItem())
	default:
		return nil, newSerializationErrorf("", "value of type %T is not a List, *Dictionary, or Item", value)
	}
}

// SerializeAsInnerList renders il as a standalone structured field value:
// the inner-list body plus its own parameters, per RFC 8941 §4.1.1.1. This
// is distinct from an InnerList nested inside a List/Dictionary member,
// whose parameters live on the enclosing ParameterizedValue instead.
func SerializeAsInnerList(il *InnerList) ([]byte, error) {
	if il == nil {
		return nil, newSerializationErrorf("", "cannot serialize a nil inner list")
	}
	body, err := serializeInnerListBody(il)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(body)
	paramBytes, err := il.Parameters().MarshalSFV()
	if err != nil {
		return nil, err
	}
	buf.Write(paramBytes)
	return buf.Bytes(), nil
}
