package sfv

import "fmt"

// BareItemFrom converts a plain Go value into a BareItem: bool -> Boolean,
// int/int64 -> Integer, float32/float64 -> Decimal, string -> String,
// []byte -> ByteSequence, and a BareItem is returned unchanged. Other
// integer kinds (int8..int32, the unsigned kinds) are rejected.
// It is the single-value counterpart to Marshal's reflective tree
// conversion (marshal.go), used by Parameters.Set and the builders in
// item_builder.go to accept convenient literal values.
func BareItemFrom(value any) (BareItem, error) {
	switch v := value.(type) {
	case BareItem:
		return v, nil
	case string:
		return BareString(v), nil
	case bool:
		return BareBoolean(v), nil
	case int:
		return BareInteger(int64(v)), nil
	case int64:
		return BareInteger(v), nil
	case float64:
		return BareDecimal(v), nil
	case float32:
		return BareDecimal(float64(v)), nil
	case []byte:
		return BareByteSequence(v), nil
	default:
		return nil, newSerializationErrorf("", "unsupported bare item type %T: %w", v, ErrUnsupportedBareItem)
	}
}

// bareTokenFrom is like BareItemFrom but treats a bare string as a Token
// rather than a String, matching RFC 8941's convention that parameter
// values given as Go string literals in fluent-builder code are usually
// meant as tokens (e.g. Parameter("type", "foo")).
func bareTokenFrom(value any) (BareItem, error) {
	if s, ok := value.(string); ok {
		return BareToken(s), nil
	}
	bi, err := BareItemFrom(value)
	if err != nil {
		return nil, fmt.Errorf("sfv: failed to build parameter value: %w", err)
	}
	return bi, nil
}
