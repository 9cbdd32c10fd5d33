package sfv

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// Encoder writes successive Marshal results to dst, in the manner of
// encoding/json's Encoder: a thin convenience wrapper around Marshal for
// callers writing to a stream rather than building a []byte.
type Encoder struct {
	dst io.Writer
}

// NewEncoder returns an Encoder that writes to dst.
func NewEncoder(dst io.Writer) *Encoder {
	return &Encoder{dst: dst}
}

// Encode marshals v and writes the result to the encoder's destination.
func (enc *Encoder) Encode(v any) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	if _, err := enc.dst.Write(b); err != nil {
		return fmt.Errorf("sfv: failed to write encoded value: %w", err)
	}
	return nil
}

// Marshal converts v into Structured Field Value bytes. If v already
// implements Marshaler (List, *Dictionary, Item, or a BareItem), it is
// rendered directly; otherwise v is reflectively converted per the mapping
// described below, then rendered.
//
// Go type -> Structured Field Value, reflectively:
//
//	bool                      -> Boolean
//	any integer kind          -> Integer (range-checked, same limit as BareInteger)
//	float32, float64          -> Decimal (same rounding as BareDecimal)
//	string                    -> String
//	[]byte, [N]byte           -> ByteSequence
//	other slice or array      -> List
//	map[string]V              -> Dictionary, keys sorted for determinism
//	struct                    -> Dictionary, exported fields keyed by
//	                             lowercased field name or an `sfv:"..."` tag
//	                             ("-" skips the field)
//	pointer                   -> dereferenced (nil pointer is an error)
//
// time.Time has no representation in this library's closed BareItem set
// (Integer/Decimal/String/Token/ByteSequence/Boolean) and is rejected with a
// SerializationError rather than silently encoded as a Unix timestamp.
func Marshal(v any) ([]byte, error) {
	if v == nil {
		return nil, newSerializationErrorf("", "cannot marshal a nil value")
	}
	if m, ok := v.(Marshaler); ok {
		return m.MarshalSFV()
	}

	value, err := valueToSFV(v)
	if err != nil {
		return nil, err
	}
	return value.MarshalSFV()
}

// valueToSFV reflectively converts a plain Go value into a Value (List,
// *Dictionary, or Item).
func valueToSFV(v any) (Value, error) {
	if v == nil {
		return nil, newSerializationErrorf("", "cannot marshal a nil value")
	}
	switch val := v.(type) {
	case Item:
		return val, nil
	case List:
		return val, nil
	case *Dictionary:
		return val, nil
	case BareItem:
		return val.ToItem(), nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, newSerializationErrorf("", "cannot marshal a nil pointer")
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Bool:
		return BareBoolean(rv.Bool()).ToItem(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val := rv.Int()
		if val > maxSFVInteger || val < -maxSFVInteger {
			return nil, newSerializationErrorf("", "int value %d exceeds +/-%d: %w", val, int64(maxSFVInteger), ErrIntegerOutOfRange)
		}
		return BareInteger(val).ToItem(), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val := rv.Uint()
		if val > maxSFVInteger {
			return nil, newSerializationErrorf("", "uint value %d exceeds %d: %w", val, int64(maxSFVInteger), ErrIntegerOutOfRange)
		}
		return BareInteger(int64(val)).ToItem(), nil

	case reflect.Float32, reflect.Float64:
		return BareDecimal(rv.Float()).ToItem(), nil

	case reflect.String:
		return BareString(rv.String()).ToItem(), nil

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return BareByteSequence(rv.Bytes()).ToItem(), nil
		}
		return sliceToList(rv)

	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return BareByteSequence(b).ToItem(), nil
		}
		return sliceToList(rv)

	case reflect.Map:
		return mapToDictionary(rv)

	case reflect.Struct:
		if rv.Type().PkgPath() == "time" && rv.Type().Name() == "Time" {
			return nil, newSerializationErrorf("", "time.Time has no Structured Field Value representation: %w", ErrUnsupportedBareItem)
		}
		return structToDictionary(rv)

	default:
		return nil, newSerializationErrorf("", "unsupported type %T for marshaling: %w", v, ErrUnsupportedBareItem)
	}
}

// asDictionaryMember converts an already-converted Value into the Item a
// List, Dictionary, or struct-field/map-value entry requires. A nested Go
// slice/array reflects to a List, which has no Marshaler slot of its own as
// a dictionary or list member; RFC 8941 represents that case as an Inner
// List instead, so a List here is rewrapped into one.
func asDictionaryMember(v Value) (Item, error) {
	switch val := v.(type) {
	case Item:
		return val, nil
	case List:
		il := &InnerList{values: make([]Item, len(val))}
		copy(il.values, val)
		return newInnerListValue(il, nil), nil
	default:
		return nil, newSerializationErrorf("", "value of type %T cannot be a dictionary or inner-list member: %w", v, ErrUnsupportedBareItem)
	}
}

// sliceToList converts a slice (other than []byte) to a List.
func sliceToList(rv reflect.Value) (List, error) {
	l := make(List, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		sfvValue, err := valueToSFV(rv.Index(i).Interface())
		if err != nil {
			return nil, wrapSerializationError(fmt.Sprintf("[%d]", i), err)
		}
		member, err := asDictionaryMember(sfvValue)
		if err != nil {
			return nil, wrapSerializationError(fmt.Sprintf("[%d]", i), err)
		}
		l[i] = member
	}
	return l, nil
}

// mapToDictionary converts a map[string]V to a *Dictionary. Keys are sorted
// before insertion so that repeated Marshal calls over the same map produce
// byte-identical output despite Go's randomized map iteration order.
func mapToDictionary(rv reflect.Value) (*Dictionary, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, newSerializationErrorf("", "dictionary keys must be strings, got %s", rv.Type().Key())
	}

	keys := rv.MapKeys()
	keyStrings := make([]string, len(keys))
	for i, key := range keys {
		keyStrings[i] = key.String()
	}
	sort.Strings(keyStrings)

	dict := NewDictionary()
	for _, keyStr := range keyStrings {
		sfvValue, err := valueToSFV(rv.MapIndex(reflect.ValueOf(keyStr)).Interface())
		if err != nil {
			return nil, wrapSerializationError(keyStr, err)
		}
		member, err := asDictionaryMember(sfvValue)
		if err != nil {
			return nil, wrapSerializationError(keyStr, err)
		}
		if err := dict.Set(keyStr, member); err != nil {
			return nil, wrapSerializationError(keyStr, err)
		}
	}
	return dict, nil
}

// structToDictionary converts a struct to a *Dictionary: each exported
// field becomes an entry keyed by its lowercased name, or by its `sfv` tag
// when present ("-" skips the field).
func structToDictionary(rv reflect.Value) (*Dictionary, error) {
	rt := rv.Type()
	dict := NewDictionary()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		keyName := strings.ToLower(field.Name)
		if tag := field.Tag.Get("sfv"); tag != "" {
			if tag == "-" {
				continue
			}
			keyName = tag
		}

		if _, err := serializeKey(keyName); err != nil {
			return nil, wrapSerializationError(field.Name, err)
		}

		sfvValue, err := valueToSFV(rv.Field(i).Interface())
		if err != nil {
			return nil, wrapSerializationError(field.Name, err)
		}
		member, err := asDictionaryMember(sfvValue)
		if err != nil {
			return nil, wrapSerializationError(field.Name, err)
		}
		if err := dict.Set(keyName, member); err != nil {
			return nil, wrapSerializationError(field.Name, err)
		}
	}
	return dict, nil
}
