package sfv

import (
	"github.com/lestrrat-go/blackmagic"
)

// Type tags the concrete variant of a BareItem, so callers holding a slice
// of BareItem can switch on Type() without a type assertion per case.
type Type int

const (
	InvalidType Type = iota
	IntegerType
	DecimalType
	StringType
	TokenType
	ByteSequenceType
	BooleanType
)

func (t Type) String() string {
	switch t {
	case IntegerType:
		return "integer"
	case DecimalType:
		return "decimal"
	case StringType:
		return "string"
	case TokenType:
		return "token"
	case ByteSequenceType:
		return "byte-sequence"
	case BooleanType:
		return "boolean"
	default:
		return "invalid"
	}
}

// Marshaler is implemented by every value-model type that knows how to
// render itself as Structured Field Value bytes.
type Marshaler interface {
	MarshalSFV() ([]byte, error)
}

// Value is the interface common to every node that can appear as the root
// of a parsed or serialized tree: List, *Dictionary, Item, BareItem.
type Value interface {
	Marshaler
}

// CoreItem is the API shared by both BareItem and Item.
type CoreItem interface {
	Marshaler
	Type() Type

	// GetValue assigns the item's underlying value to dst, which must be a
	// pointer to a compatible type. Use this when the caller doesn't
	// already know the concrete BareItem variant.
	GetValue(dst any) error
}

// BareItem is a single atomic value without parameters: one of Integer,
// Decimal, String, Token, ByteSequence, Boolean. A BareItem can be upgraded
// to a full Item (with Parameters) by calling ToItem.
type BareItem interface {
	CoreItem

	// ToItem upgrades this bare item to a ParameterizedValue with empty
	// Parameters.
	ToItem() Item
}

// Item is a BareItem paired with zero or more Parameters. It is an alias
// for ParameterizedValue restricted to a bare-item inner value; the
// distinction is enforced by construction, not by the type system, since
// InnerList also uses ParameterizedValue as its element type.
type Item = *ParameterizedValue

// ParameterizedValue pairs an inner value (a BareItem, or an *InnerList when
// used as a List/Dictionary member) with a Parameters mapping.
type ParameterizedValue struct {
	inner  any
	params *Parameters
}

// NewItem constructs an Item (a ParameterizedValue whose inner is a
// BareItem) with the given parameters. A nil params is treated as empty.
func NewItem(bare BareItem, params *Parameters) Item {
	if params == nil {
		params = NewParameters()
	}
	return &ParameterizedValue{inner: bare, params: params}
}

// newInnerListValue constructs a ParameterizedValue wrapping an *InnerList,
// for use as a List or Dictionary member.
func newInnerListValue(il *InnerList, params *Parameters) *ParameterizedValue {
	if params == nil {
		params = NewParameters()
	}
	return &ParameterizedValue{inner: il, params: params}
}

// NewInnerListItem wraps il as an Item suitable for appending to a List or
// setting as a Dictionary entry, attaching params to the member slot. These
// are the parameters serialized after the closing ")" of a member; parsing
// "(...);params" also puts them here. They are not il's own Parameters (set
// via InnerListBuilder.Parameter), which are serialized only when il is
// rendered standalone (SerializeAsInnerList, InnerList.MarshalSFV).
func NewInnerListItem(il *InnerList, params *Parameters) Item {
	return newInnerListValue(il, params)
}

// Inner returns the wrapped value: a BareItem, or an *InnerList.
func (pv *ParameterizedValue) Inner() any {
	if pv == nil {
		return nil
	}
	return pv.inner
}

// Parameters returns the Parameters attached to this value. Never nil.
func (pv *ParameterizedValue) Parameters() *Parameters {
	if pv == nil || pv.params == nil {
		return NewParameters()
	}
	return pv.params
}

// With returns a copy of pv with its Parameters replaced.
func (pv *ParameterizedValue) With(params *Parameters) Item {
	if params == nil {
		params = NewParameters()
	}
	return &ParameterizedValue{inner: pv.inner, params: params}
}

// IsInnerList reports whether this value wraps an *InnerList rather than a
// BareItem.
func (pv *ParameterizedValue) IsInnerList() bool {
	_, ok := pv.Inner().(*InnerList)
	return ok
}

// Bare returns the wrapped BareItem and true, or (nil, false) if this value
// wraps an *InnerList instead.
func (pv *ParameterizedValue) Bare() (BareItem, bool) {
	b, ok := pv.Inner().(BareItem)
	return b, ok
}

// InnerListValue returns the wrapped *InnerList and true, or (nil, false) if
// this value wraps a BareItem instead.
func (pv *ParameterizedValue) InnerListValue() (*InnerList, bool) {
	il, ok := pv.Inner().(*InnerList)
	return il, ok
}

// Type returns the Type of the wrapped bare item, or InvalidType if this
// value wraps an *InnerList.
func (pv *ParameterizedValue) Type() Type {
	if b, ok := pv.Bare(); ok {
		return b.Type()
	}
	return InvalidType
}

// GetValue assigns the wrapped bare item's underlying value to dst. It
// fails if this value wraps an *InnerList.
func (pv *ParameterizedValue) GetValue(dst any) error {
	b, ok := pv.Bare()
	if !ok {
		return newSerializationErrorf("", "cannot GetValue an inner list")
	}
	return b.GetValue(dst)
}

// MarshalSFV implements Marshaler for ParameterizedValue by delegating to
// the Serializer, so that the item/inner-list + parameters dispatch logic
// lives in exactly one place (serializer.go).
func (pv *ParameterizedValue) MarshalSFV() ([]byte, error) {
	return serializeParameterizedValue(pv)
}

// uvalue is a small generic box for the scalar payload of a BareItem
// variant. Factoring it out avoids repeating the same Value/setValue/
// GetValue boilerplate in byte_sequence.go, numeric.go, string.go and
// token.go (boolean.go's BooleanBareItem is a plain bool type instead).
type uvalue[T any] struct {
	value T
}

func (u *uvalue[T]) setValue(v T) {
	u.value = v
}

func (u uvalue[T]) Value() T {
	return u.value
}

func (u uvalue[T]) GetValue(dst any) error {
	return blackmagic.AssignIfCompatible(dst, u.value)
}
