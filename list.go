package sfv

import "bytes"

// InnerList is an ordered sequence of Items (each a BareItem plus its own
// Parameters), representing the "(member (SP member)*)" production of RFC
// 8941 §3.1.1. When an InnerList is the Inner() of a ParameterizedValue used
// as a List or Dictionary member, the parameters after its ")" are those of
// the enclosing ParameterizedValue, and the InnerList's own Parameters are
// not serialized; SerializeAsInnerList uses the InnerList's own Parameters
// for the standalone top-level case.
type InnerList struct {
	values []Item
	params *Parameters
}

// Len returns the number of members in the inner list.
func (il *InnerList) Len() int {
	if il == nil {
		return 0
	}
	return len(il.values)
}

// Get returns the member at index, or (nil, false) if index is out of
// range.
func (il *InnerList) Get(index int) (Item, bool) {
	if il == nil || index < 0 || index >= len(il.values) {
		return nil, false
	}
	return il.values[index], true
}

// Parameters returns the Parameters attached to this inner list. Never nil.
func (il *InnerList) Parameters() *Parameters {
	if il == nil || il.params == nil {
		return NewParameters()
	}
	return il.params
}

// MarshalSFV implements Marshaler by delegating to SerializeAsInnerList, so
// that this method behaves correctly whether il is used standalone or as an
// InnerListBuilder result; members and parameters are read, never mutated
// or consumed.
func (il *InnerList) MarshalSFV() ([]byte, error) {
	return SerializeAsInnerList(il)
}

// List is an ordered sequence of members, where each member is either an
// Item or an Item wrapping an *InnerList, per RFC 8941 §3.1.
type List []Item

// Len returns the number of members in the list.
func (l List) Len() int {
	return len(l)
}

// Get returns the member at index, or (nil, false) if index is out of
// range.
func (l List) Get(index int) (Item, bool) {
	if index < 0 || index >= len(l) {
		return nil, false
	}
	return l[index], true
}

// MarshalSFV implements Marshaler, per RFC 8941 §4.1.1. Members are
// separated by ", " (comma, single space). Serialization only reads l; it
// never mutates or drains the underlying slice, unlike the teacher
// repository's valueToSFV-based approach which reassigned through a
// reflective path that risked consuming its source on repeated calls.
func (l List) MarshalSFV() ([]byte, error) {
	if l.Len() == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	for i := 0; i < l.Len(); i++ {
		member, ok := l.Get(i)
		if !ok {
			continue
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		b, err := serializeParameterizedValue(member)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}
