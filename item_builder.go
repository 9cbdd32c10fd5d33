package sfv

// ItemBuilder provides a fluent way to attach Parameters to a BareItem
// without constructing a Parameters value by hand.
//
//	item, err := sfv.NewItemBuilder(sfv.BareInteger(2)).
//		Parameter("foourl", "https://foo.example.com/").
//		Build()
type ItemBuilder struct {
	item Item
	err  error
}

// NewItemBuilder starts building an Item from a bare value.
func NewItemBuilder(bare BareItem) *ItemBuilder {
	return &ItemBuilder{item: NewItem(bare, NewParameters())}
}

// Parameter sets a parameter, converting value with bareTokenFrom (so a
// bare Go string becomes a Token, matching typical RFC 8941 parameter
// usage; pass a BareItem directly to get String/ByteSequence/etc.
// semantics instead).
func (ib *ItemBuilder) Parameter(key string, value any) *ItemBuilder {
	if ib.err != nil {
		return ib
	}
	bi, err := bareTokenFrom(value)
	if err != nil {
		ib.err = err
		return ib
	}
	if err := ib.item.Parameters().Set(key, bi); err != nil {
		ib.err = err
	}
	return ib
}

// Build returns the constructed Item, or the first error encountered while
// building it.
func (ib *ItemBuilder) Build() (Item, error) {
	if ib.err != nil {
		return nil, ib.err
	}
	return ib.item, nil
}

// MustBuild is like Build but panics on error.
func (ib *ItemBuilder) MustBuild() Item {
	item, err := ib.Build()
	if err != nil {
		panic(err)
	}
	return item
}

// InnerListBuilder provides a fluent way to build an *InnerList.
type InnerListBuilder struct {
	inner *InnerList
	err   error
}

// NewInnerListBuilder starts building an empty InnerList.
func NewInnerListBuilder() *InnerListBuilder {
	return &InnerListBuilder{inner: &InnerList{params: NewParameters()}}
}

// Add appends a bare item (or Item) to the inner list.
func (b *InnerListBuilder) Add(value any) *InnerListBuilder {
	if b.err != nil {
		return b
	}
	switch v := value.(type) {
	case Item:
		b.inner.values = append(b.inner.values, v)
	case BareItem:
		b.inner.values = append(b.inner.values, v.ToItem())
	default:
		bi, err := BareItemFrom(value)
		if err != nil {
			b.err = err
			return b
		}
		b.inner.values = append(b.inner.values, bi.ToItem())
	}
	return b
}

// Parameter sets a parameter on the inner list itself (as opposed to one of
// its members).
func (b *InnerListBuilder) Parameter(key string, value any) *InnerListBuilder {
	if b.err != nil {
		return b
	}
	bi, err := bareTokenFrom(value)
	if err != nil {
		b.err = err
		return b
	}
	if err := b.inner.params.Set(key, bi); err != nil {
		b.err = err
	}
	return b
}

// Build returns the constructed *InnerList, or the first error encountered.
func (b *InnerListBuilder) Build() (*InnerList, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.inner, nil
}

// MustBuild is like Build but panics on error.
func (b *InnerListBuilder) MustBuild() *InnerList {
	inner, err := b.Build()
	if err != nil {
		panic(err)
	}
	return inner
}
