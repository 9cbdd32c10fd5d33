package sfv

import "github.com/lestrrat-go/blackmagic"

// BooleanBareItem is a bare item representing ?0 or ?1.
type BooleanBareItem bool

var _ BareItem = BooleanBareItem(false)

// True returns the BooleanBareItem representing true.
func True() BooleanBareItem { return BooleanBareItem(true) }

// False returns the BooleanBareItem representing false.
func False() BooleanBareItem { return BooleanBareItem(false) }

// BareBoolean constructs a BooleanBareItem from a bool.
func BareBoolean(b bool) BooleanBareItem {
	return BooleanBareItem(b)
}

// Boolean constructs an Item wrapping a BooleanBareItem with empty
// parameters.
func Boolean(b bool) Item {
	return BareBoolean(b).ToItem()
}

// ToItem implements BareItem.
func (b BooleanBareItem) ToItem() Item {
	return NewItem(b, nil)
}

// Type implements CoreItem.
func (b BooleanBareItem) Type() Type {
	return BooleanType
}

// GetValue implements CoreItem.
func (b BooleanBareItem) GetValue(dst any) error {
	return blackmagic.AssignIfCompatible(dst, bool(b))
}

var (
	trueBytes  = []byte("?1")
	falseBytes = []byte("?0")
)

// MarshalSFV implements Marshaler.
func (b BooleanBareItem) MarshalSFV() ([]byte, error) {
	if b {
		return trueBytes, nil
	}
	return falseBytes, nil
}
