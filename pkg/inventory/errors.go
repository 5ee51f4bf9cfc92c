package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when the item id is not in the inventory
	ErrItemNotFound = errors.New("item not found in inventory")

	// ErrNotEquippable is returned when the item's category has no slot
	ErrNotEquippable = errors.New("item is not equippable")
)

// ShortfallError reports the first missing crafting material
type ShortfallError struct {
	DefID    string
	Required int
	Have     int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("missing materials: need %d of %s, have %d", e.Required, e.DefID, e.Have)
}
