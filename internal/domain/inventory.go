package domain

import "time"

// NoQuickbarIndex marks an EquipState with nothing equipped
const NoQuickbarIndex = -1

// InventorySlot represents a stored stack of a single item id.
// Quickbar entries reuse the type as snapshots of the backing slot.
type InventorySlot struct {
	ItemID        string        `json:"item_id"`
	Quantity      int           `json:"quantity"`
	RemainingUses int           `json:"remaining_uses,omitempty"` // only meaningful for durability items
	Cooldown      time.Duration `json:"cooldown,omitempty"`
}

// IsValid reports whether the slot is occupied
func (s InventorySlot) IsValid() bool {
	return s.ItemID != "" && s.Quantity > 0
}

// IsEmpty is the negation of IsValid
func (s InventorySlot) IsEmpty() bool {
	return !s.IsValid()
}

// EquipState tracks the item currently held in the owner's hand
type EquipState struct {
	ItemID        string `json:"item_id,omitempty"`
	QuickbarIndex int    `json:"quickbar_index"`
}

// NewEquipState returns the unequipped state
func NewEquipState() EquipState {
	return EquipState{QuickbarIndex: NoQuickbarIndex}
}

// IsEquipped reports whether an item is held
func (e EquipState) IsEquipped() bool {
	return e.QuickbarIndex != NoQuickbarIndex && e.ItemID != ""
}
