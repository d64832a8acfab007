package domain

import "time"

// ItemCategory groups items for quickbar placement and equip behaviour
type ItemCategory string

const (
	CategoryFlashlight ItemCategory = "flashlight"
	CategoryTool       ItemCategory = "tool"
	CategoryKey        ItemCategory = "key"
	CategoryConsumable ItemCategory = "consumable"
	CategoryMisc       ItemCategory = "misc"
)

// EffectKind identifies what happens when an item is used
type EffectKind string

const (
	EffectNone            EffectKind = "none"
	EffectRestoreSanity   EffectKind = "restore_sanity"
	EffectRechargeBattery EffectKind = "recharge_battery"
	EffectUnlock          EffectKind = "unlock"
)

// Effect is the payload applied to the owner when an item is used
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Amount float64    `json:"amount,omitempty"`
}

// Item is the read-only catalog metadata for an item id.
// The inventory looks it up by ID and never mutates it.
type Item struct {
	ID          string        `json:"item_id"`
	PublicName  string        `json:"public_name"`
	DisplayName string        `json:"display_name"`
	Description string        `json:"description"`
	Category    ItemCategory  `json:"category"`
	MaxStack    int           `json:"max_stack"`
	MaxUses     int           `json:"max_uses,omitempty"` // 0 means no durability tracking
	Consumable  bool          `json:"consumable"`
	Cooldown    time.Duration `json:"cooldown"`
	Effect      Effect        `json:"effect"`
	Tags        []string      `json:"tags,omitempty"`
}

// StackLimit returns the maximum quantity a single slot may hold.
// A non-positive MaxStack is treated as unstackable.
func (i Item) StackLimit() int {
	if i.MaxStack <= 0 {
		return 1
	}
	return i.MaxStack
}

// IsStackable reports whether more than one unit fits in a slot
func (i Item) IsStackable() bool {
	return i.StackLimit() > 1
}

// HasDurability reports whether the item tracks remaining uses
func (i Item) HasDurability() bool {
	return i.MaxUses > 0
}

// IsFlashlight reports whether the item belongs on the reserved quickbar slot
func (i Item) IsFlashlight() bool {
	return i.Category == CategoryFlashlight
}
