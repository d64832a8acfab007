package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
)

// Observation is the game as seen right after a step
type Observation struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	// Counts holds the per-action numbers: quantity, added, remaining, collected
	Counts map[string]int `json:"counts,omitempty"`

	Slots     []SlotView     `json:"slots"`
	Quickbar  []SlotView     `json:"quickbar"`
	Equipped  EquippedView   `json:"equipped"`
	Held      map[string]int `json:"held"`
	Character *CharacterView `json:"character,omitempty"`
	Pickups   int            `json:"pickups"`
	Violation string         `json:"violation,omitempty"`
}

// SlotView is one inventory or quickbar entry. Empty entries have no ItemID.
type SlotView struct {
	ItemID        string  `json:"item_id,omitempty"`
	Quantity      int     `json:"quantity"`
	RemainingUses int     `json:"remaining_uses,omitempty"`
	Cooldown      float64 `json:"cooldown,omitempty"` // seconds
}

// EquippedView is the equip state
type EquippedView struct {
	ItemID        string `json:"item_id,omitempty"`
	QuickbarIndex int    `json:"quickbar_index"`
}

// CharacterView is the part of the owner a script can check
type CharacterView struct {
	Sanity       float64 `json:"sanity"`
	Battery      float64 `json:"battery"`
	FlashlightOn bool    `json:"flashlight_on"`
	HandItem     string  `json:"hand_item,omitempty"`
}

// Count keys
const (
	CountQuantity  = "quantity"
	CountAdded     = "added"
	CountRemaining = "remaining"
	CountCollected = "collected"
)

func newObservation(snap inventory.Snapshot) *Observation {
	obs := &Observation{
		Counts:   make(map[string]int),
		Slots:    make([]SlotView, len(snap.Slots)),
		Quickbar: make([]SlotView, len(snap.Quickbar)),
		Equipped: EquippedView{ItemID: snap.Equipped.ItemID, QuickbarIndex: snap.Equipped.QuickbarIndex},
		Held:     make(map[string]int),
	}
	for i, s := range snap.Slots {
		obs.Slots[i] = slotView(s)
		obs.Held[s.ItemID] += s.Quantity
	}
	for i, q := range snap.Quickbar {
		obs.Quickbar[i] = slotView(q)
	}
	return obs
}

func slotView(s domain.InventorySlot) SlotView {
	if s.IsEmpty() {
		return SlotView{}
	}
	return SlotView{
		ItemID:        s.ItemID,
		Quantity:      s.Quantity,
		RemainingUses: s.RemainingUses,
		Cooldown:      s.Cooldown.Seconds(),
	}
}

func characterView(st character.State) *CharacterView {
	return &CharacterView{
		Sanity:       st.Sanity,
		Battery:      st.Battery,
		FlashlightOn: st.FlashlightOn,
		HandItem:     st.HandItem,
	}
}

// Field roots
const (
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldSlotCount  = "slot_count"
	FieldPickups    = "pickups"
	FieldInvariants = "invariants"
	FieldSlots      = "slots"
	FieldQuickbar   = "quickbar"
	FieldEquipped   = "equipped"
	FieldItems      = "items"
	FieldCharacter  = "character"
)

// Slot attributes; a bare slot path reads the item id
const (
	AttrItemID        = "item_id"
	AttrQuantity      = "quantity"
	AttrRemainingUses = "remaining_uses"
	AttrCooldown      = "cooldown"
	AttrQuickbarIndex = "quickbar_index"
	AttrSanity        = "sanity"
	AttrBattery       = "battery"
	AttrFlashlightOn  = "flashlight_on"
	AttrHandItem      = "hand_item"
)

// Field is a compiled assertion path such as slots.2.quantity,
// quickbar.1, equipped.quickbar_index, items.battery or character.sanity
type Field struct {
	Root  string
	Index int
	Key   string
}

// ParseField compiles path, rejecting anything an Observation cannot answer
func ParseField(path string) (Field, error) {
	parts := strings.Split(path, ".")
	root, rest := parts[0], parts[1:]
	bad := func(why string) (Field, error) {
		return Field{}, fmt.Errorf("%w: %q %s", ErrUnknownField, path, why)
	}

	switch root {
	case FieldSuccess, FieldError, FieldSlotCount, FieldPickups, FieldInvariants,
		CountQuantity, CountAdded, CountRemaining, CountCollected:
		if len(rest) > 0 {
			return bad("takes no sub-path")
		}
		return Field{Root: root}, nil

	case FieldSlots, FieldQuickbar:
		if len(rest) == 0 || len(rest) > 2 {
			return bad("needs an index and an optional attribute")
		}
		index, err := strconv.Atoi(rest[0])
		if err != nil || index < 0 {
			return bad("needs a non-negative index")
		}
		key := AttrItemID
		if len(rest) == 2 {
			key = rest[1]
		}
		switch key {
		case AttrItemID, AttrQuantity, AttrRemainingUses, AttrCooldown:
			return Field{Root: root, Index: index, Key: key}, nil
		}
		return bad("has an unknown slot attribute")

	case FieldEquipped:
		key := AttrItemID
		if len(rest) == 1 {
			key = rest[0]
		}
		if len(rest) > 1 || (key != AttrItemID && key != AttrQuickbarIndex) {
			return bad("expects item_id or quickbar_index")
		}
		return Field{Root: root, Key: key}, nil

	case FieldItems:
		if len(rest) != 1 || rest[0] == "" {
			return bad("needs an item id")
		}
		return Field{Root: root, Key: rest[0]}, nil

	case FieldCharacter:
		if len(rest) == 1 {
			switch rest[0] {
			case AttrSanity, AttrBattery, AttrFlashlightOn, AttrHandItem:
				return Field{Root: root, Key: rest[0]}, nil
			}
		}
		return bad("expects sanity, battery, flashlight_on or hand_item")
	}
	return bad("is not an observed field")
}

// Lookup reads f. Slot indices past the end read as empty slots. Counts
// the step did not produce and a missing character are not observed.
func (o *Observation) Lookup(f Field) (any, bool) {
	switch f.Root {
	case FieldSuccess:
		return o.Success, true
	case FieldError:
		return o.Error, true
	case FieldSlotCount:
		return len(o.Slots), true
	case FieldPickups:
		return o.Pickups, true
	case FieldInvariants:
		return o.Violation == "", true
	case CountQuantity, CountAdded, CountRemaining, CountCollected:
		n, ok := o.Counts[f.Root]
		return n, ok
	case FieldSlots:
		return slotAttr(o.Slots, f.Index, f.Key), true
	case FieldQuickbar:
		return slotAttr(o.Quickbar, f.Index, f.Key), true
	case FieldEquipped:
		if f.Key == AttrQuickbarIndex {
			return o.Equipped.QuickbarIndex, true
		}
		return o.Equipped.ItemID, true
	case FieldItems:
		return o.Held[f.Key], true
	case FieldCharacter:
		if o.Character == nil {
			return nil, false
		}
		switch f.Key {
		case AttrSanity:
			return o.Character.Sanity, true
		case AttrBattery:
			return o.Character.Battery, true
		case AttrFlashlightOn:
			return o.Character.FlashlightOn, true
		case AttrHandItem:
			return o.Character.HandItem, true
		}
	}
	return nil, false
}

func slotAttr(slots []SlotView, index int, key string) any {
	var s SlotView
	if index < len(slots) {
		s = slots[index]
	}
	switch key {
	case AttrQuantity:
		return s.Quantity
	case AttrRemainingUses:
		return s.RemainingUses
	case AttrCooldown:
		return s.Cooldown
	default:
		return s.ItemID
	}
}
