package inventory

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// PartialAddError reports an AddItem that ran out of space part way.
// The Added units stay in the inventory.
type PartialAddError struct {
	ItemID    string
	Requested int
	Added     int
}

func (e *PartialAddError) Error() string {
	return fmt.Sprintf("%s: added %d of %d %s", domain.ErrMsgInventoryFull, e.Added, e.Requested, e.ItemID)
}

// Unwrap lets errors.Is match domain.ErrInventoryFull
func (e *PartialAddError) Unwrap() error {
	return domain.ErrInventoryFull
}

// Remaining is the number of units that did not fit
func (e *PartialAddError) Remaining() int {
	return e.Requested - e.Added
}

// AddItem stores quantity units of itemID, topping up partial stacks
// before opening new slots. Newly held items are placed on the quickbar.
// When space runs out the placed units are kept and a *PartialAddError
// is returned.
func (c *Component) AddItem(ctx context.Context, itemID string, quantity int) error {
	log := logger.FromContext(ctx)

	if itemID == "" {
		return fmt.Errorf("%w: empty item id", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}
	it, ok := c.catalog.GetItemData(itemID)
	if !ok {
		log.Debug(LogMsgAddRejected, "item_id", itemID, "reason", domain.ErrMsgItemNotFound)
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	added := c.place(it, quantity)
	if added == 0 {
		log.Debug(LogMsgAddRejected, "item_id", itemID, "reason", domain.ErrMsgInventoryFull)
		return &PartialAddError{ItemID: itemID, Requested: quantity}
	}

	c.sound.PlaySound(ctx, SoundCuePickup, itemID)
	c.autoAssign(ctx, it)
	c.commit(ctx)
	c.publishUpdated(ctx)
	c.publish(ctx, event.NewItemAddedEvent(c.ownerID, itemID, added))

	if added < quantity {
		log.Info(LogMsgAddPartial, "item_id", itemID, "requested", quantity, "added", added)
		return &PartialAddError{ItemID: itemID, Requested: quantity, Added: added}
	}
	return nil
}

// place fills existing stacks first, then appends new slots while capacity allows
func (c *Component) place(it domain.Item, quantity int) int {
	limit := it.StackLimit()
	remaining := quantity

	if it.IsStackable() {
		for i := range c.slots {
			if remaining == 0 {
				break
			}
			s := &c.slots[i]
			if s.ItemID != it.ID || s.Quantity >= limit {
				continue
			}
			n := min(limit-s.Quantity, remaining)
			s.Quantity += n
			remaining -= n
		}
	}

	for remaining > 0 && len(c.slots) < c.cfg.MaxSlots {
		n := min(limit, remaining)
		slot := domain.InventorySlot{ItemID: it.ID, Quantity: n}
		if it.HasDurability() {
			slot.RemainingUses = it.MaxUses
		}
		c.slots = append(c.slots, slot)
		remaining -= n
	}

	return quantity - remaining
}

// RemoveItem takes quantity units of itemID, oldest slots first.
// Nothing is removed unless the full quantity is held.
func (c *Component) RemoveItem(ctx context.Context, itemID string, quantity int) error {
	if itemID == "" {
		return fmt.Errorf("%w: empty item id", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}

	held := c.GetItemQuantity(itemID)
	if held < quantity {
		logger.FromContext(ctx).Debug(LogMsgRemoveRejected, "item_id", itemID, "held", held, "requested", quantity)
		return fmt.Errorf("%w: have %d %s, need %d", domain.ErrInsufficientQuantity, held, itemID, quantity)
	}

	// a running cooldown outlives the stack it was started on
	carried := c.itemCooldown(itemID)
	remaining := quantity
	for i := 0; i < len(c.slots) && remaining > 0; {
		s := &c.slots[i]
		if s.ItemID != itemID {
			i++
			continue
		}
		n := min(s.Quantity, remaining)
		s.Quantity -= n
		remaining -= n
		if s.Quantity == 0 {
			c.slots = slices.Delete(c.slots, i, i+1)
			continue
		}
		i++
	}
	if idx, ok := c.findSlot(itemID); ok {
		c.slots[idx].Cooldown = max(c.slots[idx].Cooldown, carried)
	}

	c.commit(ctx)
	c.publishUpdated(ctx)
	c.publish(ctx, event.NewItemRemovedEvent(c.ownerID, itemID, quantity))
	return nil
}

// HasItem reports whether at least quantity units are held.
// A non-positive quantity is treated as 1.
func (c *Component) HasItem(itemID string, quantity int) bool {
	if quantity <= 0 {
		quantity = 1
	}
	return c.GetItemQuantity(itemID) >= quantity
}

// GetItemQuantity sums itemID across all slots
func (c *Component) GetItemQuantity(itemID string) int {
	if itemID == "" {
		return 0
	}
	total := 0
	for _, s := range c.slots {
		if s.ItemID == itemID {
			total += s.Quantity
		}
	}
	return total
}

// IsInventoryFull reports whether every slot is occupied
func (c *Component) IsInventoryFull() bool {
	return len(c.slots) >= c.cfg.MaxSlots
}

// SlotCount returns the number of occupied slots
func (c *Component) SlotCount() int {
	return len(c.slots)
}

// InventorySlot returns a copy of the slot at index
func (c *Component) InventorySlot(index int) (domain.InventorySlot, bool) {
	if !c.validInventoryIndex(index) {
		return domain.InventorySlot{}, false
	}
	return c.slots[index], true
}

// Slots returns a copy of the occupied slots in order
func (c *Component) Slots() []domain.InventorySlot {
	return slices.Clone(c.slots)
}

// SwapInventorySlots exchanges two occupied slots
func (c *Component) SwapInventorySlots(ctx context.Context, a, b int) error {
	if !c.validInventoryIndex(a) {
		return invalidSlot("inventory", a, len(c.slots))
	}
	if !c.validInventoryIndex(b) {
		return invalidSlot("inventory", b, len(c.slots))
	}
	if a == b {
		return nil
	}

	c.slots[a], c.slots[b] = c.slots[b], c.slots[a]
	c.commit(ctx)
	c.publishUpdated(ctx)
	return nil
}

// ClearInventory unequips and empties both stores
func (c *Component) ClearInventory(ctx context.Context) {
	c.UnequipCurrentItem(ctx)
	c.slots = c.slots[:0]
	clear(c.quickbar)
	logger.FromContext(ctx).Debug(LogMsgInventoryCleared, "owner_id", c.ownerID)
	c.publishUpdated(ctx)
}
