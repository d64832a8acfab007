package inventory

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// quickbarRef builds a quickbar entry pointing at a backing slot
func (c *Component) quickbarRef(s domain.InventorySlot) domain.InventorySlot {
	return domain.InventorySlot{
		ItemID:        s.ItemID,
		Quantity:      1,
		RemainingUses: s.RemainingUses,
		Cooldown:      c.itemCooldown(s.ItemID),
	}
}

// AssignToQuickbar points quickbar slot index at a held item.
// Overwriting the equipped slot with a different item unequips it.
func (c *Component) AssignToQuickbar(ctx context.Context, itemID string, index int) error {
	if err := c.assign(ctx, itemID, index); err != nil {
		return err
	}
	c.publishUpdated(ctx)
	return nil
}

func (c *Component) assign(ctx context.Context, itemID string, index int) error {
	if !c.validQuickbarIndex(index) {
		return invalidSlot("quickbar", index, len(c.quickbar))
	}
	if itemID == "" {
		return fmt.Errorf("%w: empty item id", domain.ErrInvalidInput)
	}
	backing, ok := c.findSlot(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotHeld, itemID)
	}

	if c.equipState.QuickbarIndex == index && c.equipState.ItemID != itemID {
		c.UnequipCurrentItem(ctx)
	}
	c.quickbar[index] = c.quickbarRef(c.slots[backing])
	return nil
}

// autoAssign places a newly held item on the quickbar. Flashlights only
// go to the reserved slot; everything else takes the first free
// unreserved slot.
func (c *Component) autoAssign(ctx context.Context, it domain.Item) {
	if c.quickbarIndexOf(it.ID) >= 0 {
		return
	}

	reserved := c.cfg.FlashlightSlot
	if it.IsFlashlight() {
		if c.quickbar[reserved].ItemID == "" {
			_ = c.assign(ctx, it.ID, reserved)
		}
		return
	}

	for i, q := range c.quickbar {
		if i == reserved || q.ItemID != "" {
			continue
		}
		_ = c.assign(ctx, it.ID, i)
		return
	}
}

// SyncQuickbarSlot refreshes a quickbar entry from its backing slot,
// clearing it (and unequipping) when the item is no longer held.
// Out-of-range indices are ignored.
func (c *Component) SyncQuickbarSlot(ctx context.Context, index int) {
	if !c.validQuickbarIndex(index) {
		return
	}
	q := c.quickbar[index]
	if q.ItemID == "" {
		c.quickbar[index] = domain.InventorySlot{}
		return
	}

	backing, ok := c.findSlot(q.ItemID)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgQuickbarCleared, "index", index, "item_id", q.ItemID)
		c.quickbar[index] = domain.InventorySlot{}
		if c.equipState.QuickbarIndex == index {
			c.UnequipCurrentItem(ctx)
		}
		return
	}

	b := c.slots[backing]
	c.quickbar[index] = domain.InventorySlot{
		ItemID:        q.ItemID,
		Quantity:      b.Quantity,
		RemainingUses: b.RemainingUses,
		Cooldown:      c.itemCooldown(q.ItemID),
	}
}

// SyncAllQuickbarSlots runs SyncQuickbarSlot over the whole quickbar
func (c *Component) SyncAllQuickbarSlots(ctx context.Context) {
	for i := range c.quickbar {
		c.SyncQuickbarSlot(ctx, i)
	}
}

// refreshQuickbarTimers copies cooldown and durability from backing
// slots without touching identity
func (c *Component) refreshQuickbarTimers() {
	for i, q := range c.quickbar {
		if q.ItemID == "" {
			continue
		}
		if backing, ok := c.findSlot(q.ItemID); ok {
			c.quickbar[i].Cooldown = c.itemCooldown(q.ItemID)
			c.quickbar[i].RemainingUses = c.slots[backing].RemainingUses
		}
	}
}

// GetQuickbarSlot returns the entry at index with Quantity set to the
// total held. Stale entries read as empty.
func (c *Component) GetQuickbarSlot(index int) (domain.InventorySlot, bool) {
	if !c.validQuickbarIndex(index) {
		return domain.InventorySlot{}, false
	}
	q := c.quickbar[index]
	if q.ItemID == "" {
		return domain.InventorySlot{}, false
	}
	total := c.GetItemQuantity(q.ItemID)
	if total <= 0 {
		return domain.InventorySlot{}, false
	}
	q.Quantity = total
	return q, true
}

// RemoveFromQuickbar clears a quickbar entry, unequipping it if held
func (c *Component) RemoveFromQuickbar(ctx context.Context, index int) error {
	if !c.validQuickbarIndex(index) {
		return invalidSlot("quickbar", index, len(c.quickbar))
	}
	if c.equipState.QuickbarIndex == index {
		c.UnequipCurrentItem(ctx)
	}
	c.quickbar[index] = domain.InventorySlot{}
	c.publishUpdated(ctx)
	return nil
}

// SwapQuickbarSlots exchanges two quickbar entries. The equip index
// follows the equipped item.
func (c *Component) SwapQuickbarSlots(ctx context.Context, a, b int) error {
	if !c.validQuickbarIndex(a) {
		return invalidSlot("quickbar", a, len(c.quickbar))
	}
	if !c.validQuickbarIndex(b) {
		return invalidSlot("quickbar", b, len(c.quickbar))
	}
	if a == b {
		return nil
	}

	c.quickbar[a], c.quickbar[b] = c.quickbar[b], c.quickbar[a]
	switch c.equipState.QuickbarIndex {
	case a:
		c.equipState.QuickbarIndex = b
	case b:
		c.equipState.QuickbarIndex = a
	}
	c.publishUpdated(ctx)
	return nil
}

// moveQuickbarRef drops any other quickbar entry for itemID so the
// reference can live at target. An equipped entry moves with it.
func (c *Component) moveQuickbarRef(itemID string, target int) {
	for i, q := range c.quickbar {
		if i == target || q.ItemID != itemID {
			continue
		}
		c.quickbar[i] = domain.InventorySlot{}
		if c.equipState.QuickbarIndex == i {
			c.equipState.QuickbarIndex = target
		}
	}
}

// MoveInventoryToQuickbar places the item in inventory slot invIndex on
// quickbar slot qbIndex. When qbIndex already references a different
// item, the two items trade inventory positions.
func (c *Component) MoveInventoryToQuickbar(ctx context.Context, invIndex, qbIndex int) error {
	if !c.validInventoryIndex(invIndex) {
		return invalidSlot("inventory", invIndex, len(c.slots))
	}
	if !c.validQuickbarIndex(qbIndex) {
		return invalidSlot("quickbar", qbIndex, len(c.quickbar))
	}
	src := c.slots[invIndex]
	if !src.IsValid() {
		return fmt.Errorf("%w: inventory slot %d", domain.ErrSlotEmpty, invIndex)
	}

	target := c.quickbar[qbIndex]
	switch {
	case target.ItemID == src.ItemID:
		// already referenced here, commit refreshes it
	case target.ItemID == "":
		c.moveQuickbarRef(src.ItemID, qbIndex)
		c.quickbar[qbIndex] = c.quickbarRef(src)
	default:
		if c.equipState.QuickbarIndex == qbIndex {
			c.UnequipCurrentItem(ctx)
		}
		if other, ok := c.findSlot(target.ItemID); ok && other != invIndex {
			c.slots[invIndex], c.slots[other] = c.slots[other], c.slots[invIndex]
		}
		c.moveQuickbarRef(src.ItemID, qbIndex)
		c.quickbar[qbIndex] = c.quickbarRef(src)
	}

	c.commit(ctx)
	c.publishUpdated(ctx)
	return nil
}

// MoveQuickbarToInventory moves the item referenced by quickbar slot
// qbIndex into inventory position invIndex. An empty position (including
// any index at or past SlotCount) takes the item off the quickbar; an
// occupied one trades places and the quickbar slot follows the item that
// was there.
func (c *Component) MoveQuickbarToInventory(ctx context.Context, qbIndex, invIndex int) error {
	if !c.validQuickbarIndex(qbIndex) {
		return invalidSlot("quickbar", qbIndex, len(c.quickbar))
	}
	if invIndex < 0 || invIndex >= c.cfg.MaxSlots {
		return invalidSlot("inventory", invIndex, c.cfg.MaxSlots)
	}

	c.SyncQuickbarSlot(ctx, qbIndex)
	q := c.quickbar[qbIndex]
	if q.ItemID == "" {
		return fmt.Errorf("%w: quickbar slot %d", domain.ErrSlotEmpty, qbIndex)
	}
	src, ok := c.findSlot(q.ItemID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotHeld, q.ItemID)
	}

	switch {
	case invIndex >= len(c.slots) || !c.slots[invIndex].IsValid():
		if c.equipState.QuickbarIndex == qbIndex {
			c.UnequipCurrentItem(ctx)
		}
		c.quickbar[qbIndex] = domain.InventorySlot{}
		moved := c.slots[src]
		c.slots = append(slices.Delete(c.slots, src, src+1), moved)
	case c.slots[invIndex].ItemID == q.ItemID:
		// same item, nothing to move
	default:
		displaced := c.slots[invIndex]
		if c.equipState.QuickbarIndex == qbIndex {
			c.UnequipCurrentItem(ctx)
		}
		c.slots[invIndex], c.slots[src] = c.slots[src], c.slots[invIndex]
		c.moveQuickbarRef(displaced.ItemID, qbIndex)
		c.quickbar[qbIndex] = c.quickbarRef(displaced)
	}

	c.commit(ctx)
	c.publishUpdated(ctx)
	return nil
}
