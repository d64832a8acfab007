package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// EquipState returns the current equip state
func (c *Component) EquipState() domain.EquipState {
	return c.equipState
}

// EquippedItem returns catalog data for the held item
func (c *Component) EquippedItem() (domain.Item, bool) {
	if !c.equipState.IsEquipped() {
		return domain.Item{}, false
	}
	return c.catalog.GetItemData(c.equipState.ItemID)
}

// EquipQuickbarSlot toggles the item on quickbar slot index into the
// owner's hand. Equipping the slot that is already equipped unequips it.
func (c *Component) EquipQuickbarSlot(ctx context.Context, index int) error {
	if !c.validQuickbarIndex(index) {
		return invalidSlot("quickbar", index, len(c.quickbar))
	}

	referenced := c.quickbar[index].ItemID
	c.SyncQuickbarSlot(ctx, index)
	q := c.quickbar[index]
	if q.ItemID == "" {
		if referenced != "" {
			return fmt.Errorf("%w: %s", domain.ErrItemNotHeld, referenced)
		}
		return fmt.Errorf("%w: quickbar slot %d", domain.ErrSlotEmpty, index)
	}

	if c.equipState.QuickbarIndex == index {
		c.UnequipCurrentItem(ctx)
		return nil
	}
	c.UnequipCurrentItem(ctx)

	it, ok := c.catalog.GetItemData(q.ItemID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, q.ItemID)
	}
	if err := c.equip.AttachItem(ctx, it); err != nil {
		logger.FromContext(ctx).Warn(LogMsgAttachFailed, "item_id", it.ID, "error", err)
		return fmt.Errorf("%w: %s: %w", domain.ErrAttachFailed, it.ID, err)
	}

	c.equipState = domain.EquipState{ItemID: it.ID, QuickbarIndex: index}
	c.publish(ctx, event.NewItemEquippedEvent(c.ownerID, it.ID, index))
	return nil
}

// UnequipCurrentItem detaches the held item. It is a no-op when nothing
// is equipped.
func (c *Component) UnequipCurrentItem(ctx context.Context) {
	if !c.equipState.IsEquipped() {
		c.equipState = domain.NewEquipState()
		return
	}
	prev := c.equipState.ItemID
	c.equipState = domain.NewEquipState()
	c.equip.DetachItem(ctx, prev)
	c.publish(ctx, event.NewItemUnequippedEvent(c.ownerID, prev))
}

// UseEquippedItem uses the held item. A consumable, or a durability
// item whose last use was spent, is unequipped and loses one unit.
func (c *Component) UseEquippedItem(ctx context.Context) error {
	if !c.equipState.IsEquipped() {
		return domain.ErrNothingEquipped
	}
	itemID := c.equipState.ItemID
	if c.GetItemQuantity(itemID) <= 0 {
		c.UnequipCurrentItem(ctx)
		c.publish(ctx, event.NewItemUsedEvent(c.ownerID, itemID, false))
		return fmt.Errorf("%w: %s", domain.ErrItemNotHeld, itemID)
	}
	return c.use(ctx, itemID, true)
}

// DropEquippedItem unequips the held item, removes one unit and asks the
// world to spawn it as a pickup
func (c *Component) DropEquippedItem(ctx context.Context) error {
	if !c.equipState.IsEquipped() {
		return domain.ErrNothingEquipped
	}
	itemID := c.equipState.ItemID

	c.UnequipCurrentItem(ctx)
	if err := c.RemoveItem(ctx, itemID, 1); err != nil {
		return err
	}
	c.sound.PlaySound(ctx, SoundCueDrop, itemID)
	c.spawner.SpawnPickup(ctx, itemID, 1)
	return nil
}
