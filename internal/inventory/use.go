package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/Dreadlight_Go/internal/cooldown"
	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// UseItem applies the effect of the first slot holding itemID, starts
// its cooldown and spends a use or a unit as the item dictates
func (c *Component) UseItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("%w: empty item id", domain.ErrInvalidInput)
	}
	return c.use(ctx, itemID, false)
}

func (c *Component) use(ctx context.Context, itemID string, equipped bool) error {
	log := logger.FromContext(ctx)

	it, ok := c.catalog.GetItemData(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	idx, ok := c.findSlot(itemID)
	if !ok {
		log.Debug(LogMsgUseRejected, "item_id", itemID, "reason", domain.ErrMsgItemNotHeld)
		c.publish(ctx, event.NewItemUsedEvent(c.ownerID, itemID, false))
		return fmt.Errorf("%w: %s", domain.ErrItemNotHeld, itemID)
	}
	if remaining := c.itemCooldown(itemID); remaining > 0 {
		log.Debug(LogMsgUseRejected, "item_id", itemID, "reason", domain.ErrMsgOnCooldown, "remaining", remaining)
		c.publish(ctx, event.NewItemUsedEvent(c.ownerID, itemID, false))
		return cooldown.ErrOnCooldown{Action: itemID, Remaining: remaining}
	}

	if err := c.effects.Apply(ctx, it); err != nil {
		log.Warn(LogMsgEffectFailed, "item_id", itemID, "error", err)
		c.publish(ctx, event.NewItemUsedEvent(c.ownerID, itemID, false))
		return fmt.Errorf("apply %s: %w", itemID, err)
	}

	slot := &c.slots[idx]
	maxCooldown := c.cooldowns.GetCooldownDuration(itemID, it.Cooldown)
	if maxCooldown > 0 {
		slot.Cooldown = maxCooldown
		c.publish(ctx, event.NewItemCooldownEvent(c.ownerID, itemID, maxCooldown, maxCooldown))
	} else if it.Cooldown > 0 && c.cooldowns != nil && c.cooldowns.DevMode {
		log.Debug(LogMsgCooldownBypass, "item_id", itemID)
	}

	depleted := it.Consumable
	if it.HasDurability() {
		slot.RemainingUses--
		depleted = slot.RemainingUses <= 0
	}

	c.sound.PlaySound(ctx, SoundCueUse, itemID)
	if depleted {
		if equipped {
			c.UnequipCurrentItem(ctx)
		}
		if it.HasDurability() && slot.Quantity > 1 {
			slot.RemainingUses = it.MaxUses
		}
		// the unit is held, so removal cannot fail
		_ = c.RemoveItem(ctx, itemID, 1)
	} else {
		c.commit(ctx)
		c.publishUpdated(ctx)
	}

	c.publish(ctx, event.NewItemUsedEvent(c.ownerID, itemID, true))
	return nil
}
