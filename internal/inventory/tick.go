package inventory

import (
	"context"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/cooldown"
	"github.com/osse101/Dreadlight_Go/internal/event"
)

// Tick advances every running cooldown by dt, clamped at zero, and
// mirrors the timers onto the quickbar
func (c *Component) Tick(ctx context.Context, dt time.Duration) {
	if dt <= 0 {
		return
	}

	for i := range c.slots {
		s := &c.slots[i]
		next, changed := cooldown.Advance(s.Cooldown, dt)
		if !changed {
			continue
		}
		s.Cooldown = next

		var fallback time.Duration
		if it, ok := c.catalog.GetItemData(s.ItemID); ok {
			fallback = it.Cooldown
		}
		c.publish(ctx, event.NewItemCooldownEvent(c.ownerID, s.ItemID, next, c.cooldowns.GetCooldownDuration(s.ItemID, fallback)))
	}

	c.refreshQuickbarTimers()
}

// itemCooldown is the longest timer running on any stack of itemID
func (c *Component) itemCooldown(itemID string) time.Duration {
	var longest time.Duration
	for _, s := range c.slots {
		if s.ItemID == itemID {
			longest = max(longest, s.Cooldown)
		}
	}
	return longest
}
