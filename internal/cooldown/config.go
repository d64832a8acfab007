package cooldown

import (
	"time"
)

// Config holds item cooldown configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps item ids to their durations.
	// Entries here win over the catalog value.
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown for an item, given the catalog value as fallback
func (c *Config) GetCooldownDuration(itemID string, fallback time.Duration) time.Duration {
	if c == nil {
		return clampNonNegative(fallback)
	}
	if c.DevMode {
		return 0
	}

	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[itemID]; ok {
			return clampNonNegative(duration)
		}
	}

	if fallback > 0 {
		return fallback
	}
	return DefaultCooldownDuration
}

// Advance decrements a remaining cooldown by elapsed time, clamped at zero.
// The second return value reports whether the value changed.
func Advance(remaining, elapsed time.Duration) (time.Duration, bool) {
	if remaining <= 0 || elapsed <= 0 {
		return clampNonNegative(remaining), false
	}
	return clampNonNegative(remaining - elapsed), true
}

func clampNonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
