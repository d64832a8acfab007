package inventory

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Dreadlight_Go/internal/domain"
)

// ErrInvalidConfig is returned by NewComponent for out-of-range sizes
var ErrInvalidConfig = errors.New("invalid inventory configuration")

// Config sizes the two stores
type Config struct {
	MaxSlots       int `validate:"required,min=1,max=256"`
	QuickbarSize   int `validate:"required,min=1,max=16"`
	FlashlightSlot int `validate:"gte=0,ltfield=QuickbarSize"`
}

// DefaultConfig returns 12 inventory slots and a 4-slot quickbar with slot 0 reserved
func DefaultConfig() Config {
	return Config{
		MaxSlots:       domain.DefaultMaxSlots,
		QuickbarSize:   domain.DefaultQuickbarSize,
		FlashlightSlot: domain.DefaultFlashlightSlot,
	}
}

var configValidator = validator.New()

// Validate checks the sizes against their tags
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
