package inventory

import (
	"context"

	"github.com/osse101/Dreadlight_Go/internal/domain"
)

// EffectApplier applies an item's effect to the owner when it is used.
// A non-nil error aborts the use before anything is consumed.
type EffectApplier interface {
	Apply(ctx context.Context, item domain.Item) error
}

// EquipTarget is the owner's hand socket. AttachItem is consulted
// synchronously; a refusal leaves the inventory unequipped.
type EquipTarget interface {
	AttachItem(ctx context.Context, item domain.Item) error
	DetachItem(ctx context.Context, itemID string)
}

// SoundPlayer is fire-and-forget
type SoundPlayer interface {
	PlaySound(ctx context.Context, cue, itemID string)
}

// PickupSpawner places a dropped item back into the world near the owner
type PickupSpawner interface {
	SpawnPickup(ctx context.Context, itemID string, quantity int)
}

type noopEffects struct{}

func (noopEffects) Apply(context.Context, domain.Item) error { return nil }

type noopEquip struct{}

func (noopEquip) AttachItem(context.Context, domain.Item) error { return nil }
func (noopEquip) DetachItem(context.Context, string)             {}

type noopSound struct{}

func (noopSound) PlaySound(context.Context, string, string) {}

type noopSpawner struct{}

func (noopSpawner) SpawnPickup(context.Context, string, int) {}
