package effect

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// ErrUnknownEffect is returned when no handler claims an effect kind
var ErrUnknownEffect = errors.New("no handler for effect")

// Target is the actor an effect lands on
type Target interface {
	RestoreSanity(ctx context.Context, amount float64)
	RechargeBattery(ctx context.Context, amount float64) error
	UseKey(ctx context.Context, keyID string) error
}

// Handler defines the interface for applying one kind of item effect
type Handler interface {
	// CanHandle returns true if this handler can process the given effect kind
	CanHandle(kind domain.EffectKind) bool

	// Handle applies the item's effect to target
	Handle(ctx context.Context, target Target, item domain.Item) error
}

// Registry dispatches item effects to their handlers
type Registry struct {
	target   Target
	handlers []Handler
}

// NewRegistry creates a registry bound to target with the default handlers
// followed by any extras
func NewRegistry(target Target, extra ...Handler) *Registry {
	handlers := []Handler{
		&NoneHandler{},
		&SanityHandler{},
		&BatteryHandler{},
		&UnlockHandler{},
	}
	return &Registry{
		target:   target,
		handlers: append(handlers, extra...),
	}
}

// GetHandler finds the appropriate handler for the given effect kind
func (r *Registry) GetHandler(kind domain.EffectKind) Handler {
	for _, handler := range r.handlers {
		if handler.CanHandle(kind) {
			return handler
		}
	}
	return nil
}

// Apply runs the item's effect against the bound target
func (r *Registry) Apply(ctx context.Context, item domain.Item) error {
	kind := item.Effect.Kind
	if kind == "" {
		kind = domain.EffectNone
	}

	handler := r.GetHandler(kind)
	if handler == nil {
		return fmt.Errorf("%w: %s (item %s)", ErrUnknownEffect, kind, item.ID)
	}
	if err := handler.Handle(ctx, r.target, item); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgEffectApplied, "item_id", item.ID, "effect", kind, "amount", item.Effect.Amount)
	return nil
}

// NoneHandler handles items whose use has no side effect
type NoneHandler struct{}

// CanHandle returns true for the none kind
func (h *NoneHandler) CanHandle(kind domain.EffectKind) bool {
	return kind == domain.EffectNone
}

// Handle does nothing
func (h *NoneHandler) Handle(context.Context, Target, domain.Item) error {
	return nil
}

// SanityHandler restores sanity by the effect amount
type SanityHandler struct{}

// CanHandle returns true for restore_sanity
func (h *SanityHandler) CanHandle(kind domain.EffectKind) bool {
	return kind == domain.EffectRestoreSanity
}

// Handle restores sanity
func (h *SanityHandler) Handle(ctx context.Context, target Target, item domain.Item) error {
	target.RestoreSanity(ctx, item.Effect.Amount)
	return nil
}

// BatteryHandler recharges the owner's flashlight
type BatteryHandler struct{}

// CanHandle returns true for recharge_battery
func (h *BatteryHandler) CanHandle(kind domain.EffectKind) bool {
	return kind == domain.EffectRechargeBattery
}

// Handle recharges the battery; a refusal fails the use
func (h *BatteryHandler) Handle(ctx context.Context, target Target, item domain.Item) error {
	return target.RechargeBattery(ctx, item.Effect.Amount)
}

// UnlockHandler uses a key item
type UnlockHandler struct{}

// CanHandle returns true for unlock
func (h *UnlockHandler) CanHandle(kind domain.EffectKind) bool {
	return kind == domain.EffectUnlock
}

// Handle hands the key id to the target
func (h *UnlockHandler) Handle(ctx context.Context, target Target, item domain.Item) error {
	return target.UseKey(ctx, item.ID)
}
