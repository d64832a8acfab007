package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/Dreadlight_Go/internal/cooldown"
	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/item"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

var (
	// ErrNilCatalog is returned by NewComponent without an item catalog
	ErrNilCatalog = errors.New("inventory requires an item catalog")

	// ErrInvariantViolated wraps every failure reported by CheckInvariants
	ErrInvariantViolated = errors.New("inventory invariant violated")
)

// Deps are the collaborators of a Component. Only Catalog is required.
type Deps struct {
	OwnerID   string
	Catalog   item.Catalog
	Bus       event.Bus
	Effects   EffectApplier
	Equip     EquipTarget
	Sound     SoundPlayer
	Spawner   PickupSpawner
	Cooldowns *cooldown.Config
}

// Component owns one character's inventory, quickbar and equip state.
// It is not safe for concurrent use; callers serialize access.
type Component struct {
	cfg     Config
	ownerID string

	catalog   item.Catalog
	bus       event.Bus
	effects   EffectApplier
	equip     EquipTarget
	sound     SoundPlayer
	spawner   PickupSpawner
	cooldowns *cooldown.Config

	slots      []domain.InventorySlot
	quickbar   []domain.InventorySlot
	equipState domain.EquipState
}

// NewComponent creates an empty inventory
func NewComponent(cfg Config, deps Deps) (*Component, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Catalog == nil {
		return nil, ErrNilCatalog
	}

	c := &Component{
		cfg:        cfg,
		ownerID:    deps.OwnerID,
		catalog:    deps.Catalog,
		bus:        deps.Bus,
		effects:    deps.Effects,
		equip:      deps.Equip,
		sound:      deps.Sound,
		spawner:    deps.Spawner,
		cooldowns:  deps.Cooldowns,
		slots:      make([]domain.InventorySlot, 0, cfg.MaxSlots),
		quickbar:   make([]domain.InventorySlot, cfg.QuickbarSize),
		equipState: domain.NewEquipState(),
	}
	if c.ownerID == "" {
		c.ownerID = uuid.NewString()
	}
	if c.bus == nil {
		c.bus = event.NewMemoryBus()
	}
	if c.effects == nil {
		c.effects = noopEffects{}
	}
	if c.equip == nil {
		c.equip = noopEquip{}
	}
	if c.sound == nil {
		c.sound = noopSound{}
	}
	if c.spawner == nil {
		c.spawner = noopSpawner{}
	}

	logger.Debug(LogMsgComponentCreated,
		"owner_id", c.ownerID,
		"max_slots", cfg.MaxSlots,
		"quickbar_size", cfg.QuickbarSize)
	return c, nil
}

// OwnerID identifies the owner in published events
func (c *Component) OwnerID() string { return c.ownerID }

// MaxSlots returns the inventory capacity
func (c *Component) MaxSlots() int { return c.cfg.MaxSlots }

// QuickbarSize returns the number of quickbar slots
func (c *Component) QuickbarSize() int { return c.cfg.QuickbarSize }

// FlashlightSlot returns the quickbar index reserved for flashlights
func (c *Component) FlashlightSlot() int { return c.cfg.FlashlightSlot }

// Bus returns the bus the component publishes on
func (c *Component) Bus() event.Bus { return c.bus }

// commit restores the quickbar and equip invariants after a mutation
func (c *Component) commit(ctx context.Context) {
	c.SyncAllQuickbarSlots(ctx)
}

func (c *Component) publish(ctx context.Context, evt event.Event) {
	if err := c.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(event.LogMsgPublishFailed,
			"type", evt.Type,
			"owner_id", c.ownerID,
			"error", err)
	}
}

func (c *Component) publishUpdated(ctx context.Context) {
	c.publish(ctx, event.NewInventoryUpdatedEvent(c.ownerID))
}

func (c *Component) validInventoryIndex(index int) bool {
	return index >= 0 && index < len(c.slots)
}

func (c *Component) validQuickbarIndex(index int) bool {
	return index >= 0 && index < len(c.quickbar)
}

// findSlot returns the first inventory slot holding itemID
func (c *Component) findSlot(itemID string) (int, bool) {
	for i, s := range c.slots {
		if s.ItemID == itemID && s.Quantity > 0 {
			return i, true
		}
	}
	return -1, false
}

// quickbarIndexOf returns the first quickbar index referencing itemID, or -1
func (c *Component) quickbarIndexOf(itemID string) int {
	for i, q := range c.quickbar {
		if q.ItemID == itemID {
			return i
		}
	}
	return -1
}

func invalidSlot(kind string, index, size int) error {
	return fmt.Errorf("%w: %s index %d (size %d)", domain.ErrInvalidSlot, kind, index, size)
}

// Snapshot is a copy of the component state
type Snapshot struct {
	OwnerID  string                 `json:"owner_id"`
	MaxSlots int                    `json:"max_slots"`
	Slots    []domain.InventorySlot `json:"slots"`
	Quickbar []domain.InventorySlot `json:"quickbar"`
	Equipped domain.EquipState      `json:"equipped"`
}

// Snapshot returns the slots, the live quickbar view and the equip state
func (c *Component) Snapshot() Snapshot {
	qb := make([]domain.InventorySlot, len(c.quickbar))
	for i := range c.quickbar {
		if s, ok := c.GetQuickbarSlot(i); ok {
			qb[i] = s
		}
	}
	return Snapshot{
		OwnerID:  c.ownerID,
		MaxSlots: c.cfg.MaxSlots,
		Slots:    c.Slots(),
		Quickbar: qb,
		Equipped: c.equipState,
	}
}

// CheckInvariants reports every broken structural invariant
func (c *Component) CheckInvariants() error {
	var errs []error

	if len(c.slots) > c.cfg.MaxSlots {
		errs = append(errs, fmt.Errorf("%w: %d slots exceed capacity %d", ErrInvariantViolated, len(c.slots), c.cfg.MaxSlots))
	}
	for i, s := range c.slots {
		if !s.IsValid() {
			errs = append(errs, fmt.Errorf("%w: inventory slot %d is empty", ErrInvariantViolated, i))
			continue
		}
		if it, ok := c.catalog.GetItemData(s.ItemID); ok && s.Quantity > it.StackLimit() {
			errs = append(errs, fmt.Errorf("%w: slot %d holds %d %s, limit %d", ErrInvariantViolated, i, s.Quantity, s.ItemID, it.StackLimit()))
		}
	}
	for i, q := range c.quickbar {
		if q.ItemID != "" && c.GetItemQuantity(q.ItemID) <= 0 {
			errs = append(errs, fmt.Errorf("%w: quickbar slot %d references missing %s", ErrInvariantViolated, i, q.ItemID))
		}
	}
	if c.equipState.QuickbarIndex != domain.NoQuickbarIndex {
		idx := c.equipState.QuickbarIndex
		switch {
		case !c.validQuickbarIndex(idx):
			errs = append(errs, fmt.Errorf("%w: equip index %d out of range", ErrInvariantViolated, idx))
		case c.quickbar[idx].ItemID != c.equipState.ItemID:
			errs = append(errs, fmt.Errorf("%w: equipped %s but quickbar slot %d holds %q", ErrInvariantViolated, c.equipState.ItemID, idx, c.quickbar[idx].ItemID))
		}
	}

	return errors.Join(errs...)
}
