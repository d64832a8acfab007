package world

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// ErrPickupNotFound is returned for unknown or already collected pickups
var ErrPickupNotFound = errors.New("pickup not found")

// Log messages
const (
	LogMsgPickupSpawned   = "Pickup spawned"
	LogMsgPickupCollected = "Pickup collected"
	LogMsgPickupPartial   = "Pickup partially collected"
)

// Adder is the part of an inventory a pickup needs
type Adder interface {
	AddItem(ctx context.Context, itemID string, quantity int) error
}

// Pickup is an item lying in the world
type Pickup struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	DroppedBy string `json:"dropped_by,omitempty"`
}

// Interact moves the pickup's contents into inv. Whatever does not fit
// stays on the pickup.
func (p *Pickup) Interact(ctx context.Context, inv Adder) (int, error) {
	if p.Quantity <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrPickupNotFound, p.ID)
	}

	taken := p.Quantity
	if err := inv.AddItem(ctx, p.ItemID, p.Quantity); err != nil {
		var partial *inventory.PartialAddError
		if !errors.As(err, &partial) {
			return 0, err
		}
		taken = partial.Added
	}
	p.Quantity -= taken
	return taken, nil
}

// World holds the pickups lying around
type World struct {
	mu      sync.RWMutex
	pickups map[string]*Pickup
	order   []string
}

// New creates an empty world
func New() *World {
	return &World{pickups: make(map[string]*Pickup)}
}

// Place drops a new pickup into the world
func (w *World) Place(ctx context.Context, itemID string, quantity int, droppedBy string) (Pickup, error) {
	if itemID == "" {
		return Pickup{}, fmt.Errorf("%w: empty item id", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return Pickup{}, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}

	p := &Pickup{ID: uuid.NewString(), ItemID: itemID, Quantity: quantity, DroppedBy: droppedBy}

	w.mu.Lock()
	w.pickups[p.ID] = p
	w.order = append(w.order, p.ID)
	w.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgPickupSpawned, "pickup_id", p.ID, "item_id", itemID, "quantity", quantity)
	return *p, nil
}

// Pickups returns copies of every pickup in placement order
func (w *World) Pickups() []Pickup {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]Pickup, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, *w.pickups[id])
	}
	return out
}

// Interact collects pickupID into inv and removes the pickup once empty.
// The pickup is out of the world while inv runs.
func (w *World) Interact(ctx context.Context, pickupID string, inv Adder) (int, error) {
	p, pos, ok := w.claim(pickupID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPickupNotFound, pickupID)
	}

	taken, err := p.Interact(ctx, inv)
	if err != nil {
		w.restore(p, pos)
		return 0, err
	}

	log := logger.FromContext(ctx)
	if p.Quantity > 0 {
		w.restore(p, pos)
		log.Debug(LogMsgPickupPartial, "pickup_id", p.ID, "taken", taken, "left", p.Quantity)
		return taken, nil
	}

	log.Debug(LogMsgPickupCollected, "pickup_id", p.ID, "item_id", p.ItemID, "taken", taken)
	return taken, nil
}

// claim takes a pickup out of the world, returning its placement position
func (w *World) claim(pickupID string) (*Pickup, int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.pickups[pickupID]
	if !ok {
		return nil, 0, false
	}
	delete(w.pickups, pickupID)
	pos := slices.Index(w.order, pickupID)
	w.order = slices.Delete(w.order, pos, pos+1)
	return p, pos, true
}

// restore puts a claimed pickup back at its placement position
func (w *World) restore(p *Pickup, pos int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pickups[p.ID] = p
	w.order = slices.Insert(w.order, min(pos, len(w.order)), p.ID)
}

// SpawnerFor returns a PickupSpawner that tags drops with ownerID
func (w *World) SpawnerFor(ownerID string) inventory.PickupSpawner {
	return ownerSpawner{world: w, ownerID: ownerID}
}

type ownerSpawner struct {
	world   *World
	ownerID string
}

func (s ownerSpawner) SpawnPickup(ctx context.Context, itemID string, quantity int) {
	if _, err := s.world.Place(ctx, itemID, quantity, s.ownerID); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPickupSpawned, "item_id", itemID, "error", err)
	}
}
