package handler

import (
	"context"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
	"github.com/osse101/Dreadlight_Go/internal/naming"
	"github.com/osse101/Dreadlight_Go/internal/world"
)

// DefaultActionTimeout bounds how long a request waits for the game loop
const DefaultActionTimeout = 2 * time.Second

// Runner executes fn on the game loop and waits for it
type Runner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Inventory is the part of the inventory component the API drives
type Inventory interface {
	OwnerID() string
	Snapshot() inventory.Snapshot
	GetItemQuantity(itemID string) int

	AddItem(ctx context.Context, itemID string, quantity int) error
	RemoveItem(ctx context.Context, itemID string, quantity int) error
	UseItem(ctx context.Context, itemID string) error
	SwapInventorySlots(ctx context.Context, a, b int) error
	ClearInventory(ctx context.Context)

	AssignToQuickbar(ctx context.Context, itemID string, index int) error
	RemoveFromQuickbar(ctx context.Context, index int) error
	SwapQuickbarSlots(ctx context.Context, a, b int) error
	MoveInventoryToQuickbar(ctx context.Context, invIndex, qbIndex int) error
	MoveQuickbarToInventory(ctx context.Context, qbIndex, invIndex int) error

	EquipQuickbarSlot(ctx context.Context, index int) error
	UnequipCurrentItem(ctx context.Context)
	UseEquippedItem(ctx context.Context) error
	DropEquippedItem(ctx context.Context) error
}

// Character exposes the player state shown next to the inventory
type Character interface {
	State() character.State
}

// Pickups is the world's collection of dropped items
type Pickups interface {
	Pickups() []world.Pickup
	Interact(ctx context.Context, pickupID string, inv world.Adder) (int, error)
}

// Game bundles what the handlers operate on. Loop and Inventory are
// required; the rest may be nil.
type Game struct {
	Loop      Runner
	Inventory Inventory
	Character Character
	World     Pickups
	Names     naming.Resolver
	Timeout   time.Duration
}

func (g *Game) timeout() time.Duration {
	if g.Timeout <= 0 {
		return DefaultActionTimeout
	}
	return g.Timeout
}

// resolveItem maps a public name or alias to an item id. Unknown names pass
// through unchanged so the inventory can reject them as unknown items.
func (g *Game) resolveItem(name string) string {
	if g.Names == nil {
		return name
	}
	if id, ok := g.Names.ResolvePublicName(name); ok {
		return id
	}
	return name
}

func (g *Game) displayName(itemID string) string {
	if g.Names == nil || itemID == "" {
		return itemID
	}
	return g.Names.GetDisplayName(itemID)
}
