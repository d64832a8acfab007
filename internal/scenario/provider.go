package scenario

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
	"github.com/osse101/Dreadlight_Go/internal/naming"
	"github.com/osse101/Dreadlight_Go/internal/world"
)

// Runner serializes work onto the game loop
type Runner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProviderDeps are the parts of the game an InventoryProvider drives.
// Inventory is required; a nil Loop runs steps on the calling goroutine.
type ProviderDeps struct {
	Inventory *inventory.Component
	Character *character.Character
	World     *world.World
	Loop      Runner
	Names     naming.Resolver
}

// InventoryProvider maps scenario actions onto an inventory component
type InventoryProvider struct {
	inv   *inventory.Component
	char  *character.Character
	world *world.World
	loop  Runner
	names naming.Resolver
}

// stepFunc performs one action and records any counts it produces.
// A *ParamError or ErrInvalidAction means the script is broken; any other
// error is the action's outcome.
type stepFunc func(ctx context.Context, p *InventoryProvider, step Step, counts map[string]int) error

var stepHandlers = map[ActionType]stepFunc{
	ActionAddItem:         addItem,
	ActionRemoveItem:      removeItem,
	ActionUseItem:         useItem,
	ActionSwapInventory:   swapInventory,
	ActionClear:           clearInventory,
	ActionAssignQuickbar:  assignQuickbar,
	ActionRemoveQuickbar:  removeQuickbar,
	ActionSwapQuickbar:    swapQuickbar,
	ActionMoveToQuickbar:  moveToQuickbar,
	ActionMoveToInventory: moveToInventory,
	ActionEquip:           equip,
	ActionUnequip:         unequip,
	ActionUseEquipped:     useEquipped,
	ActionDrop:            drop,
	ActionTick:            tick,
	ActionPickup:          pickup,
}

// NewInventoryProvider creates a provider over deps
func NewInventoryProvider(deps ProviderDeps) (*InventoryProvider, error) {
	if deps.Inventory == nil {
		return nil, fmt.Errorf("%w: inventory provider needs an inventory", ErrMissingParameter)
	}
	return &InventoryProvider{
		inv:   deps.Inventory,
		char:  deps.Character,
		world: deps.World,
		loop:  deps.Loop,
		names: deps.Names,
	}, nil
}

// SupportsAction returns true if the provider supports the given action
func (p *InventoryProvider) SupportsAction(action ActionType) bool {
	_, ok := stepHandlers[action]
	return ok
}

// Perform runs one action on the game loop and observes the result
func (p *InventoryProvider) Perform(ctx context.Context, step Step) (*Observation, error) {
	handler, ok := stepHandlers[step.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, step.Action)
	}

	var obs *Observation
	run := func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		counts := make(map[string]int)
		actionErr := handler(ctx, p, step, counts)
		if isScriptError(actionErr) {
			return actionErr
		}
		obs = p.observe(step, counts)
		obs.Success = actionErr == nil
		if actionErr != nil {
			obs.Error = actionErr.Error()
		}
		return nil
	}

	var err error
	if p.loop == nil {
		err = run(ctx)
	} else {
		err = p.loop.Do(ctx, run)
	}
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// observe captures the game state after a step
func (p *InventoryProvider) observe(step Step, counts map[string]int) *Observation {
	obs := newObservation(p.inv.Snapshot())
	for k, v := range counts {
		obs.Counts[k] = v
	}
	if name, ok := step.Parameters[ParamItem].(string); ok {
		obs.Counts[CountQuantity] = p.inv.GetItemQuantity(p.resolve(name))
	}
	if p.char != nil {
		obs.Character = characterView(p.char.State())
	}
	if p.world != nil {
		obs.Pickups = len(p.world.Pickups())
	}
	if err := p.inv.CheckInvariants(); err != nil {
		obs.Violation = err.Error()
	}
	return obs
}

// resolve maps a public name or alias to an item id
func (p *InventoryProvider) resolve(name string) string {
	if p.names == nil {
		return name
	}
	if id, ok := p.names.ResolvePublicName(name); ok {
		return id
	}
	return name
}

func addItem(ctx context.Context, p *InventoryProvider, step Step, counts map[string]int) error {
	id, qty, err := p.itemAndQuantity(step)
	if err != nil {
		return err
	}

	actionErr := p.inv.AddItem(ctx, id, qty)
	var partial *inventory.PartialAddError
	switch {
	case actionErr == nil:
		counts[CountAdded], counts[CountRemaining] = qty, 0
	case errors.As(actionErr, &partial):
		counts[CountAdded], counts[CountRemaining] = partial.Added, partial.Remaining()
	default:
		counts[CountAdded], counts[CountRemaining] = 0, qty
	}
	return actionErr
}

func removeItem(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	id, qty, err := p.itemAndQuantity(step)
	if err != nil {
		return err
	}
	return p.inv.RemoveItem(ctx, id, qty)
}

func useItem(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	name, err := stringParam(step, ParamItem)
	if err != nil {
		return err
	}
	return p.inv.UseItem(ctx, p.resolve(name))
}

func swapInventory(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	a, b, err := pairParams(step, ParamA, ParamB)
	if err != nil {
		return err
	}
	return p.inv.SwapInventorySlots(ctx, a, b)
}

func clearInventory(ctx context.Context, p *InventoryProvider, _ Step, _ map[string]int) error {
	p.inv.ClearInventory(ctx)
	return nil
}

func assignQuickbar(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	name, err := stringParam(step, ParamItem)
	if err != nil {
		return err
	}
	index, err := intParam(step, ParamIndex)
	if err != nil {
		return err
	}
	return p.inv.AssignToQuickbar(ctx, p.resolve(name), index)
}

func removeQuickbar(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	index, err := intParam(step, ParamIndex)
	if err != nil {
		return err
	}
	return p.inv.RemoveFromQuickbar(ctx, index)
}

func swapQuickbar(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	a, b, err := pairParams(step, ParamA, ParamB)
	if err != nil {
		return err
	}
	return p.inv.SwapQuickbarSlots(ctx, a, b)
}

func moveToQuickbar(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	inv, qb, err := pairParams(step, ParamInventoryIndex, ParamQuickbarIndex)
	if err != nil {
		return err
	}
	return p.inv.MoveInventoryToQuickbar(ctx, inv, qb)
}

func moveToInventory(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	qb, inv, err := pairParams(step, ParamQuickbarIndex, ParamInventoryIndex)
	if err != nil {
		return err
	}
	return p.inv.MoveQuickbarToInventory(ctx, qb, inv)
}

func equip(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	index, err := intParam(step, ParamIndex)
	if err != nil {
		return err
	}
	return p.inv.EquipQuickbarSlot(ctx, index)
}

func unequip(ctx context.Context, p *InventoryProvider, _ Step, _ map[string]int) error {
	p.inv.UnequipCurrentItem(ctx)
	return nil
}

func useEquipped(ctx context.Context, p *InventoryProvider, _ Step, _ map[string]int) error {
	return p.inv.UseEquippedItem(ctx)
}

func drop(ctx context.Context, p *InventoryProvider, _ Step, _ map[string]int) error {
	return p.inv.DropEquippedItem(ctx)
}

func tick(ctx context.Context, p *InventoryProvider, step Step, _ map[string]int) error {
	seconds, err := floatParam(step, ParamSeconds)
	if err != nil {
		return err
	}
	if seconds <= 0 {
		return invalidParam(ParamSeconds, seconds)
	}
	dt := time.Duration(seconds * float64(time.Second))
	p.inv.Tick(ctx, dt)
	if p.char != nil {
		p.char.Tick(ctx, dt)
	}
	return nil
}

// pickup places the given item in the world and collects it. Without an
// item it collects the oldest pickup already lying there.
func pickup(ctx context.Context, p *InventoryProvider, step Step, counts map[string]int) error {
	if p.world == nil {
		return fmt.Errorf("%w: pickup needs a world", ErrInvalidAction)
	}

	var pickupID string
	if _, ok := step.Parameters[ParamItem]; ok {
		id, qty, err := p.itemAndQuantity(step)
		if err != nil {
			return err
		}
		placed, err := p.world.Place(ctx, id, qty, DroppedByScenario)
		if err != nil {
			return err
		}
		pickupID = placed.ID
	} else {
		lying := p.world.Pickups()
		if len(lying) == 0 {
			counts[CountCollected] = 0
			return world.ErrPickupNotFound
		}
		pickupID = lying[0].ID
	}

	collected, actionErr := p.world.Interact(ctx, pickupID, p.inv)
	counts[CountCollected] = collected
	return actionErr
}

func (p *InventoryProvider) itemAndQuantity(step Step) (string, int, error) {
	name, err := stringParam(step, ParamItem)
	if err != nil {
		return "", 0, err
	}
	qty := 1
	if _, ok := step.Parameters[ParamQuantity]; ok {
		if qty, err = intParam(step, ParamQuantity); err != nil {
			return "", 0, err
		}
	}
	return p.resolve(name), qty, nil
}

func stringParam(step Step, name string) (string, error) {
	v, ok := step.Parameters[name]
	if !ok {
		return "", missingParam(name)
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidParam(name, v)
	}
	return s, nil
}

func floatParam(step Step, name string) (float64, error) {
	v, ok := step.Parameters[name]
	if !ok {
		return 0, missingParam(name)
	}
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, invalidParam(name, v)
	}
}

func intParam(step Step, name string) (int, error) {
	f, err := floatParam(step, name)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, invalidParam(name, f)
	}
	return int(f), nil
}

func pairParams(step Step, first, second string) (int, int, error) {
	a, err := intParam(step, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := intParam(step, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
