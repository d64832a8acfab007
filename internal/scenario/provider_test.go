package scenario

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/config"
	"github.com/osse101/Dreadlight_Go/internal/cooldown"
	"github.com/osse101/Dreadlight_Go/internal/effect"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
	"github.com/osse101/Dreadlight_Go/internal/item"
	"github.com/osse101/Dreadlight_Go/internal/naming"
	"github.com/osse101/Dreadlight_Go/internal/worker"
	"github.com/osse101/Dreadlight_Go/internal/world"
)

const testOwner = "player-1"

func repoPath(rel string) string {
	return filepath.Join("..", "..", rel)
}

type testRig struct {
	provider *InventoryProvider
	inv      *inventory.Component
	char     *character.Character
	world    *world.World
}

func newTestRig(t *testing.T, withLoop bool) *testRig {
	t.Helper()

	catalog, err := item.LoadCatalog(item.NewLoader(), repoPath(config.ConfigPathItems))
	require.NoError(t, err)

	names, err := naming.NewResolver(repoPath(config.ConfigPathItemAliases), repoPath(config.ConfigPathItemThemes))
	require.NoError(t, err)
	naming.RegisterCatalog(names, catalog.All())

	ch := character.New(testOwner, character.DefaultConfig())
	w := world.New()
	inv, err := inventory.NewComponent(inventory.DefaultConfig(), inventory.Deps{
		OwnerID:   testOwner,
		Catalog:   catalog,
		Effects:   effect.NewRegistry(ch),
		Equip:     ch,
		Sound:     ch,
		Spawner:   w.SpawnerFor(testOwner),
		Cooldowns: &cooldown.Config{},
	})
	require.NoError(t, err)

	deps := ProviderDeps{Inventory: inv, Character: ch, World: w, Names: names}
	if withLoop {
		loop := worker.NewGameLoop()
		loop.Start()
		t.Cleanup(loop.Stop)
		deps.Loop = loop
	}

	provider, err := NewInventoryProvider(deps)
	require.NoError(t, err)
	return &testRig{provider: provider, inv: inv, char: ch, world: w}
}

func (r *testRig) step(t *testing.T, action ActionType, params map[string]interface{}) *Observation {
	t.Helper()
	obs, err := r.provider.Perform(context.Background(), Step{Name: string(action), Action: action, Parameters: params})
	require.NoError(t, err)
	require.NotNil(t, obs)
	return obs
}

func TestShippedScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join(repoPath(config.ConfigPathScenariosDir), "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := LoadFile(path)
			require.NoError(t, err)

			rig := newTestRig(t, true)
			result, err := NewEngine().Execute(context.Background(), *s, rig.provider)
			require.NoError(t, err)
			assert.NoError(t, result.Err())
			assert.Len(t, result.Steps, len(s.Steps))
		})
	}
}

func TestNewInventoryProvider_RequiresInventory(t *testing.T) {
	_, err := NewInventoryProvider(ProviderDeps{})
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestInventoryProvider_SupportsAction(t *testing.T) {
	rig := newTestRig(t, false)

	for action := range stepHandlers {
		assert.True(t, rig.provider.SupportsAction(action), action)
	}
	assert.False(t, rig.provider.SupportsAction("teleport"))
}

func TestInventoryProvider_AddItemObservation(t *testing.T) {
	rig := newTestRig(t, false)

	obs := rig.step(t, ActionAddItem, map[string]interface{}{ParamItem: "Battery", ParamQuantity: 2})

	assert.True(t, obs.Success)
	assert.Empty(t, obs.Error)
	assert.Equal(t, map[string]int{CountQuantity: 2, CountAdded: 2, CountRemaining: 0}, obs.Counts)
	require.Len(t, obs.Slots, 1)
	assert.Equal(t, SlotView{ItemID: "battery", Quantity: 2}, obs.Slots[0])
	assert.Equal(t, "battery", obs.Quickbar[1].ItemID)
	assert.Equal(t, EquippedView{QuickbarIndex: -1}, obs.Equipped)
	assert.Equal(t, map[string]int{"battery": 2}, obs.Held)
	require.NotNil(t, obs.Character)
	assert.Equal(t, 100.0, obs.Character.Sanity)
	assert.Zero(t, obs.Pickups)
	assert.Empty(t, obs.Violation)
}

func TestInventoryProvider_ObservesDurabilityAndCooldown(t *testing.T) {
	rig := newTestRig(t, false)

	rig.step(t, ActionAddItem, map[string]interface{}{ParamItem: "Lighter"})
	rig.step(t, ActionEquip, map[string]interface{}{ParamIndex: 1})
	obs := rig.step(t, ActionUseEquipped, nil)

	require.True(t, obs.Success, obs.Error)
	assert.Equal(t, 2, obs.Slots[0].RemainingUses)
	assert.Equal(t, 2.0, obs.Slots[0].Cooldown)
	assert.Equal(t, 2.0, obs.Quickbar[1].Cooldown)
	assert.Equal(t, EquippedView{ItemID: "lighter", QuickbarIndex: 1}, obs.Equipped)
	assert.Equal(t, "lighter", obs.Character.HandItem)

	obs = rig.step(t, ActionTick, map[string]interface{}{ParamSeconds: 0.5})
	assert.Equal(t, 1.5, obs.Slots[0].Cooldown)
	_, counted := obs.Counts[CountQuantity]
	assert.False(t, counted, "tick names no item")
}

func TestInventoryProvider_PartialAdd(t *testing.T) {
	rig := newTestRig(t, false)

	// twelve single-slot lighters fill the store
	for range inventory.DefaultConfig().MaxSlots {
		rig.step(t, ActionAddItem, map[string]interface{}{ParamItem: "lighter"})
	}
	require.True(t, rig.inv.IsInventoryFull())

	obs := rig.step(t, ActionAddItem, map[string]interface{}{ParamItem: "Battery", ParamQuantity: 3})
	assert.False(t, obs.Success)
	assert.Contains(t, obs.Error, "inventory is full")
	assert.Equal(t, 0, obs.Counts[CountAdded])
	assert.Equal(t, 3, obs.Counts[CountRemaining])
	assert.Len(t, obs.Slots, inventory.DefaultConfig().MaxSlots)
}

func TestInventoryProvider_RejectedActionIsAnOutcome(t *testing.T) {
	rig := newTestRig(t, true)

	obs := rig.step(t, ActionRemoveItem, map[string]interface{}{ParamItem: "Battery", ParamQuantity: 1})

	assert.False(t, obs.Success)
	assert.Contains(t, obs.Error, "insufficient quantity")
	assert.Equal(t, 0, obs.Counts[CountQuantity])
	assert.Empty(t, obs.Violation)
}

func TestInventoryProvider_ScriptErrors(t *testing.T) {
	rig := newTestRig(t, true)

	tests := []struct {
		name   string
		action ActionType
		params map[string]interface{}
		want   error
		param  string
	}{
		{"missing item", ActionAddItem, nil, ErrMissingParameter, ParamItem},
		{"item not a string", ActionUseItem, map[string]interface{}{ParamItem: 7}, ErrInvalidParameter, ParamItem},
		{"fractional index", ActionEquip, map[string]interface{}{ParamIndex: 1.5}, ErrInvalidParameter, ParamIndex},
		{"missing second index", ActionSwapQuickbar, map[string]interface{}{ParamA: 0}, ErrMissingParameter, ParamB},
		{"non-positive tick", ActionTick, map[string]interface{}{ParamSeconds: 0}, ErrInvalidParameter, ParamSeconds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := rig.provider.Perform(context.Background(), Step{Action: tt.action, Parameters: tt.params})
			assert.Nil(t, obs)
			assert.ErrorIs(t, err, tt.want)

			var perr *ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.param, perr.Param)
		})
	}

	t.Run("unknown action", func(t *testing.T) {
		_, err := rig.provider.Perform(context.Background(), Step{Action: "teleport"})
		assert.ErrorIs(t, err, ErrInvalidAction)
	})
}

func TestInventoryProvider_PickupWithoutWorld(t *testing.T) {
	rig := newTestRig(t, false)
	rig.provider.world = nil

	_, err := rig.provider.Perform(context.Background(), Step{Action: ActionPickup})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestInventoryProvider_PickupNothingLying(t *testing.T) {
	rig := newTestRig(t, false)

	obs := rig.step(t, ActionPickup, nil)
	assert.False(t, obs.Success)
	assert.Contains(t, obs.Error, "pickup not found")
	assert.Equal(t, 0, obs.Counts[CountCollected])
}

func TestInventoryProvider_PickupPlacesAndCollects(t *testing.T) {
	rig := newTestRig(t, true)

	obs := rig.step(t, ActionPickup, map[string]interface{}{ParamItem: "Battery", ParamQuantity: 3})
	assert.True(t, obs.Success, obs.Error)
	assert.Equal(t, 3, obs.Counts[CountCollected])
	assert.Equal(t, 3, obs.Counts[CountQuantity])
	assert.Zero(t, obs.Pickups)
}

func TestInventoryProvider_StoppedLoop(t *testing.T) {
	rig := newTestRig(t, false)
	loop := worker.NewGameLoop()
	loop.Start()
	loop.Stop()
	rig.provider.loop = loop

	_, err := rig.provider.Perform(context.Background(), Step{Action: ActionClear})
	assert.ErrorIs(t, err, worker.ErrPoolStopped)
}

func TestInventoryProvider_CancelledContext(t *testing.T) {
	rig := newTestRig(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rig.provider.Perform(ctx, Step{Action: ActionAddItem, Parameters: map[string]interface{}{ParamItem: "Battery"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rig.inv.GetItemQuantity("battery"))
}
