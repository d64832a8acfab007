package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Dreadlight_Go/internal/cooldown"
	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/item"
)

const (
	itemChalk = "chalk"
	itemNote  = "note"
)

func testCatalog() *item.MemoryCatalog {
	return item.NewCatalog(
		domain.Item{ID: domain.ItemFlashlight, Category: domain.CategoryFlashlight, MaxStack: 1},
		domain.Item{ID: domain.ItemBattery, Category: domain.CategoryConsumable, MaxStack: 5, Consumable: true, Cooldown: time.Second,
			Effect: domain.Effect{Kind: domain.EffectRechargeBattery, Amount: 50}},
		domain.Item{ID: domain.ItemPills, Category: domain.CategoryConsumable, MaxStack: 10, Consumable: true, Cooldown: 5 * time.Second,
			Effect: domain.Effect{Kind: domain.EffectRestoreSanity, Amount: 15}},
		domain.Item{ID: domain.ItemMedkit, Category: domain.CategoryConsumable, MaxStack: 3, Consumable: true},
		domain.Item{ID: domain.ItemBandage, Category: domain.CategoryConsumable, MaxStack: 5, Consumable: true},
		domain.Item{ID: domain.ItemRustyKey, Category: domain.CategoryKey, MaxStack: 1, Effect: domain.Effect{Kind: domain.EffectUnlock}},
		domain.Item{ID: domain.ItemLighter, Category: domain.CategoryTool, MaxStack: 1, MaxUses: 3, Cooldown: 2 * time.Second},
		domain.Item{ID: itemChalk, Category: domain.CategoryTool, MaxStack: 3, MaxUses: 2},
		domain.Item{ID: itemNote, Category: domain.CategoryMisc, MaxStack: 1},
	)
}

// MockEquipTarget records attach and detach calls
type MockEquipTarget struct {
	mock.Mock
}

func (m *MockEquipTarget) AttachItem(ctx context.Context, it domain.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockEquipTarget) DetachItem(ctx context.Context, itemID string) {
	m.Called(ctx, itemID)
}

// MockEffectApplier records applied effects
type MockEffectApplier struct {
	mock.Mock
}

func (m *MockEffectApplier) Apply(ctx context.Context, it domain.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

// MockSpawner records spawned pickups
type MockSpawner struct {
	mock.Mock
}

func (m *MockSpawner) SpawnPickup(ctx context.Context, itemID string, quantity int) {
	m.Called(ctx, itemID, quantity)
}

// recorder captures every inventory event published on a bus
type recorder struct {
	events []event.Event
}

func newRecorder(bus event.Bus) *recorder {
	r := &recorder{}
	for _, t := range event.AllInventoryTypes {
		bus.Subscribe(t, func(_ context.Context, e event.Event) error {
			r.events = append(r.events, e)
			return nil
		})
	}
	return r
}

func (r *recorder) types() []event.Type {
	out := make([]event.Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func (r *recorder) count(t event.Type) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t event.Type) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

func (r *recorder) reset() {
	r.events = nil
}

type fixture struct {
	inv     *Component
	events  *recorder
	equip   *MockEquipTarget
	effects *MockEffectApplier
	spawner *MockSpawner
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()

	equip := &MockEquipTarget{}
	equip.On("AttachItem", mock.Anything, mock.Anything).Return(nil).Maybe()
	equip.On("DetachItem", mock.Anything, mock.Anything).Return().Maybe()

	effects := &MockEffectApplier{}
	effects.On("Apply", mock.Anything, mock.Anything).Return(nil).Maybe()

	spawner := &MockSpawner{}
	spawner.On("SpawnPickup", mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	bus := event.NewMemoryBus()
	inv, err := NewComponent(cfg, Deps{
		OwnerID:   "player-1",
		Catalog:   testCatalog(),
		Bus:       bus,
		Effects:   effects,
		Equip:     equip,
		Spawner:   spawner,
		Cooldowns: &cooldown.Config{},
	})
	require.NoError(t, err)

	return &fixture{inv: inv, events: newRecorder(bus), equip: equip, effects: effects, spawner: spawner}
}

// mustAdd adds items and fails the test on error
func mustAdd(t *testing.T, inv *Component, itemID string, quantity int) {
	t.Helper()
	require.NoError(t, inv.AddItem(context.Background(), itemID, quantity))
}

func requireInvariants(t *testing.T, inv *Component) {
	t.Helper()
	require.NoError(t, inv.CheckInvariants())
}

func quickbarItem(inv *Component, index int) string {
	s, ok := inv.GetQuickbarSlot(index)
	if !ok {
		return ""
	}
	return s.ItemID
}
