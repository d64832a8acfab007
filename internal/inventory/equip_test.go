package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/item"
)

func TestEquipQuickbarSlot_Toggle(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	ctx := context.Background()
	mustAdd(t, f.inv, domain.ItemFlashlight, 1)

	require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 0))
	assert.Equal(t, domain.EquipState{ItemID: domain.ItemFlashlight, QuickbarIndex: 0}, f.inv.EquipState())
	f.equip.AssertNumberOfCalls(t, "AttachItem", 1)

	equipped, ok := f.events.last(event.ItemEquipped)
	require.True(t, ok)
	assert.Equal(t, 0, equipped.Payload.(event.ItemEquipPayloadV1).QuickbarIndex)

	held, ok := f.inv.EquippedItem()
	require.True(t, ok)
	assert.True(t, held.IsFlashlight())

	require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 0))
	assert.False(t, f.inv.EquipState().IsEquipped())
	f.equip.AssertCalled(t, "DetachItem", ctx, domain.ItemFlashlight)
	f.equip.AssertNumberOfCalls(t, "AttachItem", 1)

	unequipped, ok := f.events.last(event.ItemUnequipped)
	require.True(t, ok)
	assert.Equal(t, domain.NoQuickbarIndex, unequipped.Payload.(event.ItemEquipPayloadV1).QuickbarIndex)
	requireInvariants(t, f.inv)
}

func TestEquipQuickbarSlot_SwitchesItems(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	ctx := context.Background()
	mustAdd(t, f.inv, domain.ItemFlashlight, 1)
	mustAdd(t, f.inv, domain.ItemRustyKey, 1)

	require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 0))
	require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 1))

	assert.Equal(t, domain.EquipState{ItemID: domain.ItemRustyKey, QuickbarIndex: 1}, f.inv.EquipState())
	f.equip.AssertCalled(t, "DetachItem", ctx, domain.ItemFlashlight)
	assert.Equal(t, 2, f.events.count(event.ItemEquipped))
	assert.Equal(t, 1, f.events.count(event.ItemUnequipped))
}

func TestEquipQuickbarSlot_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("out of range", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		assert.ErrorIs(t, f.inv.EquipQuickbarSlot(ctx, 4), domain.ErrInvalidSlot)
		assert.ErrorIs(t, f.inv.EquipQuickbarSlot(ctx, -1), domain.ErrInvalidSlot)
	})

	t.Run("empty slot", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		assert.ErrorIs(t, f.inv.EquipQuickbarSlot(ctx, 2), domain.ErrSlotEmpty)
	})

	t.Run("stale slot", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		mustAdd(t, f.inv, domain.ItemRustyKey, 1)
		f.inv.slots = f.inv.slots[:0]

		assert.ErrorIs(t, f.inv.EquipQuickbarSlot(ctx, 1), domain.ErrItemNotHeld)
		assert.Equal(t, "", f.inv.quickbar[1].ItemID)
	})

	t.Run("attach refused leaves nothing equipped", func(t *testing.T) {
		equip := &MockEquipTarget{}
		equip.On("AttachItem", mock.Anything, mock.Anything).Return(errors.New("hands busy"))
		inv, err := NewComponent(DefaultConfig(), Deps{Catalog: testCatalog(), Equip: equip})
		require.NoError(t, err)
		require.NoError(t, inv.AddItem(ctx, domain.ItemFlashlight, 1))

		err = inv.EquipQuickbarSlot(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrAttachFailed)
		assert.Contains(t, err.Error(), "hands busy")
		assert.False(t, inv.EquipState().IsEquipped())
		equip.AssertNotCalled(t, "DetachItem", mock.Anything, mock.Anything)
		require.NoError(t, inv.CheckInvariants())
	})
}

func TestUnequipCurrentItem_Idempotent(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	ctx := context.Background()

	f.inv.UnequipCurrentItem(ctx)
	assert.Empty(t, f.events.events)
	f.equip.AssertNotCalled(t, "DetachItem", mock.Anything, mock.Anything)
}

func TestUseEquippedItem(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing equipped", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		assert.ErrorIs(t, f.inv.UseEquippedItem(ctx), domain.ErrNothingEquipped)
	})

	t.Run("consumable is unequipped and spent", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		mustAdd(t, f.inv, domain.ItemPills, 3)
		require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 1))

		require.NoError(t, f.inv.UseEquippedItem(ctx))

		assert.Equal(t, 2, f.inv.GetItemQuantity(domain.ItemPills))
		assert.False(t, f.inv.EquipState().IsEquipped())
		assert.Equal(t, domain.ItemPills, quickbarItem(f.inv, 1), "remaining pills stay on the quickbar")
		f.effects.AssertNumberOfCalls(t, "Apply", 1)
		requireInvariants(t, f.inv)
	})

	t.Run("durability item keeps going until its last use", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		mustAdd(t, f.inv, domain.ItemLighter, 1)
		require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 1))

		require.NoError(t, f.inv.UseEquippedItem(ctx))
		assert.True(t, f.inv.EquipState().IsEquipped())
		slot, _ := f.inv.InventorySlot(0)
		assert.Equal(t, 2, slot.RemainingUses)
		assert.Equal(t, 2, f.inv.quickbar[1].RemainingUses)

		f.inv.Tick(ctx, slot.Cooldown)
		require.NoError(t, f.inv.UseEquippedItem(ctx))
		f.inv.Tick(ctx, slot.Cooldown)

		// remaining uses == 1
		require.NoError(t, f.inv.UseEquippedItem(ctx))
		assert.False(t, f.inv.HasItem(domain.ItemLighter, 1))
		assert.False(t, f.inv.EquipState().IsEquipped())
		assert.Equal(t, "", quickbarItem(f.inv, 1))
		requireInvariants(t, f.inv)
	})

	t.Run("non-consumable without durability stays equipped", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		mustAdd(t, f.inv, domain.ItemRustyKey, 1)
		require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 1))

		require.NoError(t, f.inv.UseEquippedItem(ctx))
		assert.True(t, f.inv.EquipState().IsEquipped())
		assert.Equal(t, 1, f.inv.GetItemQuantity(domain.ItemRustyKey))
	})

	t.Run("equipped item vanished", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		mustAdd(t, f.inv, domain.ItemRustyKey, 1)
		require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 1))
		f.inv.slots = f.inv.slots[:0]

		assert.ErrorIs(t, f.inv.UseEquippedItem(ctx), domain.ErrItemNotHeld)
		assert.False(t, f.inv.EquipState().IsEquipped())
		used, ok := f.events.last(event.ItemUsed)
		require.True(t, ok)
		assert.False(t, used.Payload.(event.ItemUsedPayloadV1).Success)
	})
}

func TestDropEquippedItem(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing equipped", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		assert.ErrorIs(t, f.inv.DropEquippedItem(ctx), domain.ErrNothingEquipped)
		f.spawner.AssertNotCalled(t, "SpawnPickup", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("drops one unit into the world", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		mustAdd(t, f.inv, domain.ItemBattery, 3)
		require.NoError(t, f.inv.EquipQuickbarSlot(ctx, 1))

		require.NoError(t, f.inv.DropEquippedItem(ctx))

		assert.Equal(t, 2, f.inv.GetItemQuantity(domain.ItemBattery))
		assert.False(t, f.inv.EquipState().IsEquipped())
		f.spawner.AssertCalled(t, "SpawnPickup", ctx, domain.ItemBattery, 1)
		assert.Equal(t, 1, f.events.count(event.ItemRemoved))
		requireInvariants(t, f.inv)
	})
}

func TestEquippedItem_NothingHeld(t *testing.T) {
	inv, err := NewComponent(DefaultConfig(), Deps{Catalog: item.NewCatalog()})
	require.NoError(t, err)
	_, ok := inv.EquippedItem()
	assert.False(t, ok)
}
