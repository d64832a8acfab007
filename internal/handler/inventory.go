package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// SlotView is one inventory or quickbar slot as the API shows it
type SlotView struct {
	Index           int     `json:"index"`
	ItemID          string  `json:"item_id,omitempty"`
	Name            string  `json:"name,omitempty"`
	Quantity        int     `json:"quantity"`
	RemainingUses   int     `json:"remaining_uses,omitempty"`
	CooldownSeconds float64 `json:"cooldown_seconds,omitempty"`
}

// InventoryResponse is the full player view
type InventoryResponse struct {
	OwnerID   string            `json:"owner_id"`
	MaxSlots  int               `json:"max_slots"`
	Slots     []SlotView        `json:"slots"`
	Quickbar  []SlotView        `json:"quickbar"`
	Equipped  domain.EquipState `json:"equipped"`
	Character *character.State  `json:"character,omitempty"`
	Theme     string            `json:"theme,omitempty"`
}

func (g *Game) slotViews(slots []domain.InventorySlot) []SlotView {
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{Index: i}
		if !s.IsValid() {
			continue
		}
		views[i].ItemID = s.ItemID
		views[i].Name = g.displayName(s.ItemID)
		views[i].Quantity = s.Quantity
		views[i].RemainingUses = s.RemainingUses
		views[i].CooldownSeconds = s.Cooldown.Seconds()
	}
	return views
}

func (g *Game) inventoryView() InventoryResponse {
	snap := g.Inventory.Snapshot()
	resp := InventoryResponse{
		OwnerID:  snap.OwnerID,
		MaxSlots: snap.MaxSlots,
		Slots:    g.slotViews(snap.Slots),
		Quickbar: g.slotViews(snap.Quickbar),
		Equipped: snap.Equipped,
	}
	if g.Character != nil {
		state := g.Character.State()
		resp.Character = &state
	}
	if g.Names != nil {
		resp.Theme = g.Names.GetActiveTheme()
	}
	return resp
}

// HandleGetInventory returns the inventory, quickbar and equip state
func HandleGetInventory(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runGameAction(w, r, g, OpGetInventory, func(context.Context) (interface{}, error) {
			return g.inventoryView(), nil
		})
	}
}

type ItemRequest struct {
	Item     string `json:"item" validate:"required,max=100,itemname"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

type AddItemResponse struct {
	ItemID    string `json:"item_id"`
	Added     int    `json:"added"`
	Remaining int    `json:"remaining"`
	Total     int    `json:"total"`
}

// HandleAddItem adds items. A partial add still answers 200 with the
// amount that did not fit; nothing fitting is a 409.
func HandleAddItem(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpAddItem, func(ctx context.Context, req ItemRequest) (interface{}, error) {
			id := g.resolveItem(req.Item)
			resp := AddItemResponse{ItemID: id, Added: req.Quantity}

			if err := g.Inventory.AddItem(ctx, id, req.Quantity); err != nil {
				var partial *inventory.PartialAddError
				if !errors.As(err, &partial) || partial.Added == 0 {
					return nil, err
				}
				resp.Added = partial.Added
				resp.Remaining = partial.Remaining()
			}

			resp.Total = g.Inventory.GetItemQuantity(id)
			logger.FromContext(ctx).Info("Item added", "item", id, "added", resp.Added, "remaining", resp.Remaining)
			return resp, nil
		})
	}
}

type RemoveItemResponse struct {
	ItemID  string `json:"item_id"`
	Removed int    `json:"removed"`
	Total   int    `json:"total"`
}

// HandleRemoveItem removes exactly the requested amount or nothing
func HandleRemoveItem(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpRemoveItem, func(ctx context.Context, req ItemRequest) (interface{}, error) {
			id := g.resolveItem(req.Item)
			if err := g.Inventory.RemoveItem(ctx, id, req.Quantity); err != nil {
				return nil, err
			}
			return RemoveItemResponse{ItemID: id, Removed: req.Quantity, Total: g.Inventory.GetItemQuantity(id)}, nil
		})
	}
}

type UseItemRequest struct {
	Item string `json:"item" validate:"required,max=100,itemname"`
}

type UseItemResponse struct {
	ItemID    string `json:"item_id"`
	Remaining int    `json:"remaining"`
}

// HandleUseItem uses one item from the inventory
func HandleUseItem(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpUseItem, func(ctx context.Context, req UseItemRequest) (interface{}, error) {
			id := g.resolveItem(req.Item)
			if err := g.Inventory.UseItem(ctx, id); err != nil {
				return nil, err
			}
			return UseItemResponse{ItemID: id, Remaining: g.Inventory.GetItemQuantity(id)}, nil
		})
	}
}

type SwapRequest struct {
	A int `json:"a" validate:"min=0"`
	B int `json:"b" validate:"min=0"`
}

// HandleSwapInventory swaps two inventory slots
func HandleSwapInventory(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpSwapInventory, func(ctx context.Context, req SwapRequest) (interface{}, error) {
			if err := g.Inventory.SwapInventorySlots(ctx, req.A, req.B); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}

// HandleClearInventory empties the inventory and quickbar
func HandleClearInventory(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runGameAction(w, r, g, OpClearInventory, func(ctx context.Context) (interface{}, error) {
			g.Inventory.ClearInventory(ctx)
			logger.FromContext(ctx).Info("Inventory cleared", "owner", g.Inventory.OwnerID())
			return nil, nil
		})
	}
}
