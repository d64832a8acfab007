package handler

import (
	"context"
	"net/http"
)

type AssignQuickbarRequest struct {
	Item  string `json:"item" validate:"required,max=100,itemname"`
	Index int    `json:"index" validate:"min=0"`
}

type QuickbarIndexRequest struct {
	Index int `json:"index" validate:"min=0"`
}

type MoveToQuickbarRequest struct {
	InventoryIndex int `json:"inventory_index" validate:"min=0"`
	QuickbarIndex  int `json:"quickbar_index" validate:"min=0"`
}

// HandleAssignQuickbar points a quickbar slot at a held item
func HandleAssignQuickbar(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpAssignQuickbar, func(ctx context.Context, req AssignQuickbarRequest) (interface{}, error) {
			if err := g.Inventory.AssignToQuickbar(ctx, g.resolveItem(req.Item), req.Index); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}

// HandleRemoveQuickbar clears a quickbar slot
func HandleRemoveQuickbar(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpRemoveQuickbar, func(ctx context.Context, req QuickbarIndexRequest) (interface{}, error) {
			if err := g.Inventory.RemoveFromQuickbar(ctx, req.Index); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}

// HandleSwapQuickbar swaps two quickbar slots
func HandleSwapQuickbar(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpSwapQuickbar, func(ctx context.Context, req SwapRequest) (interface{}, error) {
			if err := g.Inventory.SwapQuickbarSlots(ctx, req.A, req.B); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}

// HandleEquip toggles the item in a quickbar slot
func HandleEquip(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpEquip, func(ctx context.Context, req QuickbarIndexRequest) (interface{}, error) {
			if err := g.Inventory.EquipQuickbarSlot(ctx, req.Index); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}

// HandleMoveToQuickbar drags an inventory slot onto the quickbar
func HandleMoveToQuickbar(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpMoveToQuickbar, func(ctx context.Context, req MoveToQuickbarRequest) (interface{}, error) {
			if err := g.Inventory.MoveInventoryToQuickbar(ctx, req.InventoryIndex, req.QuickbarIndex); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}

// HandleMoveToInventory drags a quickbar slot back into the inventory
func HandleMoveToInventory(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGameAction(w, r, g, OpMoveToInventory, func(ctx context.Context, req MoveToQuickbarRequest) (interface{}, error) {
			if err := g.Inventory.MoveQuickbarToInventory(ctx, req.QuickbarIndex, req.InventoryIndex); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}
