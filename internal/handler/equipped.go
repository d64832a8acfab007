package handler

import (
	"context"
	"net/http"
)

// HandleUseEquipped uses the held item
func HandleUseEquipped(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runGameAction(w, r, g, OpUseEquipped, func(ctx context.Context) (interface{}, error) {
			if err := g.Inventory.UseEquippedItem(ctx); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}

// HandleDropEquipped drops one unit of the held item into the world
func HandleDropEquipped(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runGameAction(w, r, g, OpDropEquipped, func(ctx context.Context) (interface{}, error) {
			if err := g.Inventory.DropEquippedItem(ctx); err != nil {
				return nil, err
			}
			return g.inventoryView(), nil
		})
	}
}

// HandleUnequip puts the held item away. Unequipping with empty hands is fine.
func HandleUnequip(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runGameAction(w, r, g, OpUnequip, func(ctx context.Context) (interface{}, error) {
			g.Inventory.UnequipCurrentItem(ctx)
			return g.inventoryView(), nil
		})
	}
}
