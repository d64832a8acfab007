package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Dreadlight_Go/internal/world"
)

type PickupsResponse struct {
	Pickups []world.Pickup `json:"pickups"`
}

type CollectPickupResponse struct {
	PickupID  string `json:"pickup_id"`
	Collected int    `json:"collected"`
}

// HandleListPickups lists items lying in the world
func HandleListPickups(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runGameAction(w, r, g, OpListPickups, func(context.Context) (interface{}, error) {
			pickups := g.World.Pickups()
			if pickups == nil {
				pickups = []world.Pickup{}
			}
			return PickupsResponse{Pickups: pickups}, nil
		})
	}
}

// HandleCollectPickup moves a pickup into the inventory. Whatever does not
// fit stays in the world.
func HandleCollectPickup(g *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "pickupID")
		runGameAction(w, r, g, OpCollectPickup, func(ctx context.Context) (interface{}, error) {
			n, err := g.World.Interact(ctx, id, g.Inventory)
			if err != nil {
				return nil, err
			}
			return CollectPickupResponse{PickupID: id, Collected: n}, nil
		})
	}
}
