package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/cooldown"
	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/effect"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
	"github.com/osse101/Dreadlight_Go/internal/item"
	"github.com/osse101/Dreadlight_Go/internal/naming"
	"github.com/osse101/Dreadlight_Go/internal/worker"
	"github.com/osse101/Dreadlight_Go/internal/world"
)

const testOwner = "player-1"

type testGame struct {
	*Game
	inv   *inventory.Component
	char  *character.Character
	world *world.World
	loop  *worker.Pool
}

func testItems() []domain.Item {
	return []domain.Item{
		{ID: domain.ItemFlashlight, PublicName: "Flashlight", Category: domain.CategoryFlashlight, MaxStack: 1},
		{ID: domain.ItemBattery, PublicName: "Battery", Category: domain.CategoryConsumable, MaxStack: 5, Consumable: true,
			Effect: domain.Effect{Kind: domain.EffectRechargeBattery, Amount: 50}},
		{ID: domain.ItemPills, PublicName: "Sanity Pills", DisplayName: "Pills", Category: domain.CategoryConsumable, MaxStack: 10, Consumable: true,
			Effect: domain.Effect{Kind: domain.EffectRestoreSanity, Amount: 15}},
		{ID: domain.ItemLighter, PublicName: "Lighter", Category: domain.CategoryTool, MaxStack: 1, MaxUses: 3, Cooldown: time.Minute},
	}
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()

	ch := character.New(testOwner, character.DefaultConfig())
	w := world.New()
	inv, err := inventory.NewComponent(inventory.DefaultConfig(), inventory.Deps{
		OwnerID:   testOwner,
		Catalog:   item.NewCatalog(testItems()...),
		Effects:   effect.NewRegistry(ch),
		Equip:     ch,
		Sound:     ch,
		Spawner:   w.SpawnerFor(testOwner),
		Cooldowns: &cooldown.Config{},
	})
	require.NoError(t, err)

	dir := t.TempDir()
	names, err := naming.NewResolver(dir+"/aliases.json", dir+"/themes.json")
	require.NoError(t, err)
	naming.RegisterCatalog(names, testItems())

	loop := worker.NewGameLoop()
	loop.Start()
	t.Cleanup(loop.Stop)

	return &testGame{
		Game:  &Game{Loop: loop, Inventory: inv, Character: ch, World: w, Names: names},
		inv:   inv,
		char:  ch,
		world: w,
		loop:  loop,
	}
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

// withURLParam attaches a chi route param the way the router would
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
