package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/effect"
	"github.com/osse101/Dreadlight_Go/internal/handler"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
	"github.com/osse101/Dreadlight_Go/internal/item"
	"github.com/osse101/Dreadlight_Go/internal/worker"
	"github.com/osse101/Dreadlight_Go/internal/world"
)

func newTestServer(t *testing.T, opts Options) (*Server, *inventory.Component) {
	t.Helper()

	ch := character.New("player-1", character.DefaultConfig())
	w := world.New()
	inv, err := inventory.NewComponent(inventory.DefaultConfig(), inventory.Deps{
		OwnerID: "player-1",
		Catalog: item.NewCatalog(
			domain.Item{ID: domain.ItemFlashlight, Category: domain.CategoryFlashlight, MaxStack: 1},
			domain.Item{ID: domain.ItemBattery, Category: domain.CategoryConsumable, MaxStack: 5, Consumable: true,
				Effect: domain.Effect{Kind: domain.EffectRechargeBattery, Amount: 50}},
		),
		Effects: effect.NewRegistry(ch),
		Equip:   ch,
		Sound:   ch,
		Spawner: w.SpawnerFor("player-1"),
	})
	require.NoError(t, err)

	loop := worker.NewGameLoop()
	loop.Start()
	t.Cleanup(loop.Stop)

	return NewServer(opts, &handler.Game{Loop: loop, Inventory: inv, Character: ch, World: w}), inv
}

func do(t *testing.T, s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	s, inv := newTestServer(t, Options{})

	rec := do(t, s, http.MethodPost, "/api/v1/inventory/add", `{"item":"flashlight","quantity":1}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/api/v1/quickbar/equip", `{"index":0}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.ItemFlashlight, inv.EquipState().ItemID)

	rec = do(t, s, http.MethodPost, "/api/v1/equipped/drop", ``, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Zero(t, inv.SlotCount())

	rec = do(t, s, http.MethodGet, "/api/v1/world/pickups", ``, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pickups handler.PickupsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pickups))
	require.Len(t, pickups.Pickups, 1)

	rec = do(t, s, http.MethodPost, "/api/v1/world/pickups/"+pickups.Pickups[0].ID+"/collect", ``, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, inv.GetItemQuantity(domain.ItemFlashlight))

	rec = do(t, s, http.MethodGet, "/api/v1/inventory", ``, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner_id":"player-1"`)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, path, ``, nil).Code, path)
	}

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, s, http.MethodGet, "/api/v1/inventory/add", ``, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/api/v1/admin/reload-aliases", ``, nil).Code,
		"admin routes need a resolver")
}

func TestServer_SecurityHeaders(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	rec := do(t, s, http.MethodGet, "/healthz", ``, nil)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestServer_Auth(t *testing.T) {
	s, _ := newTestServer(t, Options{APIKey: "secret-key"})

	tests := []struct {
		name       string
		key        string
		path       string
		wantStatus int
	}{
		{"valid key", "secret-key", "/api/v1/inventory", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/inventory", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/inventory", http.StatusUnauthorized},
		{"public healthz", "", "/healthz", http.StatusOK},
		{"public metrics", "", "/metrics", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.key != "" {
				headers[HeaderAPIKey] = tt.key
			}
			assert.Equal(t, tt.wantStatus, do(t, s, http.MethodGet, tt.path, ``, headers).Code)
		})
	}
}

func TestServer_RequestSizeLimit(t *testing.T) {
	s, inv := newTestServer(t, Options{MaxBodyBytes: 32})

	body := `{"item":"battery","quantity":1,"padding":"` + strings.Repeat("x", 64) + `"}`
	rec := do(t, s, http.MethodPost, "/api/v1/inventory/add", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, inv.SlotCount())
}

func TestServer_Stop(t *testing.T) {
	s, _ := newTestServer(t, Options{Port: 0})
	assert.NoError(t, s.Stop(context.Background()))
}
