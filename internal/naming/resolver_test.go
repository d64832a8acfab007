package naming

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Dreadlight_Go/internal/domain"
)

func TestResolvePublicName(t *testing.T) {
	r := newResolver("", "")
	r.RegisterItem(domain.ItemPills, "Sanity Pills", "")
	r.RegisterItem(domain.ItemRustyKey, "Rusty Key", "Old Rusty Key")

	tests := []struct {
		name   string
		input  string
		wantID string
		wantOk bool
	}{
		{"public name", "Sanity Pills", domain.ItemPills, true},
		{"case insensitive", "SANITY PILLS", domain.ItemPills, true},
		{"item id", "sanity_pills", domain.ItemPills, true},
		{"hyphenated", "sanity-pills", domain.ItemPills, true},
		{"display name", "old rusty key", domain.ItemRustyKey, true},
		{"padded", "  Rusty Key ", domain.ItemRustyKey, true},
		{"unknown item", "crowbar", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolvePublicName(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantID, got)
		})
	}
}

func TestResolvePublicName_CacheInvalidatedOnRegister(t *testing.T) {
	r := newResolver("", "")

	_, ok := r.ResolvePublicName("Crowbar")
	require.False(t, ok)

	r.RegisterItem(domain.ItemCrowbar, "Crowbar", "")
	id, ok := r.ResolvePublicName("Crowbar")
	require.True(t, ok)
	assert.Equal(t, domain.ItemCrowbar, id)

	// second lookup is served from the cache
	assert.Equal(t, 1, r.cache.Len())
	id, ok = r.ResolvePublicName("Crowbar")
	assert.True(t, ok)
	assert.Equal(t, domain.ItemCrowbar, id)
}

func TestGetDisplayName(t *testing.T) {
	r := newResolver("", "")
	r.aliases = map[string]AliasPool{
		domain.ItemPills: {
			Default: []string{"Sanity Pills"},
			Themes:  map[string][]string{"blood_moon": {"Red Pills"}},
		},
	}
	r.themes = map[string]ThemePeriod{"blood_moon": {Start: "10-25", End: "11-02"}}
	r.RegisterItem(domain.ItemRustyKey, "Rusty Key", "")

	t.Run("default alias outside theme", func(t *testing.T) {
		r.now = func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) }
		assert.Equal(t, "Sanity Pills", r.GetDisplayName(domain.ItemPills))
		assert.Empty(t, r.GetActiveTheme())
	})

	t.Run("themed alias", func(t *testing.T) {
		r.now = func() time.Time { return time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC) }
		assert.Equal(t, "Red Pills", r.GetDisplayName(domain.ItemPills))
		assert.Equal(t, "blood_moon", r.GetActiveTheme())
	})

	t.Run("registered name", func(t *testing.T) {
		assert.Equal(t, "Rusty Key", r.GetDisplayName(domain.ItemRustyKey))
	})

	t.Run("title cased fallback", func(t *testing.T) {
		assert.Equal(t, "Crow Bar", r.GetDisplayName("crow_bar"))
	})
}

func TestIsInPeriod(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		start string
		end   string
		want  bool
	}{
		{"inside", time.Date(2026, 10, 28, 0, 0, 0, 0, time.UTC), "10-25", "11-02", true},
		{"outside", time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC), "10-25", "11-02", false},
		{"wrap start", time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC), "12-15", "01-05", true},
		{"wrap end", time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), "12-15", "01-05", true},
		{"wrap outside", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), "12-15", "01-05", false},
		{"malformed", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), "feb", "01-05", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isInPeriod(tt.date, tt.start, tt.end))
		})
	}
}

func TestReload(t *testing.T) {
	t.Run("shipped configs", func(t *testing.T) {
		r, err := NewResolver(filepath.Join("..", "..", DefaultAliasesPath), filepath.Join("..", "..", DefaultThemesPath))
		require.NoError(t, err)

		id, ok := r.ResolvePublicName("Torch")
		require.True(t, ok, "aliases resolve")
		assert.Equal(t, domain.ItemFlashlight, id)
	})

	t.Run("missing files are ignored", func(t *testing.T) {
		_, err := NewResolver("/nonexistent/aliases.json", "/nonexistent/themes.json")
		assert.NoError(t, err)
	})

	t.Run("wrong schema", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","schema":"item-themes"}`), 0o644))

		_, err := NewResolver(path, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToLoadAliases)
		assert.Contains(t, err.Error(), "invalid schema")
	})

	t.Run("missing version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "themes.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"schema":"item-themes"}`), 0o644))

		_, err := NewResolver("", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing version field")
	})
}

func TestRegisterCatalog(t *testing.T) {
	r := newResolver("", "")
	RegisterCatalog(r, []domain.Item{
		{ID: domain.ItemMedkit, PublicName: "Medkit", DisplayName: "First Aid Kit"},
		{ID: domain.ItemBandage},
	})

	id, ok := r.ResolvePublicName("first aid kit")
	require.True(t, ok)
	assert.Equal(t, domain.ItemMedkit, id)
	assert.Equal(t, "First Aid Kit", r.GetDisplayName(domain.ItemMedkit))
	assert.Equal(t, "Bandage", r.GetDisplayName(domain.ItemBandage))
}
