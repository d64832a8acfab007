package item

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Dreadlight_Go/internal/domain"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validDef(name string) Def {
	return Def{
		InternalName: name,
		PublicName:   name,
		Category:     "consumable",
		MaxStack:     5,
		Consumable:   true,
		Effect:       EffectDef{Kind: "restore_sanity", Amount: 10},
	}
}

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		path := createTempFile(t, `{
			"version": "1.0",
			"description": "Test items",
			"items": [
				{
					"internal_name": "battery",
					"public_name": "Battery",
					"category": "consumable",
					"max_stack": 5,
					"consumable": true,
					"cooldown_seconds": 0.5,
					"effect": {"kind": "recharge_battery", "amount": 50}
				}
			]
		}`)

		config, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		require.Len(t, config.Items, 1)
		assert.Equal(t, "battery", config.Items[0].InternalName)
		assert.Equal(t, 0.5, config.Items[0].CooldownSeconds)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read items config file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{invalid json}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse items config")
	})

	t.Run("schema violation", func(t *testing.T) {
		path := createTempFile(t, `{
			"version": "1.0",
			"items": [{"internal_name": "Bad Name", "public_name": "x", "category": "weapon"}]
		}`)
		_, err := loader.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, loader.Validate(&Config{Items: []Def{validDef("battery"), validDef("medkit")}}))
	})

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{"nil config", nil, ErrInvalidConfig},
		{"no items", &Config{}, ErrInvalidConfig},
		{"duplicate", &Config{Items: []Def{validDef("battery"), validDef("battery")}}, ErrDuplicateInternalName},
		{"missing category", &Config{Items: []Def{func() Def { d := validDef("a"); d.Category = ""; return d }()}}, ErrInvalidConfig},
		{"unknown effect", &Config{Items: []Def{func() Def { d := validDef("a"); d.Effect.Kind = "teleport"; return d }()}}, ErrInvalidConfig},
		{"negative stack", &Config{Items: []Def{func() Def { d := validDef("a"); d.MaxStack = -1; return d }()}}, ErrInvalidConfig},
		{"consumable with uses", &Config{Items: []Def{func() Def { d := validDef("a"); d.MaxUses = 3; return d }()}}, ErrInvalidConfig},
		{"stacked flashlight", &Config{Items: []Def{func() Def {
			d := validDef("torch")
			d.Category = "flashlight"
			d.Consumable = false
			d.MaxStack = 2
			return d
		}()}}, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDef_ToDomain(t *testing.T) {
	def := Def{
		InternalName:    "lighter",
		PublicName:      "Lighter",
		Category:        "tool",
		MaxStack:        1,
		MaxUses:         3,
		CooldownSeconds: 1.5,
	}

	it := def.ToDomain()
	assert.Equal(t, "lighter", it.ID)
	assert.Equal(t, "Lighter", it.DisplayName, "display falls back to public name")
	assert.Equal(t, domain.CategoryTool, it.Category)
	assert.Equal(t, domain.EffectNone, it.Effect.Kind)
	assert.Equal(t, 1500*time.Millisecond, it.Cooldown)
	assert.True(t, it.HasDurability())
	assert.False(t, it.IsStackable())
}

func TestLoadCatalog_ShippedConfig(t *testing.T) {
	catalog, err := LoadCatalog(NewLoader(), filepath.Join("..", "..", DefaultConfigPath))
	require.NoError(t, err)

	flashlight, ok := catalog.GetItemData(domain.ItemFlashlight)
	require.True(t, ok)
	assert.True(t, flashlight.IsFlashlight())

	battery, ok := catalog.GetItemData(domain.ItemBattery)
	require.True(t, ok)
	assert.Equal(t, 5, battery.StackLimit())
	assert.Equal(t, domain.EffectRechargeBattery, battery.Effect.Kind)

	_, ok = catalog.GetItemData("ghost_item")
	assert.False(t, ok)
	assert.Equal(t, catalog.Len(), len(catalog.All()))
}

func TestMemoryCatalog_Order(t *testing.T) {
	catalog := NewCatalog(
		domain.Item{ID: "b", MaxStack: 1},
		domain.Item{ID: "a", MaxStack: 1},
		domain.Item{ID: "b", MaxStack: 2},
	)

	all := catalog.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, 2, all[0].MaxStack)
	assert.Equal(t, "a", all[1].ID)
}
