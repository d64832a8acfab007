package bootstrap

import (
	"fmt"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/config"
	"github.com/osse101/Dreadlight_Go/internal/cooldown"
	"github.com/osse101/Dreadlight_Go/internal/effect"
	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/handler"
	"github.com/osse101/Dreadlight_Go/internal/inventory"
	"github.com/osse101/Dreadlight_Go/internal/item"
	"github.com/osse101/Dreadlight_Go/internal/logger"
	"github.com/osse101/Dreadlight_Go/internal/naming"
	"github.com/osse101/Dreadlight_Go/internal/scenario"
	"github.com/osse101/Dreadlight_Go/internal/worker"
	"github.com/osse101/Dreadlight_Go/internal/world"
)

// Game is one survivor with everything wired around it. Loop is created
// but not started.
type Game struct {
	Catalog   *item.MemoryCatalog
	Bus       event.Bus
	Names     naming.Resolver
	Character *character.Character
	World     *world.World
	Inventory *inventory.Component
	Loop      *worker.Pool
}

// BuildGame loads the item catalog and names and assembles a survivor
// with an empty inventory
func BuildGame(cfg *config.Config, bus event.Bus) (*Game, error) {
	catalog, err := item.LoadCatalog(item.NewLoader(), cfg.ItemsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	names, err := naming.NewResolver(cfg.AliasesPath, cfg.ThemesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadNames, err)
	}
	naming.RegisterCatalog(names, catalog.All())

	ch := character.New(DefaultCharacterID, character.DefaultConfig())
	w := world.New()
	inv, err := inventory.NewComponent(cfg.InventoryConfig(), inventory.Deps{
		OwnerID:   ch.ID(),
		Catalog:   catalog,
		Bus:       bus,
		Effects:   effect.NewRegistry(ch),
		Equip:     ch,
		Sound:     ch,
		Spawner:   w.SpawnerFor(ch.ID()),
		Cooldowns: &cooldown.Config{DevMode: cfg.CooldownDevMode},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateInventory, err)
	}

	logger.Info(LogMsgGameAssembled,
		"character_id", ch.ID(),
		"items", catalog.Len(),
		"max_slots", inv.MaxSlots(),
		"quickbar_size", inv.QuickbarSize())

	return &Game{
		Catalog:   catalog,
		Bus:       bus,
		Names:     names,
		Character: ch,
		World:     w,
		Inventory: inv,
		Loop:      worker.NewGameLoop(),
	}, nil
}

// Handlers exposes the game to the HTTP layer
func (g *Game) Handlers() *handler.Game {
	return &handler.Game{
		Loop:      g.Loop,
		Inventory: g.Inventory,
		Character: g.Character,
		World:     g.World,
		Names:     g.Names,
	}
}

// ScenarioProvider drives the game from scenario scripts through the loop
func (g *Game) ScenarioProvider() (*scenario.InventoryProvider, error) {
	return scenario.NewInventoryProvider(scenario.ProviderDeps{
		Inventory: g.Inventory,
		Character: g.Character,
		World:     g.World,
		Loop:      g.Loop,
		Names:     g.Names,
	})
}
