package character

import (
	"time"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/item"
)

func itemCatalog() *item.MemoryCatalog {
	return item.NewCatalog(
		flashlightItem,
		domain.Item{ID: domain.ItemPills, Category: domain.CategoryConsumable, MaxStack: 10, Consumable: true,
			Effect: domain.Effect{Kind: domain.EffectRestoreSanity, Amount: 15}},
		domain.Item{ID: domain.ItemBattery, Category: domain.CategoryConsumable, MaxStack: 5, Consumable: true, Cooldown: time.Second,
			Effect: domain.Effect{Kind: domain.EffectRechargeBattery, Amount: 50}},
	)
}
