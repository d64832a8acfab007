package item

import (
	"fmt"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// Catalog is the static item id -> metadata lookup
type Catalog interface {
	GetItemData(itemID string) (domain.Item, bool)
}

// MemoryCatalog is a Catalog backed by a map, built once at startup
type MemoryCatalog struct {
	items map[string]domain.Item
	order []string
}

// NewCatalog builds a catalog from explicit items; later duplicates replace earlier ones
func NewCatalog(items ...domain.Item) *MemoryCatalog {
	c := &MemoryCatalog{items: make(map[string]domain.Item, len(items))}
	for _, it := range items {
		c.register(it)
	}
	return c
}

// NewCatalogFromConfig builds a catalog from a validated Config
func NewCatalogFromConfig(cfg *Config) *MemoryCatalog {
	items := make([]domain.Item, 0, len(cfg.Items))
	for _, def := range cfg.Items {
		items = append(items, def.ToDomain())
	}
	return NewCatalog(items...)
}

// LoadCatalog loads, validates and builds the catalog at path
func LoadCatalog(loader Loader, path string) (*MemoryCatalog, error) {
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, fmt.Errorf("items config %s: %w", path, err)
	}

	catalog := NewCatalogFromConfig(cfg)
	logger.Info(LogMsgCatalogLoaded, "path", path, "version", cfg.Version, "items", catalog.Len())
	return catalog, nil
}

func (c *MemoryCatalog) register(it domain.Item) {
	if _, exists := c.items[it.ID]; !exists {
		c.order = append(c.order, it.ID)
	}
	c.items[it.ID] = it
}

// GetItemData returns the metadata for itemID; ok is false for unknown ids
func (c *MemoryCatalog) GetItemData(itemID string) (domain.Item, bool) {
	it, ok := c.items[itemID]
	return it, ok
}

// All returns every item in definition order
func (c *MemoryCatalog) All() []domain.Item {
	out := make([]domain.Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Len returns the number of catalog entries
func (c *MemoryCatalog) Len() int {
	return len(c.items)
}
