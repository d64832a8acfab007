package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Inventory event types
const (
	InventoryUpdated    Type = domain.EventTypeInventoryUpdated
	ItemAdded           Type = domain.EventTypeItemAdded
	ItemRemoved         Type = domain.EventTypeItemRemoved
	ItemUsed            Type = domain.EventTypeItemUsed
	ItemEquipped        Type = domain.EventTypeItemEquipped
	ItemUnequipped      Type = domain.EventTypeItemUnequipped
	ItemCooldownUpdated Type = domain.EventTypeItemCooldownUpdated
)

// AllInventoryTypes lists every event the inventory component publishes
var AllInventoryTypes = []Type{
	InventoryUpdated,
	ItemAdded,
	ItemRemoved,
	ItemUsed,
	ItemEquipped,
	ItemUnequipped,
	ItemCooldownUpdated,
}

// Typed event payloads for type safety

// InventoryUpdatedPayloadV1 carries no data beyond the owner
type InventoryUpdatedPayloadV1 struct {
	OwnerID   string `json:"owner_id"`
	Timestamp int64  `json:"timestamp"`
}

// ItemQuantityPayloadV1 is shared by item.added and item.removed
type ItemQuantityPayloadV1 struct {
	OwnerID  string `json:"owner_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// ItemUsedPayloadV1 is the typed payload for item.used
type ItemUsedPayloadV1 struct {
	OwnerID string `json:"owner_id"`
	ItemID  string `json:"item_id"`
	Success bool   `json:"success"`
}

// ItemEquipPayloadV1 is shared by item.equipped and item.unequipped.
// QuickbarIndex is -1 on unequip.
type ItemEquipPayloadV1 struct {
	OwnerID       string `json:"owner_id"`
	ItemID        string `json:"item_id"`
	QuickbarIndex int    `json:"quickbar_index"`
}

// ItemCooldownPayloadV1 is the typed payload for item.cooldown_updated
type ItemCooldownPayloadV1 struct {
	OwnerID   string        `json:"owner_id"`
	ItemID    string        `json:"item_id"`
	Remaining time.Duration `json:"remaining"`
	Max       time.Duration `json:"max"`
}

// Type-safe event constructors

// NewInventoryUpdatedEvent creates an inventory.updated event
func NewInventoryUpdatedEvent(ownerID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InventoryUpdated,
		Payload: InventoryUpdatedPayloadV1{
			OwnerID:   ownerID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemAddedEvent creates an item.added event for the quantity that was placed
func NewItemAddedEvent(ownerID, itemID string, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemAdded,
		Payload: ItemQuantityPayloadV1{OwnerID: ownerID, ItemID: itemID, Quantity: quantity},
	}
}

// NewItemRemovedEvent creates an item.removed event
func NewItemRemovedEvent(ownerID, itemID string, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemRemoved,
		Payload: ItemQuantityPayloadV1{OwnerID: ownerID, ItemID: itemID, Quantity: quantity},
	}
}

// NewItemUsedEvent creates an item.used event
func NewItemUsedEvent(ownerID, itemID string, success bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUsed,
		Payload: ItemUsedPayloadV1{OwnerID: ownerID, ItemID: itemID, Success: success},
	}
}

// NewItemEquippedEvent creates an item.equipped event
func NewItemEquippedEvent(ownerID, itemID string, quickbarIndex int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemEquipped,
		Payload: ItemEquipPayloadV1{OwnerID: ownerID, ItemID: itemID, QuickbarIndex: quickbarIndex},
	}
}

// NewItemUnequippedEvent creates an item.unequipped event carrying the previous item id
func NewItemUnequippedEvent(ownerID, itemID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUnequipped,
		Payload: ItemEquipPayloadV1{OwnerID: ownerID, ItemID: itemID, QuickbarIndex: domain.NoQuickbarIndex},
	}
}

// NewItemCooldownEvent creates an item.cooldown_updated event
func NewItemCooldownEvent(ownerID, itemID string, remaining, max time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemCooldownUpdated,
		Payload: ItemCooldownPayloadV1{OwnerID: ownerID, ItemID: itemID, Remaining: remaining, Max: max},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order; every handler runs even
// if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
