package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.added")
const (
	// EventTypeInventoryUpdated is published after any change to the inventory or quickbar
	EventTypeInventoryUpdated = "inventory.updated"

	// EventTypeItemAdded is published with the quantity that actually fit
	EventTypeItemAdded = "item.added"

	// EventTypeItemRemoved is published when units leave the inventory
	EventTypeItemRemoved = "item.removed"

	// EventTypeItemUsed is published for every use attempt of a known item
	EventTypeItemUsed = "item.used"

	// EventTypeItemEquipped is published once the hand attach succeeded
	EventTypeItemEquipped = "item.equipped"

	// EventTypeItemUnequipped carries the id of the item that was held
	EventTypeItemUnequipped = "item.unequipped"

	// EventTypeItemCooldownUpdated is published when a slot cooldown starts or ticks
	EventTypeItemCooldownUpdated = "item.cooldown_updated"
)
