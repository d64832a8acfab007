package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgItemNotHeld  = "item not in inventory"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInventoryFull        = "inventory is full"
	ErrMsgInvalidSlot          = "slot index out of range"
	ErrMsgSlotEmpty            = "slot is empty"

	// Equip errors
	ErrMsgNothingEquipped = "nothing equipped"
	ErrMsgAttachFailed    = "failed to attach item"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Input errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidQuantity = "quantity must be positive"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrItemNotHeld  = errors.New(ErrMsgItemNotHeld)

	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInventoryFull        = errors.New(ErrMsgInventoryFull)
	ErrInvalidSlot          = errors.New(ErrMsgInvalidSlot)
	ErrSlotEmpty            = errors.New(ErrMsgSlotEmpty)

	ErrNothingEquipped = errors.New(ErrMsgNothingEquipped)
	ErrAttachFailed    = errors.New(ErrMsgAttachFailed)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
)
