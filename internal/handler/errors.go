package handler

// Generic HTTP error messages for client responses
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgReloadConfigFailed    = "Failed to reload configuration"
)

// Operation names used in logs and success messages
const (
	OpGetInventory    = "Get inventory"
	OpAddItem         = "Add item"
	OpRemoveItem      = "Remove item"
	OpUseItem         = "Use item"
	OpSwapInventory   = "Swap inventory slots"
	OpClearInventory  = "Clear inventory"
	OpAssignQuickbar  = "Assign quickbar slot"
	OpRemoveQuickbar  = "Remove quickbar slot"
	OpSwapQuickbar    = "Swap quickbar slots"
	OpEquip           = "Equip quickbar slot"
	OpMoveToQuickbar  = "Move to quickbar"
	OpMoveToInventory = "Move to inventory"
	OpUseEquipped     = "Use equipped item"
	OpDropEquipped    = "Drop equipped item"
	OpUnequip         = "Unequip"
	OpListPickups     = "List pickups"
	OpCollectPickup   = "Collect pickup"
	OpReloadAliases   = "Reload aliases"
)

// Success messages for API responses
const (
	MsgActionSuccessFormat   = "%s succeeded"
	MsgConfigReloadedSuccess = "Alias configuration reloaded successfully"
)
