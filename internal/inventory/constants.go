package inventory

// Sound cues handed to the SoundPlayer hook
const (
	SoundCuePickup = "inventory.pickup"
	SoundCueUse    = "inventory.use"
	SoundCueDrop   = "inventory.drop"
)

// Log messages
const (
	LogMsgComponentCreated = "Inventory component created"
	LogMsgAddRejected      = "AddItem rejected"
	LogMsgAddPartial       = "Inventory full, item only partially added"
	LogMsgRemoveRejected   = "RemoveItem rejected"
	LogMsgQuickbarCleared  = "Cleared stale quickbar slot"
	LogMsgAttachFailed     = "Equip target refused item"
	LogMsgUseRejected      = "Item use rejected"
	LogMsgEffectFailed     = "Item effect failed"
	LogMsgCooldownBypass   = "Cooldown bypassed"
	LogMsgInventoryCleared = "Inventory cleared"
)
