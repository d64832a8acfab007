package domain

// Item internal name constants for the items shipped in configs/items.json
const (
	ItemFlashlight = "flashlight"
	ItemBattery    = "battery"
	ItemPills      = "sanity_pills"
	ItemMedkit     = "medkit"
	ItemBandage    = "bandage"
	ItemRustyKey   = "key_rusty"
	ItemLighter    = "lighter"
	ItemCrowbar    = "crowbar"
)

// Inventory defaults
const (
	DefaultMaxSlots       = 12
	DefaultQuickbarSize   = 4
	DefaultFlashlightSlot = 0
)

// Character defaults
const (
	DefaultMaxSanity      = 100.0
	DefaultBatteryMax     = 100.0
	DefaultBatteryDrain   = 0.5 // per second while the flashlight is on
	DefaultHandSocketName = "hand_r"
)
