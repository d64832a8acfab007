package config

const (
	// Configuration file paths
	ConfigPathItems        = "configs/items.json"
	ConfigPathItemAliases  = "configs/item_aliases.json"
	ConfigPathItemThemes   = "configs/item_themes.json"
	ConfigPathScenariosDir = "configs/scenarios/"
)

// Defaults applied when the variable is unset
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogDir         = "logs"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "dreadlight"
	DefaultVersion        = "dev"
	DefaultMaxSlots       = 12
	DefaultQuickbarSize   = 4
	DefaultFlashlightSlot = 0
	DefaultTickRateHz     = 30
)
