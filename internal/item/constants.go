package item

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the name of the items configuration file
	ConfigFileName = "items.json"

	// DefaultConfigPath is where the simulator looks for the catalog
	DefaultConfigPath = "configs/items.json"

	// ItemsSchemaPath is the JSON schema every items file must satisfy
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailedFmt      = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemAtIndexInvalid    = "%w: item at index %d: %v"
	ErrFmtItemConsumableUses    = "%w: item '%s' cannot be consumable and have max_uses"
	ErrFmtItemFlashlightStacked = "%w: flashlight item '%s' must not stack"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
