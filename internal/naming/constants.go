package naming

// DateSeparator is the character used to separate month and day in MM-DD format
const DateSeparator = "-"

// DatePartsCount is the expected number of parts when splitting MM-DD format
const DatePartsCount = 2

// DateComparisonMultiplier builds comparable month/day values: (month * 100 + day)
const DateComparisonMultiplier = 100

// Configuration schema identifiers
const (
	SchemaItemAliases = "item-aliases"
	SchemaItemThemes  = "item-themes"
)

// Default config locations
const (
	DefaultAliasesPath = "configs/item_aliases.json"
	DefaultThemesPath  = "configs/item_themes.json"
)

// Resolution cache sizing
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * 60 // seconds
)

// Error context messages for wrapped errors during configuration loading
const (
	ErrContextFailedToLoadAliases = "failed to load aliases"
	ErrContextFailedToLoadThemes  = "failed to load themes"
	ErrContextFailedToParseConfig = "failed to parse config %s"
	ErrContextFailedToDecodeData  = "failed to decode data for %s"
)

// Configuration validation error messages
const (
	ErrMsgMissingVersionField = "%s missing version field"
	ErrMsgInvalidSchema       = "invalid schema in %s: expected '%s', got '%s'"
)
