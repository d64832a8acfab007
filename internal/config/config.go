package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/Dreadlight_Go/internal/inventory"
)

// ErrInvalidConfig wraps every validation failure returned by Load
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	ServiceName string `validate:"required"`
	Version     string
	Port        int `validate:"min=1,max=65535"`

	// APIKey protects the inspector API when set
	APIKey         string
	TrustedProxies []string `validate:"dive,ip"`

	ItemsConfigPath string `validate:"required"`
	AliasesPath     string
	ThemesPath      string
	ScenarioPath    string

	MaxSlots        int `validate:"min=1,max=256"`
	QuickbarSize    int `validate:"min=1,max=16"`
	FlashlightSlot  int `validate:"gte=0,ltfield=QuickbarSize"`
	TickRateHz      int `validate:"min=1,max=240"`
	CooldownDevMode bool
}

var configValidator = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:        getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:          getEnv("LOG_DIR", DefaultLogDir),
		ServiceName:     getEnv("SERVICE_NAME", DefaultServiceName),
		Version:         getEnv("VERSION", DefaultVersion),
		ItemsConfigPath: getEnv("ITEMS_CONFIG_PATH", ConfigPathItems),
		AliasesPath:     getEnv("ITEM_ALIASES_PATH", ConfigPathItemAliases),
		ThemesPath:      getEnv("ITEM_THEMES_PATH", ConfigPathItemThemes),
		ScenarioPath:    getEnv("SCENARIO_PATH", ""),
		APIKey:          getEnv("API_KEY", ""),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		MaxSlots:        getEnvAsInt("INVENTORY_MAX_SLOTS", DefaultMaxSlots),
		QuickbarSize:    getEnvAsInt("QUICKBAR_SIZE", DefaultQuickbarSize),
		FlashlightSlot:  getEnvAsInt("FLASHLIGHT_SLOT", DefaultFlashlightSlot),
		TickRateHz:      getEnvAsInt("TICK_RATE_HZ", DefaultTickRateHz),
		CooldownDevMode: getEnvAsBool("COOLDOWN_DEV_MODE", false),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its tag
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// InventoryConfig returns the sizing for the inventory component
func (c *Config) InventoryConfig() inventory.Config {
	return inventory.Config{
		MaxSlots:       c.MaxSlots,
		QuickbarSize:   c.QuickbarSize,
		FlashlightSlot: c.FlashlightSlot,
	}
}

// TickInterval is the frame period derived from TickRateHz
func (c *Config) TickInterval() time.Duration {
	if c.TickRateHz <= 0 {
		return time.Second / DefaultTickRateHz
	}
	return time.Second / time.Duration(c.TickRateHz)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated value, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
