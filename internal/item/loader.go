package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	InternalName    string    `json:"internal_name" validate:"required,max=64"`
	PublicName      string    `json:"public_name" validate:"required,max=64"`
	DefaultDisplay  string    `json:"default_display"`
	Description     string    `json:"description"`
	Category        string    `json:"category" validate:"required,oneof=flashlight tool key consumable misc"`
	MaxStack        int       `json:"max_stack" validate:"gte=0,lte=999"`
	MaxUses         int       `json:"max_uses" validate:"gte=0"`
	Consumable      bool      `json:"consumable"`
	CooldownSeconds float64   `json:"cooldown_seconds" validate:"gte=0"`
	Effect          EffectDef `json:"effect"`
	Tags            []string  `json:"tags"`
}

// EffectDef is the effect block of an item definition
type EffectDef struct {
	Kind   string  `json:"kind" validate:"omitempty,oneof=none restore_sanity recharge_battery unlock"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaPath      string
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader validating against ItemsSchemaPath
func NewLoader() Loader {
	return NewLoaderWithSchema(ItemsSchemaPath)
}

// NewLoaderWithSchema creates a Loader validating against the given schema file
func NewLoaderWithSchema(schemaPath string) Loader {
	return &itemLoader{
		schemaPath:      schemaPath,
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, errors.New("malformed JSON"))
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := l.validateItemDef(i, &config.Items[i], seen); err != nil {
			return err
		}
	}

	return nil
}

func (l *itemLoader) validateItemDef(index int, def *Def, seen map[string]bool) error {
	if err := l.validate.Struct(def); err != nil {
		return fmt.Errorf(ErrFmtItemAtIndexInvalid, ErrInvalidConfig, index, err)
	}

	if seen[def.InternalName] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateInternalName, def.InternalName)
	}
	seen[def.InternalName] = true

	if def.Consumable && def.MaxUses > 0 {
		return fmt.Errorf(ErrFmtItemConsumableUses, ErrInvalidConfig, def.InternalName)
	}
	if def.Category == string(domain.CategoryFlashlight) && def.MaxStack > 1 {
		return fmt.Errorf(ErrFmtItemFlashlightStacked, ErrInvalidConfig, def.InternalName)
	}

	return nil
}

// ToDomain converts a definition into catalog metadata
func (d Def) ToDomain() domain.Item {
	kind := domain.EffectKind(d.Effect.Kind)
	if kind == "" {
		kind = domain.EffectNone
	}

	display := d.DefaultDisplay
	if display == "" {
		display = d.PublicName
	}

	return domain.Item{
		ID:          d.InternalName,
		PublicName:  d.PublicName,
		DisplayName: display,
		Description: d.Description,
		Category:    domain.ItemCategory(d.Category),
		MaxStack:    d.MaxStack,
		MaxUses:     d.MaxUses,
		Consumable:  d.Consumable,
		Cooldown:    time.Duration(d.CooldownSeconds * float64(time.Second)),
		Effect:      domain.Effect{Kind: kind, Amount: d.Effect.Amount},
		Tags:        d.Tags,
	}
}
