package character

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// ErrHandsBusy is returned by AttachItem while the character cannot hold anything
var ErrHandsBusy = errors.New("hands are busy")

// Config holds the character's tunables
type Config struct {
	MaxSanity         float64
	SanityDrainInDark float64
	BatteryMax        float64
	BatteryDrain      float64
	HandSocket        string
}

// DefaultConfig returns the stock survivor
func DefaultConfig() Config {
	return Config{
		MaxSanity:         domain.DefaultMaxSanity,
		SanityDrainInDark: DefaultSanityDrainInDark,
		BatteryMax:        domain.DefaultBatteryMax,
		BatteryDrain:      domain.DefaultBatteryDrain,
		HandSocket:        domain.DefaultHandSocketName,
	}
}

// State is a read-only view of a Character
type State struct {
	ID           string   `json:"id"`
	Sanity       float64  `json:"sanity"`
	MaxSanity    float64  `json:"max_sanity"`
	Battery      float64  `json:"battery"`
	FlashlightOn bool     `json:"flashlight_on"`
	HandSocket   string   `json:"hand_socket"`
	HandItem     string   `json:"hand_item,omitempty"`
	HandsBusy    bool     `json:"hands_busy"`
	UsedKeys     []string `json:"used_keys,omitempty"`
	LastSound    string   `json:"last_sound,omitempty"`
}

// Character is the headless owner of an inventory. It receives item
// effects, holds the equipped item and plays sounds.
type Character struct {
	id         string
	cfg        Config
	sanity     float64
	flashlight *Flashlight
	handItem   string
	handsBusy  bool
	usedKeys   []string
	lastSound  string
}

// New creates a character at full sanity
func New(id string, cfg Config) *Character {
	return &Character{
		id:         id,
		cfg:        cfg,
		sanity:     cfg.MaxSanity,
		flashlight: NewFlashlight(cfg.BatteryMax, cfg.BatteryDrain),
	}
}

func (c *Character) ID() string              { return c.id }
func (c *Character) Sanity() float64         { return c.sanity }
func (c *Character) Flashlight() *Flashlight { return c.flashlight }
func (c *Character) HandItem() string        { return c.handItem }

// SetHandsBusy blocks or allows attaching items
func (c *Character) SetHandsBusy(busy bool) {
	c.handsBusy = busy
}

// DrainSanity lowers sanity, clamped at zero
func (c *Character) DrainSanity(amount float64) {
	c.sanity = max(0, c.sanity-max(0, amount))
}

// RestoreSanity raises sanity, clamped at the maximum
func (c *Character) RestoreSanity(ctx context.Context, amount float64) {
	c.sanity = min(c.cfg.MaxSanity, c.sanity+max(0, amount))
	logger.FromContext(ctx).Debug(LogMsgSanityRestored, "character_id", c.id, "amount", amount, "sanity", c.sanity)
}

// RechargeBattery tops up the flashlight; a full battery refuses the charge
func (c *Character) RechargeBattery(ctx context.Context, amount float64) error {
	if err := c.flashlight.Recharge(amount); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgBatteryRecharge, "character_id", c.id, "battery", c.flashlight.Battery())
	return nil
}

// UseKey records that a key was used
func (c *Character) UseKey(ctx context.Context, keyID string) error {
	if keyID == "" {
		return fmt.Errorf("%w: empty key id", domain.ErrInvalidInput)
	}
	c.usedKeys = append(c.usedKeys, keyID)
	logger.FromContext(ctx).Info(LogMsgKeyUsed, "character_id", c.id, "key_id", keyID)
	return nil
}

// AttachItem puts item in the hand socket. Flashlights switch on when
// they have charge.
func (c *Character) AttachItem(ctx context.Context, item domain.Item) error {
	if c.handsBusy {
		return ErrHandsBusy
	}
	c.handItem = item.ID
	if item.IsFlashlight() {
		// a dead flashlight can still be held
		_ = c.flashlight.TurnOn()
	}
	logger.FromContext(ctx).Debug(LogMsgItemAttached, "character_id", c.id, "item_id", item.ID, "socket", c.cfg.HandSocket)
	return nil
}

// DetachItem empties the hand socket and switches the light off
func (c *Character) DetachItem(ctx context.Context, itemID string) {
	c.handItem = ""
	c.flashlight.TurnOff()
	logger.FromContext(ctx).Debug(LogMsgItemDetached, "character_id", c.id, "item_id", itemID)
}

// PlaySound logs the cue
func (c *Character) PlaySound(ctx context.Context, cue, itemID string) {
	c.lastSound = cue
	logger.FromContext(ctx).Debug(LogMsgSoundPlayed, "character_id", c.id, "cue", cue, "item_id", itemID)
}

// Tick drains the flashlight and, in the dark, sanity
func (c *Character) Tick(ctx context.Context, dt time.Duration) {
	if dt <= 0 {
		return
	}
	if c.flashlight.Tick(dt) {
		logger.FromContext(ctx).Info(LogMsgBatteryDepleted, "character_id", c.id)
	}
	if !c.flashlight.IsOn() {
		c.DrainSanity(c.cfg.SanityDrainInDark * dt.Seconds())
	}
}

// State returns a snapshot of the character
func (c *Character) State() State {
	return State{
		ID:           c.id,
		Sanity:       c.sanity,
		MaxSanity:    c.cfg.MaxSanity,
		Battery:      c.flashlight.Battery(),
		FlashlightOn: c.flashlight.IsOn(),
		HandSocket:   c.cfg.HandSocket,
		HandItem:     c.handItem,
		HandsBusy:    c.handsBusy,
		UsedKeys:     slices.Clone(c.usedKeys),
		LastSound:    c.lastSound,
	}
}
