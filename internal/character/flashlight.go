package character

import (
	"errors"
	"time"
)

var (
	ErrBatteryFull = errors.New("battery already full")
	ErrBatteryDead = errors.New("battery is dead")
)

// Flashlight is the character's light source. Its battery drains while
// it is on and it switches itself off when empty.
type Flashlight struct {
	battery    float64
	maxBattery float64
	drainRate  float64 // per second
	on         bool
}

// NewFlashlight returns a fully charged flashlight that is off
func NewFlashlight(maxBattery, drainPerSecond float64) *Flashlight {
	return &Flashlight{battery: maxBattery, maxBattery: maxBattery, drainRate: drainPerSecond}
}

func (f *Flashlight) Battery() float64    { return f.battery }
func (f *Flashlight) MaxBattery() float64 { return f.maxBattery }
func (f *Flashlight) IsOn() bool          { return f.on }

// TurnOn fails on a dead battery
func (f *Flashlight) TurnOn() error {
	if f.battery <= 0 {
		return ErrBatteryDead
	}
	f.on = true
	return nil
}

func (f *Flashlight) TurnOff() {
	f.on = false
}

// Recharge adds amount, capped at the maximum
func (f *Flashlight) Recharge(amount float64) error {
	if f.battery >= f.maxBattery {
		return ErrBatteryFull
	}
	f.battery = min(f.maxBattery, f.battery+max(0, amount))
	return nil
}

// Tick drains the battery. It reports true when the battery ran out
// during this tick.
func (f *Flashlight) Tick(dt time.Duration) bool {
	if !f.on || dt <= 0 {
		return false
	}
	f.battery -= f.drainRate * dt.Seconds()
	if f.battery > 0 {
		return false
	}
	f.battery = 0
	f.on = false
	return true
}
