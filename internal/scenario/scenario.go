package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ActionType defines the type of action in a scenario step
type ActionType string

const (
	// Inventory store
	ActionAddItem       ActionType = "add_item"
	ActionRemoveItem    ActionType = "remove_item"
	ActionUseItem       ActionType = "use_item"
	ActionSwapInventory ActionType = "swap_inventory"
	ActionClear         ActionType = "clear"

	// Quickbar
	ActionAssignQuickbar  ActionType = "assign_quickbar"
	ActionRemoveQuickbar  ActionType = "remove_quickbar"
	ActionSwapQuickbar    ActionType = "swap_quickbar"
	ActionMoveToQuickbar  ActionType = "move_to_quickbar"
	ActionMoveToInventory ActionType = "move_to_inventory"

	// Equipment
	ActionEquip       ActionType = "equip"
	ActionUnequip     ActionType = "unequip"
	ActionUseEquipped ActionType = "use_equipped"
	ActionDrop        ActionType = "drop"

	// World and time
	ActionTick   ActionType = "tick"
	ActionPickup ActionType = "pickup"
)

// AssertionType defines the type of assertion
type AssertionType string

const (
	AssertEquals      AssertionType = "equals"
	AssertGreaterThan AssertionType = "greater_than"
	AssertLessThan    AssertionType = "less_than"
	AssertBetween     AssertionType = "between"
	AssertContains    AssertionType = "contains" // case-insensitive
	AssertEmpty       AssertionType = "empty"
	AssertNotEmpty    AssertionType = "not_empty"
	AssertTrue        AssertionType = "true"
	AssertFalse       AssertionType = "false"
)

var assertionTypes = map[AssertionType]bool{
	AssertEquals: true, AssertGreaterThan: true, AssertLessThan: true, AssertBetween: true,
	AssertContains: true, AssertEmpty: true, AssertNotEmpty: true, AssertTrue: true, AssertFalse: true,
}

// Scenario is a scripted sequence of inventory actions
type Scenario struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []Step `yaml:"steps" json:"steps"`
}

// Step defines a single step within a scenario
type Step struct {
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Action      ActionType             `yaml:"action" json:"action"`
	Parameters  map[string]interface{} `yaml:"params,omitempty" json:"params,omitempty"`
	Assertions  []Assertion            `yaml:"assertions,omitempty" json:"assertions,omitempty"`
}

// Assertion defines an expected outcome for a step
type Assertion struct {
	Type   AssertionType `yaml:"type" json:"type"`
	Path   string        `yaml:"path" json:"path"` // see ParseField
	Value  any           `yaml:"value,omitempty" json:"value,omitempty"`
	Min    any           `yaml:"min,omitempty" json:"min,omitempty"`
	Max    any           `yaml:"max,omitempty" json:"max,omitempty"`
	Reason string        `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Parse decodes a YAML scenario and checks its shape
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a scenario script
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks that the scenario is runnable
func (s *Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidScenario)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: %s has no steps", ErrInvalidScenario, s.ID)
	}
	for i, step := range s.Steps {
		if step.Action == "" {
			return fmt.Errorf("%w: step %d has no action", ErrInvalidScenario, i)
		}
		for _, a := range step.Assertions {
			if !assertionTypes[a.Type] {
				return fmt.Errorf("%w: step %d: unknown assertion type %q", ErrInvalidScenario, i, a.Type)
			}
			if _, err := ParseField(a.Path); err != nil {
				return fmt.Errorf("%w: step %d: %w", ErrInvalidScenario, i, err)
			}
		}
	}
	return nil
}
