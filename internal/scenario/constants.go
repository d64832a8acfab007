package scenario

// Log messages
const (
	LogMsgScenarioCompleted = "Scenario completed"
	LogMsgStepFailed        = "Scenario step failed"
)

// Step parameter names
const (
	ParamItem           = "item"
	ParamQuantity       = "quantity"
	ParamIndex          = "index"
	ParamA              = "a"
	ParamB              = "b"
	ParamInventoryIndex = "inventory_index"
	ParamQuickbarIndex  = "quickbar_index"
	ParamSeconds        = "seconds"
)

// DroppedByScenario marks pickups placed by a pickup step
const DroppedByScenario = "scenario"
