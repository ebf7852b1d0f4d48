// Package input maps key presses to camera configuration actions
package input

// Action is a semantic command decoded from a key press
type Action uint8

const (
	ActionNone Action = iota

	// Target selection
	ActionSelectForeground
	ActionSelectScene
	ActionSelectBackground

	// Mutations on the selected camera
	ActionToggleActive
	ActionCyclePriority
	ActionCycleLayer

	// Window routing
	ActionToggleWindowMode

	// Host
	ActionQuit

	actionCount
)

// String returns the canonical action name
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// legendOrder lists actions in the order the startup legend prints them
var legendOrder = []Action{
	ActionSelectForeground,
	ActionSelectScene,
	ActionSelectBackground,
	ActionToggleActive,
	ActionCyclePriority,
	ActionCycleLayer,
	ActionToggleWindowMode,
}

var legendText = map[Action]string{
	ActionSelectForeground: "choose Foreground Camera as the target",
	ActionSelectScene:      "choose Scene Camera as the target",
	ActionSelectBackground: "choose Background Camera as the target",
	ActionToggleActive:     "change is_active of the target",
	ActionCyclePriority:    "change priority of the target",
	ActionCycleLayer:       "change layer of the target",
	ActionToggleWindowMode: "multi window mode",
}
