package input

import "strings"

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"select_foreground":  ActionSelectForeground,
	"select_scene":       ActionSelectScene,
	"select_background":  ActionSelectBackground,
	"toggle_active":      ActionToggleActive,
	"cycle_priority":     ActionCyclePriority,
	"cycle_layer":        ActionCycleLayer,
	"toggle_window_mode": ActionToggleWindowMode,
	"quit":               ActionQuit,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

// ActionByName resolves a canonical action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}
