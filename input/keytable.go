package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
// Letter runes are stored lower-case and matched case-insensitively
type KeyTable struct {
	// Printable keys
	Runes map[rune]Action

	// Non-printable keys (Escape, Ctrl+*, function keys)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default bindings: a letter and a digit per action
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'f': ActionSelectForeground,
			'1': ActionSelectForeground,
			's': ActionSelectScene,
			'2': ActionSelectScene,
			'b': ActionSelectBackground,
			'3': ActionSelectBackground,
			'a': ActionToggleActive,
			'4': ActionToggleActive,
			'p': ActionCyclePriority,
			'5': ActionCyclePriority,
			'l': ActionCycleLayer,
			'6': ActionCycleLayer,
			'm': ActionToggleWindowMode,
			'7': ActionToggleWindowMode,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]Action, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
	}
	maps.Copy(c.Runes, kt.Runes)
	maps.Copy(c.Keys, kt.Keys)
	return c
}

// Lookup returns the action bound to a key event, ActionNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.Keys[ev.Key()]
}

// Bindings returns the runes bound to a, letters first then digits and symbols
func (kt *KeyTable) Bindings(a Action) []rune {
	var out []rune
	for r, bound := range kt.Runes {
		if bound == a {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(x, y rune) int {
		xl, yl := unicode.IsLetter(x), unicode.IsLetter(y)
		if xl != yl {
			if xl {
				return -1
			}
			return 1
		}
		return int(x - y)
	})
	return out
}

// Legend returns one line per configurable action, e.g.
// "F or 1 - choose Foreground Camera as the target"
// Actions with no rune binding are listed as unbound
func (kt *KeyTable) Legend() []string {
	lines := make([]string, 0, len(legendOrder))
	for _, a := range legendOrder {
		keys := kt.Bindings(a)
		if len(keys) == 0 {
			lines = append(lines, fmt.Sprintf("(unbound) - %s", legendText[a]))
			continue
		}
		names := make([]string, len(keys))
		for i, r := range keys {
			names[i] = string(unicode.ToUpper(r))
		}
		lines = append(lines, fmt.Sprintf("%s - %s", strings.Join(names, " or "), legendText[a]))
	}
	return lines
}
