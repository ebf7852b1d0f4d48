package input

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyNames resolves lower-cased tcell key names ("esc", "ctrl-c", "f1")
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the on-disk keymap layout
//
//	[keys]
//	x = "toggle_active"
//	"8" = "toggle_active"
//	f = "none"          # unbind
//
//	[special]
//	F2 = "toggle_window_mode"
type keymapFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in the TOML are populated
// Returns error on unknown sections, action names, key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Runes: make(map[rune]Action, len(f.Keys)),
		Keys:  make(map[tcell.Key]Action, len(f.Special)),
	}

	for keyStr, actionName := range f.Keys {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action: %q", keyStr, actionName)
		}
		kt.Runes[r] = a
	}

	for keyStr, actionName := range f.Special {
		k, ok := keyNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
		}
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[special] key %q: unknown action: %q", keyStr, actionName)
		}
		kt.Keys[k] = a
	}

	return kt, nil
}

// LoadKeyConfigFile reads a keymap file and merges it over the defaults
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// resolveRune converts a TOML key string to a lower-cased rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return unicode.ToLower(runes[0]), nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeyTable returns a new KeyTable with base bindings overridden
// Override entries bound to ActionNone ("none") delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Keys, override.Keys)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
