package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultKeyTable_LetterAndDigit(t *testing.T) {
	kt := DefaultKeyTable()
	cases := []struct {
		letter, digit rune
		want          Action
	}{
		{'f', '1', ActionSelectForeground},
		{'s', '2', ActionSelectScene},
		{'b', '3', ActionSelectBackground},
		{'a', '4', ActionToggleActive},
		{'p', '5', ActionCyclePriority},
		{'l', '6', ActionCycleLayer},
		{'m', '7', ActionToggleWindowMode},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, kt.Lookup(runeKey(tc.letter)), "letter %q", tc.letter)
		assert.Equal(t, tc.want, kt.Lookup(runeKey(tc.letter-'a'+'A')), "upper %q", tc.letter)
		assert.Equal(t, tc.want, kt.Lookup(runeKey(tc.digit)), "digit %q", tc.digit)
	}

	assert.Equal(t, ActionNone, kt.Lookup(runeKey('z')))
	assert.Equal(t, ActionQuit, kt.Lookup(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestKeyTable_Legend(t *testing.T) {
	want := []string{
		"F or 1 - choose Foreground Camera as the target",
		"S or 2 - choose Scene Camera as the target",
		"B or 3 - choose Background Camera as the target",
		"A or 4 - change is_active of the target",
		"P or 5 - change priority of the target",
		"L or 6 - change layer of the target",
		"M or 7 - multi window mode",
	}
	assert.Equal(t, want, DefaultKeyTable().Legend())
}

func TestLoadKeyConfig_Override(t *testing.T) {
	data := []byte(`
[keys]
x = "toggle_active"
"8" = "Toggle_Active"
a = "none"
space = "cycle_layer"

[special]
F2 = "toggle_window_mode"
`)
	override, err := LoadKeyConfig(data)
	require.NoError(t, err)

	kt := MergeKeyTable(DefaultKeyTable(), override)
	assert.Equal(t, ActionToggleActive, kt.Lookup(runeKey('x')))
	assert.Equal(t, ActionToggleActive, kt.Lookup(runeKey('8')))
	assert.Equal(t, ActionToggleActive, kt.Lookup(runeKey('4')))
	assert.Equal(t, ActionNone, kt.Lookup(runeKey('a')))
	assert.Equal(t, ActionCycleLayer, kt.Lookup(runeKey(' ')))
	assert.Equal(t, ActionToggleWindowMode, kt.Lookup(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)))

	assert.Equal(t, "X or 4 or 8 - change is_active of the target", kt.Legend()[3])

	// Base is untouched
	assert.Equal(t, ActionToggleActive, DefaultKeyTable().Lookup(runeKey('a')))
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown action":  "[keys]\nx = \"explode\"\n",
		"long key":        "[keys]\nxy = \"quit\"\n",
		"unknown special": "[special]\nHyper = \"quit\"\n",
		"unknown section": "[mouse]\nleft = \"quit\"\n",
		"syntax":          "[keys\n",
	}
	for name, data := range cases {
		_, err := LoadKeyConfig([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestLoadKeyConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keys]\nq = \"quit\"\n"), 0o644))

	kt, err := LoadKeyConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, ActionQuit, kt.Lookup(runeKey('q')))
	assert.Equal(t, ActionSelectScene, kt.Lookup(runeKey('s')))

	_, err = LoadKeyConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestActionByName(t *testing.T) {
	a, ok := ActionByName(" Cycle_Priority ")
	require.True(t, ok)
	assert.Equal(t, ActionCyclePriority, a)
	assert.Equal(t, "cycle_priority", a.String())

	_, ok = ActionByName("fly")
	assert.False(t, ok)
}
