package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/layercam/audio"
	"github.com/lixenwraith/layercam/camera"
	"github.com/lixenwraith/layercam/status"
	"github.com/lixenwraith/layercam/window"
)

var errInjected = errors.New("injected failure")

// flakyBackend wraps a Headless backend and fails selected calls
type flakyBackend struct {
	*window.Headless
	failCreateAt int // 1-based create call to fail; 0 never
	failClose    bool
	creates      int
}

func (b *flakyBackend) Create(cfg window.Config) (window.Handle, error) {
	b.creates++
	if b.creates == b.failCreateAt {
		return window.Handle{}, errInjected
	}
	return b.Headless.Create(cfg)
}

func (b *flakyBackend) Close(h window.Handle) error {
	err := b.Headless.Close(h)
	if b.failClose {
		return errInjected
	}
	return err
}

type recordingCues struct {
	played []audio.Cue
}

func (r *recordingCues) Play(c audio.Cue) {
	r.played = append(r.played, c)
}

func TestToggleWindowMode_SingleToMulti(t *testing.T) {
	cues := &recordingCues{}
	e, s, backend := newTestEngine(t, WithCues(cues))

	tr, err := e.ToggleWindowMode(s)
	require.NoError(t, err)
	assert.Equal(t, Single, tr.From)
	assert.Equal(t, Multi, tr.To)
	assert.Equal(t, "window mode: multi (3 windows)", tr.String())
	assert.Equal(t, Multi, s.Mode)

	wins := backend.Windows()
	require.Len(t, wins, 3)
	base := backend.Base()
	wantTitles := []string{"Scene", "Background", "Foreground"}
	for i, w := range wins {
		assert.Equal(t, wantTitles[i], w.Config.Title)
		assert.Equal(t, base.Width, w.Config.Width)
		assert.Equal(t, base.Height, w.Config.Height)
		assert.InDelta(t, (base.Width+DefaultGap)*float64(i), w.Config.Position.X, 1e-9)
		assert.Equal(t, DefaultOffsetY, w.Config.Position.Y)
	}

	require.Len(t, s.Surfaces, 3)
	distinct := map[window.Handle]bool{}
	for _, role := range e.Registry().Roles() {
		h, ok := s.Surfaces[role]
		require.True(t, ok, "no surface for %s", role)
		distinct[h] = true

		got, ok := mustGet(t, e, role).Target.Handle()
		require.True(t, ok, "%s still on primary", role)
		assert.Equal(t, h, got)
	}
	assert.Len(t, distinct, 3)
	assert.NoError(t, s.Check(e.Registry().Roles()))

	assert.Equal(t, []audio.Cue{audio.CueWindowOpen}, cues.played)
	assert.Equal(t, "multi", e.Status().Strings.Get(status.KeyWindowMode).Load())
}

func TestToggleWindowMode_RoundTrip(t *testing.T) {
	e, s, backend := newTestEngine(t)

	_, err := e.ToggleWindowMode(s)
	require.NoError(t, err)

	// Commands while in multi mode keep their targets
	require.NoError(t, e.Select(s, camera.Background))
	_, _, err = e.CycleLayer(s)
	require.NoError(t, err)
	_, _, err = e.ToggleActive(s)
	require.NoError(t, err)
	bg := mustGet(t, e, camera.Background)
	assert.False(t, bg.Target.IsPrimary())

	tr, err := e.ToggleWindowMode(s)
	require.NoError(t, err)
	assert.Equal(t, Single, tr.To)
	assert.Len(t, tr.Windows, 3)
	assert.Equal(t, "window mode: single", tr.String())

	assert.Equal(t, Single, s.Mode)
	assert.Empty(t, s.Surfaces)
	assert.Equal(t, 0, backend.Len())
	for _, c := range e.Registry().Snapshot() {
		assert.True(t, c.Target.IsPrimary(), "%s not rebound", c.Role)
	}

	bg = mustGet(t, e, camera.Background)
	assert.Equal(t, 4, bg.Layer)
	assert.False(t, bg.Active)
	assert.EqualValues(t, 2, e.Status().Ints.Get(status.KeyWindowToggles).Load())
}

func TestToggleWindowMode_RepeatedCyclesAllocateFreshWindows(t *testing.T) {
	e, s, _ := newTestEngine(t)
	seen := map[window.Handle]bool{}
	for i := 0; i < 4; i++ {
		tr, err := e.ToggleWindowMode(s)
		require.NoError(t, err)
		for _, h := range tr.Windows {
			if tr.To == Multi {
				assert.False(t, seen[h], "handle reused")
				seen[h] = true
			}
		}
	}
	assert.Len(t, seen, 6)
	assert.Equal(t, Single, s.Mode)
}

func TestToggleWindowMode_CreateFailureRollsBack(t *testing.T) {
	backend := &flakyBackend{
		Headless:     window.NewHeadless(window.Config{Width: 100, Height: 80}),
		failCreateAt: 3,
	}
	e := New(camera.DefaultRegistry(), backend)
	s := NewState()

	tr, err := e.ToggleWindowMode(s)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, tr.From, tr.To)
	assert.Equal(t, Single, s.Mode)
	assert.Empty(t, s.Surfaces)
	assert.Equal(t, 0, backend.Len(), "opened windows not closed on rollback")
	for _, c := range e.Registry().Snapshot() {
		assert.True(t, c.Target.IsPrimary())
	}
	assert.Zero(t, e.Status().Ints.Get(status.KeyWindowToggles).Load())
}

func TestToggleWindowMode_MissingEntryIsInvariantViolation(t *testing.T) {
	e, s, backend := newTestEngine(t)
	_, err := e.ToggleWindowMode(s)
	require.NoError(t, err)

	delete(s.Surfaces, camera.Background)
	before := e.Registry().Snapshot()

	_, err = e.ToggleWindowMode(s)
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Equal(t, Multi, s.Mode)
	assert.Len(t, s.Surfaces, 2)
	assert.Equal(t, before, e.Registry().Snapshot())
	assert.Equal(t, 3, backend.Len(), "no window may close on an aborted toggle")
}

func TestToggleWindowMode_StaleEntriesInSingle(t *testing.T) {
	e, s, backend := newTestEngine(t)
	s.Surfaces[camera.Scene] = window.NewHandle()

	_, err := e.ToggleWindowMode(s)
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Equal(t, Single, s.Mode)
	assert.Equal(t, 0, backend.Len())
}

func TestToggleWindowMode_CloseFailureStillCompletes(t *testing.T) {
	backend := &flakyBackend{Headless: window.NewHeadless(window.Config{Width: 100, Height: 80})}
	e := New(camera.DefaultRegistry(), backend)
	s := NewState()

	_, err := e.ToggleWindowMode(s)
	require.NoError(t, err)

	backend.failClose = true
	tr, err := e.ToggleWindowMode(s)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, Single, tr.To)
	assert.Equal(t, Single, s.Mode)
	assert.Empty(t, s.Surfaces)
	for _, c := range e.Registry().Snapshot() {
		assert.True(t, c.Target.IsPrimary())
	}
}

func TestState_CheckDuplicateHandles(t *testing.T) {
	s := NewState()
	s.Mode = Multi
	h := window.NewHandle()
	roles := []camera.Role{camera.Scene, camera.Background, camera.Foreground}
	for _, r := range roles {
		s.Surfaces[r] = h
	}
	assert.ErrorIs(t, s.Check(roles), ErrInvariantViolation)

	s.Mode = WindowMode(9)
	assert.ErrorIs(t, s.Check(roles), ErrInvariantViolation)
}

func TestWithLayout(t *testing.T) {
	e, s, backend := newTestEngine(t, WithLayout(Layout{Gap: 5, OffsetY: 10}))
	_, err := e.ToggleWindowMode(s)
	require.NoError(t, err)

	wins := backend.Windows()
	require.Len(t, wins, 3)
	assert.InDelta(t, 2*(backend.Base().Width+5), wins[2].Config.Position.X, 1e-9)
	assert.Equal(t, 10.0, wins[0].Config.Position.Y)
}
