package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/layercam/window"
)

func TestNextPriority_ThreeCycle(t *testing.T) {
	for start := 0; start < PriorityRange; start++ {
		p := start
		seen := map[int]bool{}
		for i := 0; i < 3; i++ {
			p = NextPriority(p)
			assert.True(t, ValidPriority(p), "priority %d escaped range", p)
			assert.Equal(t, start%PriorityStep, p%PriorityStep, "tier offset changed")
			seen[p] = true
		}
		assert.Equal(t, start, p, "start %d did not return after 3 steps", start)
		assert.Len(t, seen, 3)
	}
}

func TestNextPriority_TierValues(t *testing.T) {
	p := 0
	var got []int
	for i := 0; i < 6; i++ {
		p = NextPriority(p)
		got = append(got, p)
	}
	assert.Equal(t, []int{3, 6, 0, 3, 6, 0}, got)
}

func TestNextLayer_SixCycle(t *testing.T) {
	for start := 0; start < LayerCount; start++ {
		l := start
		for i := 0; i < LayerCount; i++ {
			l = NextLayer(l)
			assert.True(t, ValidLayer(l))
		}
		assert.Equal(t, start, l)
	}
}

func TestTierLabel(t *testing.T) {
	cases := map[int]string{0: "high", 2: "high", 3: "mid", 5: "mid", 6: "low", 8: "low", 9: "invalid", -1: "invalid", -2: "invalid", -3: "invalid"}
	for p, want := range cases {
		assert.Equal(t, want, TierLabel(p), "priority %d", p)
	}
}

func TestTier_OutOfRange(t *testing.T) {
	// Integer division truncates toward zero; -1 and -2 must not land in tier 0
	for _, p := range []int{-2, -1, 9, 12} {
		assert.Equal(t, -1, Tier(p), "priority %d", p)
	}
	assert.Equal(t, 0, Tier(0))
	assert.Equal(t, 1, Tier(5))
	assert.Equal(t, 2, Tier(8))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("scene")
	require.NoError(t, err)
	assert.Equal(t, Scene, r)

	r, err = ParseRole("FOREGROUND")
	require.NoError(t, err)
	assert.Equal(t, Foreground, r)

	_, err = ParseRole("sidebar")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ParseRole("None")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Background", Background.String())
	assert.Equal(t, "None", RoleNone.String())
	assert.Equal(t, "Role(42)", Role(42).String())
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []Role{Scene, Background, Foreground}, r.Roles())

	for _, c := range r.Snapshot() {
		assert.True(t, c.Active)
		assert.True(t, c.Target.IsPrimary())
	}

	s, err := r.Get(Scene)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Priority)
	assert.Equal(t, 2, s.Layer)
}

func TestRegistry_NotFound(t *testing.T) {
	r, err := NewRegistry(Camera{Role: Scene, Priority: 0, Active: true, Layer: 2})
	require.NoError(t, err)

	_, err = r.Get(Foreground)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.SetActive(Foreground, false), ErrNotFound)
	assert.ErrorIs(t, r.SetPriority(Foreground, 3), ErrNotFound)
	assert.ErrorIs(t, r.SetLayer(Foreground, 1), ErrNotFound)
	assert.ErrorIs(t, r.SetTarget(Foreground, window.Primary()), ErrNotFound)
	assert.False(t, r.Has(Foreground))
}

func TestNewRegistry_Rejects(t *testing.T) {
	_, err := NewRegistry(Camera{Role: Scene}, Camera{Role: Scene})
	assert.Error(t, err)

	_, err = NewRegistry(Camera{Role: RoleNone})
	assert.Error(t, err)

	_, err = NewRegistry(Camera{Role: Scene, Priority: 9})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewRegistry(Camera{Role: Scene, Layer: 6})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRegistry_SettersValidate(t *testing.T) {
	r := DefaultRegistry()

	assert.ErrorIs(t, r.SetPriority(Scene, 9), ErrOutOfRange)
	assert.ErrorIs(t, r.SetPriority(Scene, -3), ErrOutOfRange)
	assert.ErrorIs(t, r.SetLayer(Scene, 6), ErrOutOfRange)

	s, _ := r.Get(Scene)
	assert.Equal(t, 2, s.Priority)
	assert.Equal(t, 2, s.Layer)

	require.NoError(t, r.SetPriority(Scene, 5))
	require.NoError(t, r.SetLayer(Scene, 0))
	require.NoError(t, r.SetActive(Scene, false))
	h := window.NewHandle()
	require.NoError(t, r.SetTarget(Scene, window.Dedicated(h)))

	s, _ = r.Get(Scene)
	assert.Equal(t, 5, s.Priority)
	assert.Equal(t, 0, s.Layer)
	assert.False(t, s.Active)
	got, ok := s.Target.Handle()
	require.True(t, ok)
	assert.Equal(t, h, got)
}

func TestRegistry_PublishIsolation(t *testing.T) {
	r := DefaultRegistry()
	before := r.Published()
	require.Len(t, before, 3)

	require.NoError(t, r.SetActive(Scene, false))
	assert.True(t, r.Published()[0].Active, "unpublished change leaked to readers")

	r.Publish()
	assert.False(t, r.Published()[0].Active)
	assert.True(t, before[0].Active, "earlier snapshot was mutated")
}

func TestRegistry_SnapshotIsCopy(t *testing.T) {
	r := DefaultRegistry()
	snap := r.Snapshot()
	snap[0].Layer = 5

	s, _ := r.Get(Scene)
	assert.Equal(t, 2, s.Layer)
}
