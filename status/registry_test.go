package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMap_GetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyCommands)
	b := r.Ints.Get(KeyCommands)
	assert.Same(t, a, b)
	assert.True(t, r.Ints.Has(KeyCommands))
	assert.False(t, r.Ints.Has(KeyErrors))
}

func TestMetricMap_ConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyFrames).Add(1)
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 16, r.Ints.Get(KeyFrames).Load())
	assert.Equal(t, 1, r.Ints.Count())
}

func TestRegistry_Line(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyWindowMode).Store("single")
	r.Ints.Get(KeyWindowToggles).Store(2)
	r.Ints.Get(KeyCommands).Store(5)
	r.Bools.Get(KeyAudio).Store(true)

	assert.Equal(t, "window.mode=single command.count=5 window.toggles=2 audio.enabled=true", r.Line())
	assert.Equal(t, 4, r.TotalCount())
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("this string is longer than twenty")
	assert.Len(t, s.Load(), MaxStringLen)
}

func TestAtomicFloat_Smooth(t *testing.T) {
	var f AtomicFloat
	assert.InDelta(t, 10.0, f.Smooth(10, 0.5), 1e-9)
	assert.InDelta(t, 15.0, f.Smooth(20, 0.5), 1e-9)
	f.Set(1)
	assert.InDelta(t, 1.0, f.Get(), 1e-9)
}

func TestAtomicString_TruncatesOnRuneBoundary(t *testing.T) {
	var s AtomicString
	// 19 ASCII bytes then a 2-byte rune straddling the cap
	s.Store("abcdefghijklmnopqrsé")
	assert.Equal(t, "abcdefghijklmnopqrs", s.Load())
}
