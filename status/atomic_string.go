package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps status bar labels in bytes
const MaxStringLen = 20

// AtomicString holds a short label, e.g. the window mode or selected role
// Zero value reads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store replaces the label, cut at the last rune boundary within MaxStringLen
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the label
func (s *AtomicString) Load() string {
	p := s.ptr.Load()
	if p == nil {
		return ""
	}
	return *p
}
