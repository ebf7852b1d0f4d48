// Package camera holds the camera records and their composite ordering
package camera

import (
	"errors"

	"github.com/lixenwraith/layercam/window"
)

var (
	// ErrNotFound is returned for lookups of a role with no camera record
	ErrNotFound = errors.New("camera not found")
	// ErrOutOfRange is returned when a setter receives a value outside its cycle
	ErrOutOfRange = errors.New("value out of range")
)

const (
	// PriorityStep is the distance between priority tiers
	PriorityStep = 3
	// PriorityRange bounds priorities to [0, PriorityRange)
	PriorityRange = 9
	// LayerCount bounds layers to [0, LayerCount)
	LayerCount = 6
)

var tierLabels = [...]string{"high", "mid", "low"}

// Camera is one logical rendering surface
type Camera struct {
	Role     Role
	Priority int // composite order key, lower composites first
	Active   bool
	Layer    int
	Target   window.Target
}

// NextPriority advances p by one tier, wrapping within the range
// Offsets within a tier (p % PriorityStep) are preserved
func NextPriority(p int) int {
	return (p + PriorityStep) % PriorityRange
}

// NextLayer advances l by one, wrapping at LayerCount
func NextLayer(l int) int {
	return (l + 1) % LayerCount
}

// Tier returns 0, 1 or 2 for a priority in range, -1 otherwise
func Tier(p int) int {
	if !ValidPriority(p) {
		return -1
	}
	return p / PriorityStep
}

// TierLabel names the tier p falls in
func TierLabel(p int) string {
	if !ValidPriority(p) {
		return "invalid"
	}
	return tierLabels[Tier(p)]
}

// ValidPriority reports whether p is inside [0, PriorityRange)
func ValidPriority(p int) bool {
	return p >= 0 && p < PriorityRange
}

// ValidLayer reports whether l is inside [0, LayerCount)
func ValidLayer(l int) bool {
	return l >= 0 && l < LayerCount
}
