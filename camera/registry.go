package camera

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/layercam/window"
)

// Registry owns the camera records for the process lifetime
type Registry struct {
	// ===== Writer Exclusive =====
	// Mutated only by the frame step; no synchronization

	cameras []Camera     // creation order; tie-break and tiling order
	index   map[Role]int // role → position in cameras

	// ===== Atomic =====
	// Readers (compositor) load the last published frame

	published atomic.Pointer[[]Camera]
}

// NewRegistry creates records for cams in the given order and publishes them
func NewRegistry(cams ...Camera) (*Registry, error) {
	r := &Registry{
		cameras: make([]Camera, 0, len(cams)),
		index:   make(map[Role]int, len(cams)),
	}
	for _, c := range cams {
		if c.Role == RoleNone {
			return nil, fmt.Errorf("register camera: role %s is reserved", c.Role)
		}
		if _, dup := r.index[c.Role]; dup {
			return nil, fmt.Errorf("register camera: duplicate role %s", c.Role)
		}
		if !ValidPriority(c.Priority) {
			return nil, fmt.Errorf("register %s: priority %d: %w", c.Role, c.Priority, ErrOutOfRange)
		}
		if !ValidLayer(c.Layer) {
			return nil, fmt.Errorf("register %s: layer %d: %w", c.Role, c.Layer, ErrOutOfRange)
		}
		r.index[c.Role] = len(r.cameras)
		r.cameras = append(r.cameras, c)
	}
	r.Publish()
	return r, nil
}

// DefaultCameras returns the startup camera set in creation order
func DefaultCameras() []Camera {
	return []Camera{
		{Role: Scene, Priority: 2, Active: true, Layer: 2},
		{Role: Background, Priority: 1, Active: true, Layer: 3},
		{Role: Foreground, Priority: 3, Active: true, Layer: 1},
	}
}

// DefaultRegistry creates the three startup cameras
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultCameras()...)
	if err != nil {
		// Static data; unreachable
		panic(err)
	}
	return r
}

// Get returns a copy of the camera for role
func (r *Registry) Get(role Role) (Camera, error) {
	c, err := r.lookup(role)
	if err != nil {
		return Camera{}, err
	}
	return *c, nil
}

// Has reports whether a camera exists for role
func (r *Registry) Has(role Role) bool {
	_, ok := r.index[role]
	return ok
}

// Roles returns the registered roles in creation order
func (r *Registry) Roles() []Role {
	roles := make([]Role, len(r.cameras))
	for i, c := range r.cameras {
		roles[i] = c.Role
	}
	return roles
}

// Len returns the number of cameras
func (r *Registry) Len() int {
	return len(r.cameras)
}

// SetActive sets the active flag
func (r *Registry) SetActive(role Role, active bool) error {
	c, err := r.lookup(role)
	if err != nil {
		return err
	}
	c.Active = active
	return nil
}

// SetPriority sets the composite priority; p must be within [0, PriorityRange)
func (r *Registry) SetPriority(role Role, p int) error {
	c, err := r.lookup(role)
	if err != nil {
		return err
	}
	if !ValidPriority(p) {
		return fmt.Errorf("set %s priority %d: %w", role, p, ErrOutOfRange)
	}
	c.Priority = p
	return nil
}

// SetLayer sets the render layer; l must be within [0, LayerCount)
func (r *Registry) SetLayer(role Role, l int) error {
	c, err := r.lookup(role)
	if err != nil {
		return err
	}
	if !ValidLayer(l) {
		return fmt.Errorf("set %s layer %d: %w", role, l, ErrOutOfRange)
	}
	c.Layer = l
	return nil
}

// SetTarget binds the camera to an output target
func (r *Registry) SetTarget(role Role, t window.Target) error {
	c, err := r.lookup(role)
	if err != nil {
		return err
	}
	c.Target = t
	return nil
}

// Snapshot copies the current working state in creation order
func (r *Registry) Snapshot() []Camera {
	out := make([]Camera, len(r.cameras))
	copy(out, r.cameras)
	return out
}

// Publish makes the current working state visible to readers
// Called once per frame after all mutations
func (r *Registry) Publish() {
	snap := r.Snapshot()
	r.published.Store(&snap)
}

// Published returns the last published snapshot; safe from any goroutine
// Callers must not modify the returned slice
func (r *Registry) Published() []Camera {
	p := r.published.Load()
	if p == nil {
		return nil
	}
	return *p
}

func (r *Registry) lookup(role Role) (*Camera, error) {
	i, ok := r.index[role]
	if !ok {
		return nil, fmt.Errorf("camera %s: %w", role, ErrNotFound)
	}
	return &r.cameras[i], nil
}
