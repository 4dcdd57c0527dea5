package geom

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Property keys written on commit.
const (
	PropLength    = "length"
	PropArea      = "area"
	PropPerimeter = "perimeter"
)

// Feature is a drawn geometry with its display properties.
type Feature struct {
	Properties map[string]string
	ID         string

	geometry  Geometry
	listeners map[uint64]func(Geometry)
	nextKey   uint64
}

// NewFeature creates a feature with a fresh identifier and empty properties.
func NewFeature(kind Kind, coords []orb.Point) *Feature {
	return &Feature{
		ID:         uuid.NewString(),
		Properties: make(map[string]string),
		geometry:   NewGeometry(kind, coords),
		listeners:  make(map[uint64]func(Geometry)),
	}
}

// Geometry returns the current geometry.
func (f *Feature) Geometry() Geometry { return f.geometry }

// Kind returns the geometry kind.
func (f *Feature) Kind() Kind { return f.geometry.kind }

// SetCoordinates replaces the coordinates and notifies change listeners.
// The kind of the geometry is preserved.
func (f *Feature) SetCoordinates(coords []orb.Point) {
	f.geometry = NewGeometry(f.geometry.kind, coords)

	// keys are handed out in increasing order, walk them in that order
	for key := uint64(0); key < f.nextKey; key++ {
		if fn, ok := f.listeners[key]; ok {
			fn(f.geometry)
		}
	}
}

// OnChange registers fn to run after every coordinate change.
// The listener stays attached until the returned subscription is released.
func (f *Feature) OnChange(fn func(Geometry)) *Subscription {
	key := f.nextKey
	f.nextKey++
	f.listeners[key] = fn

	return &Subscription{release: func() { delete(f.listeners, key) }}
}

// Listeners returns the number of attached change listeners.
func (f *Feature) Listeners() int { return len(f.listeners) }

// Subscription is a change listener registration.
type Subscription struct {
	release func()
}

// Release detaches the listener. Calling it more than once has no effect.
func (s *Subscription) Release() bool {
	if s == nil || s.release == nil {
		return false
	}
	s.release()
	s.release = nil
	return true
}

// Active reports whether the listener is still attached.
func (s *Subscription) Active() bool {
	return s != nil && s.release != nil
}
