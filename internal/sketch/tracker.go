// Package sketch tracks the in-progress drawing and commits it to the store.
package sketch

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/dzmeasure/internal/geom"
	"github.com/woozymasta/dzmeasure/internal/measure"
	"github.com/woozymasta/dzmeasure/internal/store"
)

// State of the tracker.
type State int

const (
	Idle State = iota
	Sketching
	Committing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sketching:
		return "sketching"
	case Committing:
		return "committing"
	}

	return "unknown"
}

var (
	// ErrSketchActive is returned when a sketch starts while another one is in progress.
	ErrSketchActive = errors.New("sketch already in progress")
	// ErrNoSketch is returned when a sketch ends while none is in progress.
	ErrNoSketch = errors.New("no sketch in progress")
)

// Hooks receive measurement updates. Either may be nil.
type Hooks struct {
	// Changed runs after every recomputation while sketching.
	Changed func(m measure.Measurement, anchor orb.Point)
	// Committed runs once the feature is stored, with its final anchor.
	Committed func(f *geom.Feature, m measure.Measurement, anchor orb.Point)
}

type session struct {
	feature     *geom.Feature
	sub         *geom.Subscription
	measurement measure.Measurement
	anchor      orb.Point
}

// Tracker owns the sketch lifecycle: Idle -> Sketching -> Committing -> Idle.
type Tracker struct {
	measurer *measure.Measurer
	store    *store.Store
	hooks    Hooks

	current *session
	state   State
}

// NewTracker returns an idle tracker committing into st.
func NewTracker(m *measure.Measurer, st *store.Store, hooks Hooks) *Tracker {
	return &Tracker{measurer: m, store: st, hooks: hooks}
}

// State returns the current lifecycle state.
func (t *Tracker) State() State { return t.state }

// Sketching reports whether a sketch is in progress.
func (t *Tracker) Sketching() bool { return t.state == Sketching }

// Feature returns the in-progress feature, or nil when idle.
func (t *Tracker) Feature() *geom.Feature {
	if t.current == nil {
		return nil
	}
	return t.current.feature
}

// Kind returns the kind of the in-progress feature.
func (t *Tracker) Kind() (geom.Kind, bool) {
	if t.current == nil {
		return geom.Line, false
	}
	return t.current.feature.Kind(), true
}

// Anchor returns the last computed label anchor.
func (t *Tracker) Anchor() (orb.Point, bool) {
	if t.current == nil {
		return orb.Point{}, false
	}
	return t.current.anchor, true
}

// Measurement returns the last computed measurement.
func (t *Tracker) Measurement() (measure.Measurement, bool) {
	if t.current == nil {
		return measure.Measurement{}, false
	}
	return t.current.measurement, true
}

// Start begins sketching f. The label anchor starts at start, the drawing-start coordinate.
func (t *Tracker) Start(f *geom.Feature, start orb.Point) error {
	if t.state != Idle {
		return ErrSketchActive
	}

	s := &session{feature: f, anchor: start}
	s.measurement = t.measurer.Measure(f.Geometry())
	s.sub = f.OnChange(t.changed)

	t.current = s
	t.state = Sketching

	log.Debug().
		Str("feature", f.ID).
		Str("kind", f.Kind().String()).
		Msg("Sketch started")

	return nil
}

func (t *Tracker) changed(g geom.Geometry) {
	s := t.current
	if s == nil {
		return
	}

	s.measurement = t.measurer.Measure(g)
	s.anchor = t.anchorOf(g, s.anchor)

	log.Trace().
		Str("feature", s.feature.ID).
		Str("measurement", s.measurement.Primary).
		Msg("Sketch changed")

	if t.hooks.Changed != nil {
		t.hooks.Changed(s.measurement, s.anchor)
	}
}

func (t *Tracker) anchorOf(g geom.Geometry, fallback orb.Point) orb.Point {
	switch g.Kind() {
	case geom.Polygon:
		if g.Len() == 0 {
			return fallback
		}
		return t.measurer.Math().InteriorPoint(g.Orb().(orb.Polygon))
	case geom.Line:
		if last, ok := g.Last(); ok {
			return last
		}
	}

	return fallback
}

// End commits the sketch: properties are written, the feature is stored and
// the change subscription is released. f may be nil to commit the current sketch.
func (t *Tracker) End(f *geom.Feature) error {
	if t.state != Sketching || t.current == nil {
		return ErrNoSketch
	}

	s := t.current
	if f != nil && f != s.feature {
		log.Warn().
			Str("expected", s.feature.ID).
			Str("got", f.ID).
			Msg("Drawing end for unexpected feature, committing current sketch")
	}

	t.state = Committing
	s.sub.Release()

	g := s.feature.Geometry()
	s.measurement = t.measurer.Measure(g)
	s.anchor = t.anchorOf(g, s.anchor)

	switch g.Kind() {
	case geom.Line:
		s.feature.Properties[geom.PropLength] = s.measurement.Primary
	case geom.Polygon:
		s.feature.Properties[geom.PropArea] = s.measurement.Primary
		s.feature.Properties[geom.PropPerimeter] = s.measurement.Secondary
	}

	t.store.Add(s.feature)

	t.current = nil
	t.state = Idle

	log.Debug().
		Str("feature", s.feature.ID).
		Str("kind", g.Kind().String()).
		Str("measurement", s.measurement.Text()).
		Int("stored", t.store.Len()).
		Msg("Sketch committed")

	if t.hooks.Committed != nil {
		t.hooks.Committed(s.feature, s.measurement, s.anchor)
	}

	return nil
}

// Cancel discards the sketch without storing it. It reports whether a sketch was dropped.
func (t *Tracker) Cancel() bool {
	if t.current == nil {
		return false
	}

	s := t.current
	s.sub.Release()
	t.current = nil
	t.state = Idle

	log.Debug().Str("feature", s.feature.ID).Msg("Sketch discarded")
	return true
}
