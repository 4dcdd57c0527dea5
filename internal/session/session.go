// Package session runs the measurement state machine for one map view.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/dzmeasure/internal/draw"
	"github.com/woozymasta/dzmeasure/internal/export"
	"github.com/woozymasta/dzmeasure/internal/geo"
	"github.com/woozymasta/dzmeasure/internal/geom"
	"github.com/woozymasta/dzmeasure/internal/measure"
	"github.com/woozymasta/dzmeasure/internal/sketch"
	"github.com/woozymasta/dzmeasure/internal/store"
	"github.com/woozymasta/dzmeasure/internal/tooltip"
)

// Options configures a session.
type Options struct {
	Math        geo.Math
	Offsets     tooltip.Offsets
	DefaultKind geom.Kind
}

// Session owns every piece of drawing state for one map view.
// Events are handled one at a time in arrival order.
type Session struct {
	ID string

	out      Outbox
	logger   zerolog.Logger
	store    *store.Store
	tracker  *sketch.Tracker
	tooltips *tooltip.Controller
	mode     *draw.ModeController
	kind     geom.Kind

	mu sync.Mutex
}

// New builds a session sending commands to out. Nothing is sent until Open.
func New(out Outbox, opts Options) *Session {
	s := &Session{
		ID:    uuid.NewString(),
		out:   out,
		store: store.New(),
		kind:  opts.DefaultKind,
	}
	s.logger = log.With().Str("session", s.ID).Logger()

	s.tooltips = tooltip.NewController(s, opts.Offsets)
	s.tracker = sketch.NewTracker(measure.New(opts.Math), s.store, sketch.Hooks{
		Changed:   s.tooltips.Update,
		Committed: func(_ *geom.Feature, m measure.Measurement, anchor orb.Point) { s.tooltips.Commit(m, anchor) },
	})
	s.mode = draw.NewModeController(s, draw.Hooks{
		Detached: func(*draw.Interaction) {
			if s.tracker.Cancel() {
				s.logger.Info().Msg("Measurement type changed mid-sketch, partial sketch discarded")
			}
		},
		Attached: func(*draw.Interaction) { s.tooltips.Arm() },
	})

	return s
}

// Open greets the page and attaches the initial drawing interaction.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.send(Command{Op: OpHello, ID: s.ID, Selector: s.kind.Selector()})
	s.mode.Init(s.kind)

	s.logger.Info().Str("kind", s.kind.String()).Msg("Session opened")
}

// Close discards any unfinished sketch.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracker.Cancel()
	s.logger.Info().Int("features", s.store.Len()).Msg("Session closed")
}

// Handle applies one event.
func (s *Session) Handle(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Trace().Str("type", ev.Type).Msg("Event received")

	switch ev.Type {
	case EventPointerMove:
		return s.pointerMove(ev)
	case EventPointerLeave:
		s.tooltips.PointerLeave()
		return nil
	case EventDrawStart:
		return s.drawStart(ev)
	case EventDrawChange:
		return s.drawChange(ev)
	case EventDrawEnd:
		return s.drawEnd(ev)
	case EventSelect:
		if err := s.mode.SelectValue(ev.Value); err != nil {
			return fmt.Errorf("%w: %w", ErrBadEvent, err)
		}
		return nil
	case EventExport:
		return s.download()
	}

	return fmt.Errorf("%w: unknown type %q", ErrBadEvent, ev.Type)
}

// Export renders the committed features as GeoJSON.
func (s *Session) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return export.Export(s.store)
}

// Features returns the committed features.
func (s *Session) Features() []*geom.Feature {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Features()
}

// State returns the sketch state.
func (s *Session) State() sketch.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tracker.State()
}

// Interaction returns the attached drawing interaction.
func (s *Session) Interaction() *draw.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode.Active()
}

// Labels is a copy of the labels a session keeps on the page.
type Labels struct {
	Help      *tooltip.Label
	Measure   *tooltip.Label
	Committed []*tooltip.Label
}

// Labels returns a snapshot of the help, live and frozen measurement labels.
// Help and Measure are nil before the first interaction is attached.
func (s *Session) Labels() Labels {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Labels{
		Help:    snapshot(s.tooltips.Help()),
		Measure: snapshot(s.tooltips.Measure()),
	}
	for _, l := range s.tooltips.Committed() {
		out.Committed = append(out.Committed, snapshot(l))
	}

	return out
}

func (s *Session) pointerMove(ev Event) error {
	at, err := ev.Point()
	if err != nil {
		return err
	}

	kind, sketching := s.tracker.Kind()
	if !sketching {
		kind = s.mode.Kind()
	}
	s.tooltips.PointerMove(at, ev.Dragging, sketching, kind)
	return nil
}

// current reports whether a draw event comes from the attached interaction.
// Events from a detached interaction may still be in flight after a swap.
func (s *Session) current(ev Event) bool {
	active := s.mode.Active()
	if active == nil {
		return false
	}
	if ev.Interaction != "" && ev.Interaction != active.ID {
		s.logger.Debug().
			Str("type", ev.Type).
			Str("interaction", ev.Interaction).
			Msg("Dropping event from detached interaction")
		return false
	}

	return true
}

func (s *Session) drawStart(ev Event) error {
	coords, err := ev.Points()
	if err != nil {
		return err
	}
	if !s.current(ev) {
		return nil
	}

	start, err := ev.Point()
	if err != nil {
		if len(coords) == 0 {
			return fmt.Errorf("%w: drawstart without coordinate", ErrBadEvent)
		}
		start = coords[0]
	}

	f := geom.NewFeature(s.mode.Kind(), coords)
	if err := s.tracker.Start(f, start); err != nil {
		return fmt.Errorf("start sketch: %w", err)
	}

	return nil
}

func (s *Session) drawChange(ev Event) error {
	coords, err := ev.Points()
	if err != nil {
		return err
	}
	if !s.current(ev) {
		return nil
	}

	f := s.tracker.Feature()
	if f == nil {
		s.logger.Debug().Msg("Change without sketch, ignoring")
		return nil
	}

	f.SetCoordinates(coords)
	return nil
}

func (s *Session) drawEnd(ev Event) error {
	coords, err := ev.Points()
	if err != nil {
		return err
	}
	if !s.current(ev) {
		return nil
	}

	f := s.tracker.Feature()
	if f == nil {
		s.logger.Warn().Msg("Drawing end without sketch, ignoring")
		return nil
	}

	if len(coords) > 0 {
		f.SetCoordinates(coords)
	}

	return s.tracker.End(f)
}

func (s *Session) download() error {
	data, err := export.Export(s.store)
	if err != nil {
		return err
	}

	s.send(Command{
		Op:   OpDownload,
		Name: export.FileName,
		MIME: export.ContentType,
		Body: string(data),
	})

	s.logger.Info().Int("features", s.store.Len()).Msg("Features exported")
	return nil
}

func (s *Session) send(cmd Command) {
	if err := s.out.Send(cmd); err != nil {
		s.logger.Debug().Err(err).Str("op", cmd.Op).Msg("Failed to send command")
	}
}

// AddOverlay implements tooltip.Overlays.
func (s *Session) AddOverlay(l *tooltip.Label) {
	s.send(Command{Op: OpOverlayAdd, Label: snapshot(l)})
}

// UpdateOverlay implements tooltip.Overlays.
func (s *Session) UpdateOverlay(l *tooltip.Label) {
	s.send(Command{Op: OpOverlayUpdate, Label: snapshot(l)})
}

// RemoveOverlay implements tooltip.Overlays.
func (s *Session) RemoveOverlay(l *tooltip.Label) {
	s.send(Command{Op: OpOverlayRemove, ID: l.ID})
}

// AttachInteraction implements draw.Map.
func (s *Session) AttachInteraction(i *draw.Interaction) {
	s.kind = i.Kind
	s.send(Command{Op: OpInteractionAttach, ID: i.ID, Kind: i.Kind.String(), Selector: i.Kind.Selector()})
}

// DetachInteraction implements draw.Map.
func (s *Session) DetachInteraction(i *draw.Interaction) {
	s.send(Command{Op: OpInteractionDetach, ID: i.ID})
}

func snapshot(l *tooltip.Label) *tooltip.Label {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
