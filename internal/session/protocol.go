package session

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/woozymasta/dzmeasure/internal/tooltip"
)

// Event types sent by the page.
const (
	EventPointerMove  = "pointermove"
	EventPointerLeave = "pointerleave"
	EventDrawStart    = "drawstart"
	EventDrawChange   = "drawchange"
	EventDrawEnd      = "drawend"
	EventSelect       = "select"
	EventExport       = "export"
)

// Command ops sent to the page.
const (
	OpHello             = "hello"
	OpOverlayAdd        = "overlay.add"
	OpOverlayUpdate     = "overlay.update"
	OpOverlayRemove     = "overlay.remove"
	OpInteractionAttach = "interaction.attach"
	OpInteractionDetach = "interaction.detach"
	OpDownload          = "download"
)

// ErrBadEvent is wrapped by every event validation error.
var ErrBadEvent = errors.New("bad event")

// Event is one user input forwarded by the page, or one step of a replay script.
type Event struct {
	Type string `json:"type" yaml:"type"`
	// Interaction is the id of the interaction that produced a draw event.
	// Empty means the currently attached one.
	Interaction string      `json:"interaction,omitempty" yaml:"interaction,omitempty"`
	Value       string      `json:"value,omitempty" yaml:"value,omitempty"`
	Coordinate  []float64   `json:"coordinate,omitempty" yaml:"coordinate,omitempty"`
	Coordinates [][]float64 `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	Dragging    bool        `json:"dragging,omitempty" yaml:"dragging,omitempty"`
}

// Point returns the event coordinate.
func (e Event) Point() (orb.Point, error) {
	return toPoint(e.Coordinate)
}

// Points returns the event coordinate sequence.
func (e Event) Points() ([]orb.Point, error) {
	out := make([]orb.Point, 0, len(e.Coordinates))
	for i, c := range e.Coordinates {
		p, err := toPoint(c)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		out = append(out, p)
	}

	return out, nil
}

func toPoint(c []float64) (orb.Point, error) {
	if len(c) != 2 {
		return orb.Point{}, fmt.Errorf("%w: coordinate needs 2 values, got %d", ErrBadEvent, len(c))
	}

	return orb.Point{c[0], c[1]}, nil
}

// Command is one instruction for the page.
type Command struct {
	Op       string         `json:"op"`
	Label    *tooltip.Label `json:"label,omitempty"`
	ID       string         `json:"id,omitempty"`
	Kind     string         `json:"kind,omitempty"`
	Selector string         `json:"selector,omitempty"`
	Name     string         `json:"name,omitempty"`
	MIME     string         `json:"mime,omitempty"`
	Body     string         `json:"body,omitempty"`
}

// Outbox delivers commands to the page.
type Outbox interface {
	Send(cmd Command) error
}

// OutboxFunc adapts a function to Outbox.
type OutboxFunc func(cmd Command) error

// Send calls f(cmd).
func (f OutboxFunc) Send(cmd Command) error { return f(cmd) }
