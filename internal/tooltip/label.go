// Package tooltip manages the floating labels that follow a sketch.
package tooltip

import (
	"strconv"

	"github.com/paulmach/orb"
)

// Label positioning relative to its anchor.
const (
	PositionCenterLeft   = "center-left"
	PositionBottomCenter = "bottom-center"
)

// CSS classes understood by the page.
const (
	ClassHelp    = "tooltip"
	ClassMeasure = "tooltip tooltip-measure"
	ClassStatic  = "tooltip tooltip-static"
)

// Label is a floating overlay anchored at a map coordinate.
type Label struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Class       string    `json:"class"`
	Positioning string    `json:"positioning"`
	Anchor      orb.Point `json:"anchor"`
	Offset      [2]int    `json:"offset"`
	Hidden      bool      `json:"hidden"`
	// Placed is false until the label receives its first anchor.
	Placed bool `json:"placed"`
}

func newLabel(seq int, class, positioning string, offset [2]int) *Label {
	return &Label{
		ID:          "label-" + strconv.Itoa(seq),
		Class:       class,
		Positioning: positioning,
		Offset:      offset,
	}
}

func (l *Label) place(at orb.Point) {
	l.Anchor = at
	l.Placed = true
}
