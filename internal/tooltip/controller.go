package tooltip

import (
	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/dzmeasure/internal/geom"
	"github.com/woozymasta/dzmeasure/internal/measure"
)

// Help messages shown next to the pointer.
const (
	HelpStart           = "Click to start drawing"
	HelpContinuePolygon = "Click to continue drawing the polygon"
	HelpContinueLine    = "Click to continue drawing the line"
)

// HelpText picks the help message for the drawing state.
func HelpText(sketching bool, kind geom.Kind) string {
	if !sketching {
		return HelpStart
	}

	switch kind {
	case geom.Polygon:
		return HelpContinuePolygon
	case geom.Line:
		return HelpContinueLine
	}

	return HelpStart
}

// Overlays is the map surface labels are placed on.
type Overlays interface {
	AddOverlay(l *Label)
	UpdateOverlay(l *Label)
	RemoveOverlay(l *Label)
}

// Offsets in pixels for each label style.
type Offsets struct {
	Help    [2]int
	Measure [2]int
	Static  [2]int
}

// DefaultOffsets keeps the help label right of the cursor and the
// measurement label above its anchor.
var DefaultOffsets = Offsets{
	Help:    [2]int{15, 0},
	Measure: [2]int{0, -15},
	Static:  [2]int{0, -7},
}

// Controller owns the help label, the live measurement label and
// every label frozen by a commit.
type Controller struct {
	overlays  Overlays
	offsets   Offsets
	help      *Label
	measure   *Label
	committed []*Label
	seq       int
}

// NewController returns a controller placing labels on overlays.
func NewController(overlays Overlays, offsets Offsets) *Controller {
	return &Controller{overlays: overlays, offsets: offsets}
}

// Help returns the help label, or nil before Arm.
func (c *Controller) Help() *Label { return c.help }

// Measure returns the live measurement label, or nil before Arm.
func (c *Controller) Measure() *Label { return c.measure }

// Committed returns the frozen labels, one per committed feature.
func (c *Controller) Committed() []*Label {
	out := make([]*Label, len(c.committed))
	copy(out, c.committed)
	return out
}

// Arm replaces the help label and the live measurement label with fresh ones.
// Committed labels are left in place.
func (c *Controller) Arm() {
	c.armMeasure()

	if c.help != nil {
		c.overlays.RemoveOverlay(c.help)
	}
	c.seq++
	c.help = newLabel(c.seq, ClassHelp, PositionCenterLeft, c.offsets.Help)
	c.help.Hidden = true
	c.overlays.AddOverlay(c.help)

	log.Trace().Str("help", c.help.ID).Str("measure", c.measure.ID).Msg("Tooltips armed")
}

func (c *Controller) armMeasure() {
	if c.measure != nil {
		c.overlays.RemoveOverlay(c.measure)
	}
	c.seq++
	c.measure = newLabel(c.seq, ClassMeasure, PositionBottomCenter, c.offsets.Measure)
	c.overlays.AddOverlay(c.measure)
}

// PointerMove updates the help label to follow the pointer.
// Moves while dragging the map are ignored.
func (c *Controller) PointerMove(at orb.Point, dragging, sketching bool, kind geom.Kind) {
	if dragging || c.help == nil {
		return
	}

	c.help.Text = HelpText(sketching, kind)
	c.help.place(at)
	c.help.Hidden = false
	c.overlays.UpdateOverlay(c.help)
}

// PointerLeave hides the help label.
func (c *Controller) PointerLeave() {
	if c.help == nil || c.help.Hidden {
		return
	}

	c.help.Hidden = true
	c.overlays.UpdateOverlay(c.help)
}

// Update shows the measurement at anchor on the live label.
func (c *Controller) Update(m measure.Measurement, anchor orb.Point) {
	if c.measure == nil {
		return
	}

	c.measure.Text = m.Text()
	c.measure.place(anchor)
	c.overlays.UpdateOverlay(c.measure)
}

// Commit freezes the live label at anchor with the final measurement and
// prepares an empty label for the next sketch. Without a live label it does nothing.
func (c *Controller) Commit(m measure.Measurement, anchor orb.Point) {
	if c.measure == nil {
		log.Warn().Msg("Commit without measurement label, skipping label update")
		return
	}

	l := c.measure
	l.Text = m.Text()
	l.Class = ClassStatic
	l.Offset = c.offsets.Static
	l.place(anchor)
	c.overlays.UpdateOverlay(l)
	c.committed = append(c.committed, l)

	// the frozen label must survive, so detach it before re-arming
	c.measure = nil
	c.armMeasure()
}
