// Package draw keeps exactly one drawing interaction attached to the map,
// matching the geometry kind the user selected.
package draw

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/dzmeasure/internal/geom"
)

// Interaction is a drawing tool producing features of one kind.
type Interaction struct {
	ID   string    `json:"id"`
	Kind geom.Kind `json:"-"`
}

// NewInteraction creates an interaction for kind with a fresh identifier.
func NewInteraction(kind geom.Kind) *Interaction {
	return &Interaction{ID: uuid.NewString(), Kind: kind}
}

// Map attaches and detaches drawing interactions.
type Map interface {
	AttachInteraction(i *Interaction)
	DetachInteraction(i *Interaction)
}

// Hooks run around an interaction swap. Either may be nil.
type Hooks struct {
	// Detached runs right after the previous interaction is removed.
	Detached func(old *Interaction)
	// Attached runs right after the new interaction is added.
	Attached func(cur *Interaction)
}

// ModeController swaps the drawing interaction when the selected kind changes.
type ModeController struct {
	m      Map
	hooks  Hooks
	active *Interaction
	kind   geom.Kind
}

// NewModeController returns a controller with nothing attached yet.
func NewModeController(m Map, hooks Hooks) *ModeController {
	return &ModeController{m: m, hooks: hooks}
}

// Kind returns the selected geometry kind.
func (c *ModeController) Kind() geom.Kind { return c.kind }

// Active returns the attached interaction, or nil before Init.
func (c *ModeController) Active() *Interaction { return c.active }

// Init attaches the first interaction.
func (c *ModeController) Init(kind geom.Kind) {
	c.swap(kind)
}

// Select switches to kind. Selecting the current kind keeps the attached interaction.
func (c *ModeController) Select(kind geom.Kind) {
	if c.active != nil && kind == c.kind {
		return
	}

	c.swap(kind)
}

// SelectValue switches using a UI selector value ("length" or "area").
func (c *ModeController) SelectValue(value string) error {
	kind, err := geom.ParseSelector(value)
	if err != nil {
		return err
	}

	c.Select(kind)
	return nil
}

func (c *ModeController) swap(kind geom.Kind) {
	if old := c.active; old != nil {
		c.m.DetachInteraction(old)
		c.active = nil
		if c.hooks.Detached != nil {
			c.hooks.Detached(old)
		}
	}

	cur := NewInteraction(kind)
	c.kind = kind
	c.m.AttachInteraction(cur)
	c.active = cur

	log.Debug().
		Str("interaction", cur.ID).
		Str("kind", kind.String()).
		Msg("Drawing interaction attached")

	if c.hooks.Attached != nil {
		c.hooks.Attached(cur)
	}
}
