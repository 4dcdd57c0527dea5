package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/dzmeasure/internal/geom"
)

type fakeMap struct {
	attached map[string]*Interaction
	ops      []string
}

func (m *fakeMap) AttachInteraction(i *Interaction) {
	m.attached[i.ID] = i
	m.ops = append(m.ops, "attach "+i.Kind.String())
}

func (m *fakeMap) DetachInteraction(i *Interaction) {
	delete(m.attached, i.ID)
	m.ops = append(m.ops, "detach "+i.Kind.String())
}

func newController() (*ModeController, *fakeMap) {
	m := &fakeMap{attached: make(map[string]*Interaction)}
	c := NewModeController(m, Hooks{
		Detached: func(old *Interaction) { m.ops = append(m.ops, "detached hook") },
		Attached: func(cur *Interaction) { m.ops = append(m.ops, "attached hook") },
	})
	return c, m
}

func TestInit(t *testing.T) {
	c, m := newController()
	assert.Nil(t, c.Active())

	c.Init(geom.Line)
	require.NotNil(t, c.Active())
	assert.Equal(t, geom.Line, c.Active().Kind)
	assert.Equal(t, geom.Line, c.Kind())
	assert.Len(t, m.attached, 1)
	assert.Equal(t, []string{"attach LineString", "attached hook"}, m.ops)
}

func TestSelectSwapsInOrder(t *testing.T) {
	c, m := newController()
	c.Init(geom.Line)
	first := c.Active()
	m.ops = nil

	c.Select(geom.Polygon)
	assert.Equal(t, []string{
		"detach LineString",
		"detached hook",
		"attach Polygon",
		"attached hook",
	}, m.ops)
	assert.Len(t, m.attached, 1)
	assert.NotContains(t, m.attached, first.ID)
	assert.Equal(t, geom.Polygon, c.Active().Kind)
}

func TestSelectSameKindKeepsInteraction(t *testing.T) {
	c, m := newController()
	c.Init(geom.Polygon)
	active := c.Active()
	m.ops = nil

	c.Select(geom.Polygon)
	assert.Same(t, active, c.Active())
	assert.Empty(t, m.ops)
}

func TestSelectValue(t *testing.T) {
	c, m := newController()
	c.Init(geom.Line)

	require.NoError(t, c.SelectValue("area"))
	assert.Equal(t, geom.Polygon, c.Kind())

	active := c.Active()
	assert.ErrorIs(t, c.SelectValue("volume"), geom.ErrUnknownSelector)
	assert.Same(t, active, c.Active())
	assert.Len(t, m.attached, 1)

	for i := 0; i < 10; i++ {
		require.NoError(t, c.SelectValue([]string{"length", "area"}[i%2]))
		assert.Len(t, m.attached, 1)
	}
}
