package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/woozymasta/dzmeasure/internal/geom"
)

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := New()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Features())

	a := geom.NewFeature(geom.Line, nil)
	b := geom.NewFeature(geom.Polygon, nil)
	s.Add(a)
	s.Add(b)
	s.Add(a)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []*geom.Feature{a, b, a}, s.Features())

	// callers get their own slice
	got := s.Features()
	got[0] = nil
	assert.Same(t, a, s.Features()[0])
}
