// Package geom holds the drawable geometry model: kinds, geometries and features.
package geom

import (
	"errors"
	"fmt"
)

// Kind is the geometry variant a drawing interaction produces.
type Kind int

const (
	// Line is an open polyline, measured by its length.
	Line Kind = iota
	// Polygon is a closed ring, measured by its area and perimeter.
	Polygon
)

// Selector values offered by the measurement type control.
const (
	SelectorLength = "length"
	SelectorArea   = "area"
)

// ErrUnknownSelector is returned for selector values other than "length" and "area".
var ErrUnknownSelector = errors.New("unknown measurement selector")

// ParseSelector maps a UI selector value to a Kind.
func ParseSelector(value string) (Kind, error) {
	switch value {
	case SelectorLength:
		return Line, nil
	case SelectorArea:
		return Polygon, nil
	}

	return Line, fmt.Errorf("%w: %q", ErrUnknownSelector, value)
}

// Selector returns the UI selector value for the kind.
func (k Kind) Selector() string {
	switch k {
	case Line:
		return SelectorLength
	case Polygon:
		return SelectorArea
	}

	panic(fmt.Sprintf("geom: invalid kind %d", int(k)))
}

// String returns the GeoJSON geometry type tag.
func (k Kind) String() string {
	switch k {
	case Line:
		return "LineString"
	case Polygon:
		return "Polygon"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}
