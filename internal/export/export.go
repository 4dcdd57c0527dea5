// Package export serializes committed features to GeoJSON.
package export

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/woozymasta/dzmeasure/internal/geom"
	"github.com/woozymasta/dzmeasure/internal/store"
)

// Download metadata offered to the browser.
const (
	FileName    = "data.geojson"
	ContentType = "text/json"
)

// FeatureCollection builds a GeoJSON feature collection from the store contents.
func FeatureCollection(s *store.Store) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, f := range s.Features() {
		gf := geojson.NewFeature(f.Geometry().Orb())
		gf.ID = f.ID
		for k, v := range f.Properties {
			gf.Properties[k] = v
		}
		fc.Append(gf)
	}

	return fc
}

// Export renders the store as a GeoJSON document.
// An empty store yields a collection with no features.
func Export(s *store.Store) ([]byte, error) {
	data, err := FeatureCollection(s).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal feature collection: %w", err)
	}

	return data, nil
}

// Parse reads an exported document back into features.
func Parse(data []byte) ([]*geom.Feature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse feature collection: %w", err)
	}

	out := make([]*geom.Feature, 0, len(fc.Features))
	for i, gf := range fc.Features {
		g, err := geom.FromOrb(gf.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}

		f := geom.NewFeature(g.Kind(), g.Coordinates())
		if id, ok := gf.ID.(string); ok {
			f.ID = id
		}
		for k, v := range gf.Properties {
			if s, ok := v.(string); ok {
				f.Properties[k] = s
			}
		}
		out = append(out, f)
	}

	return out, nil
}
