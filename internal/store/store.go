// Package store keeps the features committed during a map session.
package store

import "github.com/woozymasta/dzmeasure/internal/geom"

// Store is an append-only, insertion-ordered collection of committed features.
type Store struct {
	features []*geom.Feature
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Add appends a feature. The same feature may be added more than once.
func (s *Store) Add(f *geom.Feature) {
	s.features = append(s.features, f)
}

// Len returns the number of stored features.
func (s *Store) Len() int { return len(s.features) }

// Features returns the stored features in insertion order.
func (s *Store) Features() []*geom.Feature {
	out := make([]*geom.Feature, len(s.features))
	copy(out, s.features)
	return out
}
