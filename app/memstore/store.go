package memstore

import (
	"context"
	"sync"

	"github.com/alcortesm/datahub/app/indicator"
)

// Store is an in-memory collection of indicator records.
//
// Records are kept in the order they were first added. Adding a record
// with the same key as a stored one overwrites the stored value in
// place, so the newest value wins without changing the order.
type Store struct {
	mux   sync.Mutex
	data  []indicator.Record
	index map[indicator.Key]int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		index: map[indicator.Key]int{},
	}
}

// Add adds records to the store, overwriting previous records with the
// same keys as the ones being added.
func (s *Store) Add(_ context.Context, data ...indicator.Record) error {
	if len(data) == 0 {
		return nil
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	s.add(data)

	return nil
}

// Replace forgets all the records in the store and adds the given ones.
// Readers see either the old records or the new ones, never a mix.
func (s *Store) Replace(_ context.Context, data ...indicator.Record) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.data = nil
	s.index = map[indicator.Key]int{}
	s.add(data)

	return nil
}

// add must be called with the lock held.
func (s *Store) add(data []indicator.Record) {
	for _, d := range data {
		k := d.Key()

		if i, ok := s.index[k]; ok {
			s.data[i] = d
			continue
		}

		s.index[k] = len(s.data)
		s.data = append(s.data, d)
	}
}

// Get returns the records that pass the filter or an empty slice if
// there are none.
func (s *Store) Get(
	_ context.Context,
	f indicator.Filter,
) ([]indicator.Record, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	return f.Apply(s.data), nil
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()

	return len(s.data)
}
