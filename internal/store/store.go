// Package store keeps the in-memory, ordered collection of records for a session.
package store

import (
	"errors"
	"slices"
	"sort"

	"github.com/xolan/hours/internal/record"
)

// ErrNotFound is returned when no record carries the requested sequence number.
var ErrNotFound = errors.New("entry not found")

// Store is an ordered collection of records.
// Sequence numbers are contiguous from 1 in project order after Renumber;
// records added since keep counting up from there.
type Store struct {
	records []record.Record
	next    int
}

// New creates a store holding records in the given order, without renumbering.
func New(records ...record.Record) *Store {
	s := &Store{records: append([]record.Record(nil), records...)}
	s.next = len(s.records) + 1
	for _, r := range s.records {
		if r.Seq >= s.next {
			s.next = r.Seq + 1
		}
	}
	return s
}

// Add appends r and gives it the next sequence number. No renumbering happens here.
func (s *Store) Add(r record.Record) record.Record {
	if s.next < 1 {
		s.next = len(s.records) + 1
	}
	r.Seq = s.next
	s.next++
	s.records = append(s.records, r)
	return r
}

// RemoveBySeq removes the first record with the given sequence number and returns it.
// Returns ErrNotFound and leaves the store untouched if nothing matches.
// Sequence numbers start at 1, so seq < 1 never matches.
func (s *Store) RemoveBySeq(seq int) (record.Record, error) {
	if seq < 1 {
		return record.Record{}, ErrNotFound
	}
	for i, r := range s.records {
		if r.Seq == seq {
			s.records = slices.Delete(s.records, i, i+1)
			return r, nil
		}
	}
	return record.Record{}, ErrNotFound
}

// Find returns the first record with the given sequence number.
func (s *Store) Find(seq int) (record.Record, bool) {
	if seq < 1 {
		return record.Record{}, false
	}
	for _, r := range s.records {
		if r.Seq == seq {
			return r, true
		}
	}
	return record.Record{}, false
}

// SortedByProject returns a copy of the records stably sorted by project name.
func (s *Store) SortedByProject() []record.Record {
	sorted := s.Records()
	SortByProject(sorted)
	return sorted
}

// Renumber sorts the records by project and assigns sequence numbers 1..N.
func (s *Store) Renumber() {
	SortByProject(s.records)
	for i := range s.records {
		s.records[i].Seq = i + 1
	}
	s.next = len(s.records) + 1
}

// Records returns a copy of the records in store order.
func (s *Store) Records() []record.Record {
	out := make([]record.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// IsEmpty reports whether the store holds no records.
func (s *Store) IsEmpty() bool {
	return len(s.records) == 0
}

// SortByProject stably sorts records in place by project name (byte order).
func SortByProject(records []record.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Project < records[j].Project
	})
}
