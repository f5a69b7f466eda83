package store

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/xolan/hours/internal/record"
)

func rec(employee, project string) record.Record {
	return record.Record{
		Employee: employee,
		Project:  project,
		Date:     record.Date{Month: 1, Day: 15, Year: 2021},
		Hours:    decimal.RequireFromString("2.5"),
	}
}

// summary flattens records to comparable strings
func summary(records []record.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Project + "/" + r.Employee + "#" + strconv.Itoa(r.Seq)
	}
	return out
}

func TestAdd_AssignsNextSeqWithoutRenumbering(t *testing.T) {
	s := New()
	a := s.Add(rec("Anna", "Beta"))
	b := s.Add(rec("Bob", "Alpha"))

	if a.Seq != 1 || b.Seq != 2 {
		t.Fatalf("Add() seqs = %d, %d, expected 1, 2", a.Seq, b.Seq)
	}
	// Insertion order is kept until Renumber
	if diff := cmp.Diff([]string{"Beta/Anna#1", "Alpha/Bob#2"}, summary(s.Records())); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenumber_SortsByProjectStably(t *testing.T) {
	s := New()
	s.Add(rec("Anna", "Beta"))
	s.Add(rec("Bob", "Alpha"))
	s.Add(rec("Cleo", "Beta"))
	s.Add(rec("Dan", "Alpha"))

	s.Renumber()

	want := []string{"Alpha/Bob#1", "Alpha/Dan#2", "Beta/Anna#3", "Beta/Cleo#4"}
	if diff := cmp.Diff(want, summary(s.Records())); diff != "" {
		t.Errorf("Records() after Renumber mismatch (-want +got):\n%s", diff)
	}

	next := s.Add(rec("Eve", "Gamma"))
	if next.Seq != 5 {
		t.Errorf("Add() after Renumber seq = %d, expected 5", next.Seq)
	}
}

func TestRenumber_Idempotent(t *testing.T) {
	s := New()
	s.Add(rec("Anna", "Beta"))
	s.Add(rec("Bob", "Alpha"))
	s.Add(rec("Cleo", "Alpha"))

	s.Renumber()
	once := summary(s.Records())
	s.Renumber()
	twice := summary(s.Records())

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second Renumber changed numbering (-once +twice):\n%s", diff)
	}
}

func TestRemoveBySeq(t *testing.T) {
	s := New()
	s.Add(rec("Anna", "Alpha"))
	s.Add(rec("Bob", "Beta"))
	s.Add(rec("Cleo", "Gamma"))

	removed, err := s.RemoveBySeq(2)
	if err != nil {
		t.Fatalf("RemoveBySeq(2) returned unexpected error: %v", err)
	}
	if removed.Employee != "Bob" {
		t.Errorf("removed %q, expected Bob", removed.Employee)
	}
	if diff := cmp.Diff([]string{"Alpha/Anna#1", "Gamma/Cleo#3"}, summary(s.Records())); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}

	// Numbers are not reused before the next renumber
	added := s.Add(rec("Dan", "Alpha"))
	if added.Seq != 4 {
		t.Errorf("Add() after removal seq = %d, expected 4", added.Seq)
	}
}

func TestRemoveBySeq_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		store *Store
		seq   int
	}{
		{"empty store", New(), 1},
		{"unmatched number", New(rec("Anna", "Alpha")), 7},
		{"zero", New(rec("Anna", "Alpha")), 0},
		{"negative", New(rec("Anna", "Alpha")), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := summary(tt.store.Records())

			removed, err := tt.store.RemoveBySeq(tt.seq)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("RemoveBySeq(%d) error = %v, expected ErrNotFound", tt.seq, err)
			}
			if removed != (record.Record{}) {
				t.Errorf("expected zero record on not found, got %+v", removed)
			}
			if diff := cmp.Diff(before, summary(tt.store.Records())); diff != "" {
				t.Errorf("store changed on not found (-before +after):\n%s", diff)
			}
		})
	}
}

func TestRemoveBySeq_RemovesFirstMatchOnly(t *testing.T) {
	a := rec("Anna", "Alpha")
	a.Seq = 3
	b := rec("Bob", "Beta")
	b.Seq = 3
	s := New(a, b)

	removed, err := s.RemoveBySeq(3)
	if err != nil {
		t.Fatalf("RemoveBySeq(3) returned unexpected error: %v", err)
	}
	if removed.Employee != "Anna" {
		t.Errorf("removed %q, expected the first match Anna", removed.Employee)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestNew_NextSeqFollowsHighestExisting(t *testing.T) {
	a := rec("Anna", "Alpha")
	a.Seq = 9
	s := New(a)

	if got := s.Add(rec("Bob", "Beta")).Seq; got != 10 {
		t.Errorf("Add() seq = %d, expected 10", got)
	}
}

func TestSortedByProject_DoesNotMutate(t *testing.T) {
	s := New()
	s.Add(rec("Anna", "Beta"))
	s.Add(rec("Bob", "Alpha"))

	sorted := s.SortedByProject()
	if sorted[0].Project != "Alpha" {
		t.Errorf("SortedByProject()[0].Project = %q, expected Alpha", sorted[0].Project)
	}
	if s.Records()[0].Project != "Beta" {
		t.Error("SortedByProject() should not reorder the store")
	}
}

func TestFind(t *testing.T) {
	s := New()
	s.Add(rec("Anna", "Alpha"))

	if r, ok := s.Find(1); !ok || r.Employee != "Anna" {
		t.Errorf("Find(1) = %+v, %v", r, ok)
	}
	if _, ok := s.Find(2); ok {
		t.Error("Find(2) should not find anything")
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true for a non-empty store")
	}
}

func TestFind_RejectsNonPositiveSeq(t *testing.T) {
	// Records built without Renumber still carry Seq 0
	s := New(rec("Anna", "Alpha"), rec("Bob", "Beta"))

	for _, seq := range []int{0, -3} {
		if r, ok := s.Find(seq); ok {
			t.Errorf("Find(%d) = %+v, expected no match", seq, r)
		}
		if _, err := s.RemoveBySeq(seq); !errors.Is(err, ErrNotFound) {
			t.Errorf("RemoveBySeq(%d) error = %v, expected ErrNotFound", seq, err)
		}
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
}
