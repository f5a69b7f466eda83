package project

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_Add(t *testing.T) {
	r := NewRegistry()

	if got := r.Add("  Alpha "); got != Added {
		t.Fatalf("Add(Alpha) = %v, expected %v", got, Added)
	}
	if got := r.Add("alpha"); got != AlreadyPresent {
		t.Errorf("Add(alpha) = %v, expected %v", got, AlreadyPresent)
	}
	if got := r.Add("ALPHA"); got != AlreadyPresent {
		t.Errorf("Add(ALPHA) = %v, expected %v", got, AlreadyPresent)
	}
	if got := r.Add("   "); got != Rejected {
		t.Errorf("Add(blank) = %v, expected %v", got, Rejected)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", r.Len())
	}
	if diff := cmp.Diff([]string{"Alpha"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Contains(t *testing.T) {
	r := NewRegistry("Alpha", "Beta")

	tests := []struct {
		name     string
		expected bool
	}{
		{"Alpha", true},
		{"alpha", true},
		{" BETA ", true},
		{"Gamma", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.name); got != tt.expected {
				t.Errorf("Contains(%q) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestRegistry_Canonical(t *testing.T) {
	r := NewRegistry("Alpha", "beta")

	tests := []struct {
		name      string
		canonical string
		ok        bool
	}{
		{"Alpha", "Alpha", true},
		{"alpha", "Alpha", true},
		{" BETA ", "beta", true},
		{"Gamma", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Canonical(tt.name)
			if got != tt.canonical || ok != tt.ok {
				t.Errorf("Canonical(%q) = %q, %v, expected %q, %v", tt.name, got, ok, tt.canonical, tt.ok)
			}
		})
	}
}

func TestRegistry_AllSortedWithoutMutation(t *testing.T) {
	r := NewRegistry("Zeta", "Alpha", "Mu")

	if diff := cmp.Diff([]string{"Alpha", "Mu", "Zeta"}, r.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Zeta", "Alpha", "Mu"}, r.Names()); diff != "" {
		t.Errorf("Names() changed after All() (-want +got):\n%s", diff)
	}
}

func TestNewRegistry_FirstSpellingWins(t *testing.T) {
	r := NewRegistry("Alpha", "ALPHA", "", "alpha", "Beta")

	if diff := cmp.Diff([]string{"Alpha", "Beta"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ZeroValueUsable(t *testing.T) {
	var r Registry
	if r.Contains("Alpha") {
		t.Error("zero registry should not contain anything")
	}
	if got := r.Add("Alpha"); got != Added {
		t.Errorf("Add() on zero registry = %v, expected %v", got, Added)
	}
	if !r.Contains("alpha") {
		t.Error("expected alpha to be registered")
	}
}

func TestAddResult_String(t *testing.T) {
	if AlreadyPresent.String() != "already present" {
		t.Errorf("AlreadyPresent.String() = %q", AlreadyPresent.String())
	}
	if AddResult(42).String() != "unknown" {
		t.Errorf("AddResult(42).String() = %q", AddResult(42).String())
	}
}
