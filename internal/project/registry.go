// Package project holds the registry of project names an entry may reference.
package project

import (
	"sort"
	"strings"
)

// AddResult describes the outcome of Registry.Add
type AddResult int

const (
	Added AddResult = iota
	AlreadyPresent
	Rejected // blank name
)

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already present"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Registry is a case-insensitive set of project names.
// Names keep the case they were first added with; lookups ignore case.
type Registry struct {
	names []string
	lower map[string]string
}

// NewRegistry creates a registry seeded with names, skipping blanks and
// case-insensitive duplicates (first one wins).
func NewRegistry(names ...string) *Registry {
	r := &Registry{lower: make(map[string]string)}
	for _, n := range names {
		r.Add(n)
	}
	return r
}

// Contains reports whether name is registered, ignoring case and surrounding space.
func (r *Registry) Contains(name string) bool {
	_, ok := r.lower[normalize(name)]
	return ok
}

// Canonical returns the registered spelling of name, ignoring case and
// surrounding space.
func (r *Registry) Canonical(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	canonical, ok := r.lower[normalize(name)]
	return canonical, ok
}

// Add registers a trimmed project name unless it is blank or already present.
func (r *Registry) Add(name string) AddResult {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Rejected
	}
	key := strings.ToLower(trimmed)
	if _, ok := r.lower[key]; ok {
		return AlreadyPresent
	}
	if r.lower == nil {
		r.lower = make(map[string]string)
	}
	r.names = append(r.names, trimmed)
	r.lower[key] = trimmed
	return Added
}

// All returns the project names sorted alphabetically. The registry is not modified.
func (r *Registry) All() []string {
	sorted := r.Names()
	sort.Strings(sorted)
	return sorted
}

// Names returns the project names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered projects.
func (r *Registry) Len() int {
	return len(r.names)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
