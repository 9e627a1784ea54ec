package secrets

import (
	"sort"
	"strings"
)

// Fingerprint is the canonical identity of a master key. Subkey ids never
// appear as Fingerprints; the key directory normalizes them away.
type Fingerprint string

// Set is a set of master key fingerprints.
type Set map[Fingerprint]struct{}

// NewSet returns a set containing the given fingerprints.
func NewSet(fingerprints ...Fingerprint) Set {
	s := make(Set, len(fingerprints))
	for _, f := range fingerprints {
		s[f] = struct{}{}
	}
	return s
}

// Add inserts f into the set.
func (s Set) Add(f Fingerprint) {
	s[f] = struct{}{}
}

// Contains reports whether f is in the set.
func (s Set) Contains(f Fingerprint) bool {
	_, ok := s[f]
	return ok
}

// Union returns a new set holding every fingerprint of s and other.
func (s Set) Union(other Set) Set {
	merged := make(Set, len(s)+len(other))
	for f := range s {
		merged[f] = struct{}{}
	}
	for f := range other {
		merged[f] = struct{}{}
	}
	return merged
}

// Diff returns the fingerprints in s that are not in other.
func (s Set) Diff(other Set) Set {
	diff := make(Set)
	for f := range s {
		if !other.Contains(f) {
			diff[f] = struct{}{}
		}
	}
	return diff
}

// Equal reports whether both sets hold exactly the same fingerprints.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for f := range s {
		if !other.Contains(f) {
			return false
		}
	}
	return true
}

// Sorted returns the fingerprints in lexical order, as plain strings ready
// for the engine's recipient arguments.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}

// String renders the set for log messages.
func (s Set) String() string {
	return strings.Join(s.Sorted(), ", ")
}
