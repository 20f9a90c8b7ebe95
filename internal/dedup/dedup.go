// Package dedup removes near-identical fragments from quiz pools using
// fingerprint equality plus a positional character-match similarity check.
package dedup

// SimilarityThreshold is the positional match ratio above which two
// fingerprints are considered duplicates. The comparison is strict: a ratio
// of exactly 0.8 is NOT a duplicate.
const SimilarityThreshold = 0.8

// Set accumulates accepted fingerprints. Each candidate is compared against
// every accepted fingerprint (O(n²) by design: pool sizes are bounded by the
// commit sample cap, and the approximate-match semantics matter more than
// asymptotic cost here).
type Set struct {
	accepted []string
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add reports whether the fingerprint was accepted. The first matching
// accepted fingerprint rejects the candidate.
func (s *Set) Add(fingerprint string) bool {
	for _, existing := range s.accepted {
		if IsDuplicate(existing, fingerprint) {
			return false
		}
	}
	s.accepted = append(s.accepted, fingerprint)
	return true
}

// Len returns the number of accepted fingerprints.
func (s *Set) Len() int {
	return len(s.accepted)
}

// IsDuplicate reports whether two fingerprints identify the same content:
// byte-identical, or positionally similar above the threshold.
func IsDuplicate(a, b string) bool {
	if a == b {
		return true
	}
	return Similarity(a, b) > SimilarityThreshold
}

// Similarity is the positional character-match ratio over the shorter
// fingerprint's length: count positions i where a[i] == b[i], divide by
// min(len(a), len(b)).
func Similarity(a, b string) float64 {
	short := len(a)
	if len(b) < short {
		short = len(b)
	}
	if short == 0 {
		return 0
	}

	matches := 0
	for i := 0; i < short; i++ {
		if a[i] == b[i] {
			matches++
		}
	}

	return float64(matches) / float64(short)
}

// Filter returns the items surviving deduplication, preserving input order.
// The fingerprint of element i is fingerprints(i).
func Filter[T any](items []T, fingerprint func(T) string) []T {
	set := NewSet()
	var kept []T
	for _, item := range items {
		if set.Add(fingerprint(item)) {
			kept = append(kept, item)
		}
	}
	return kept
}
