// Package identity tracks commit authorship identities discovered in history.
package identity

import (
	"fmt"
	"sort"
)

// Identity is a (name, email) author pair. The pair is the unique key:
// the same person committing under two emails counts as two identities.
type Identity struct {
	Name  string
	Email string
}

// Key returns the canonical map key for the identity.
func (i Identity) Key() string {
	return fmt.Sprintf("%s <%s>", i.Name, i.Email)
}

// String implements fmt.Stringer.
func (i Identity) String() string {
	return i.Key()
}

// Ranked is an identity together with its commit count.
type Ranked struct {
	Identity Identity
	Commits  int
}

// Tally accumulates commit counts per identity over one analysis run.
type Tally struct {
	counts map[string]int
	idents map[string]Identity
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{
		counts: make(map[string]int),
		idents: make(map[string]Identity),
	}
}

// Record counts one commit for the given identity.
func (t *Tally) Record(id Identity) {
	key := id.Key()
	t.idents[key] = id
	t.counts[key]++
}

// Count returns the number of commits recorded for the identity.
func (t *Tally) Count(id Identity) int {
	return t.counts[id.Key()]
}

// Len returns the number of distinct identities seen.
func (t *Tally) Len() int {
	return len(t.idents)
}

// Ranked returns all identities sorted by commit count descending,
// ties broken by key for stable output.
func (t *Tally) Ranked() []Ranked {
	ranked := make([]Ranked, 0, len(t.idents))
	for key, id := range t.idents {
		ranked = append(ranked, Ranked{Identity: id, Commits: t.counts[key]})
	}

	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Commits != ranked[b].Commits {
			return ranked[a].Commits > ranked[b].Commits
		}
		return ranked[a].Identity.Key() < ranked[b].Identity.Key()
	})

	return ranked
}
