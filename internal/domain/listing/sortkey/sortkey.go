// Package sortkey resolves listing sort keys to orderings.
//
// The random key is an explicit non-determinism contract: every
// invocation produces a fresh permutation, so paginating a random sort
// may repeat or drop items across pages. This is a documented property
// of the key, not a defect; a stable shuffle would require a
// request-scoped seed parameter that the wire contract does not carry.
package sortkey

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
)

// Key is a listing sort key.
type Key string

// Sort key constants.
const (
	Newest Key = "newest"
	Alpha  Key = "alpha"
	Random Key = "random"
)

// IsValid checks if the key is one of the supported values.
func (k Key) IsValid() bool {
	return k == Newest || k == Alpha || k == Random
}

// Parse resolves a raw sort parameter, falling back for unknown keys.
func Parse(s string, fallback Key) Key {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if k.IsValid() {
		return k
	}
	return fallback
}

// Jobs orders postings in place.
// newest: effective publish date descending, id descending on ties.
// alpha: title ascending case-insensitive, id ascending on ties.
func Jobs(items []job.Posting, k Key) {
	switch k {
	case Alpha:
		sort.Slice(items, func(i, j int) bool {
			a, b := strings.ToLower(items[i].Title()), strings.ToLower(items[j].Title())
			if a != b {
				return a < b
			}
			return items[i].ID() < items[j].ID()
		})
	case Random:
		rand.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	default: // Newest
		sort.Slice(items, func(i, j int) bool {
			a, b := items[i].EffectivePublishDate(), items[j].EffectivePublishDate()
			if !a.Equal(b) {
				return a.After(b)
			}
			return items[i].ID() > items[j].ID()
		})
	}
}

// Companies orders companies in place with the same key semantics;
// alpha orders by company name, newest by profile creation time.
func Companies(items []company.Company, k Key) {
	switch k {
	case Alpha:
		sort.Slice(items, func(i, j int) bool {
			a, b := strings.ToLower(items[i].Name()), strings.ToLower(items[j].Name())
			if a != b {
				return a < b
			}
			return items[i].ID() < items[j].ID()
		})
	case Random:
		rand.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	default: // Newest
		sort.Slice(items, func(i, j int) bool {
			a, b := items[i].CreatedAt(), items[j].CreatedAt()
			if !a.Equal(b) {
				return a.After(b)
			}
			return items[i].ID() > items[j].ID()
		})
	}
}
