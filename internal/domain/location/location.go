// Package location normalizes free-text location strings so that stored
// values like "Office Sofia" and filter values like "sofia" compare equal.
package location

import "strings"

// Normalizer canonicalizes location strings: trim, lowercase, and strip
// configured prefix words ("office", "city", "гр.").
type Normalizer struct {
	prefixes []string
}

// NewNormalizer creates a Normalizer with the given prefix words.
// Prefixes are compared lowercase.
func NewNormalizer(prefixes []string) *Normalizer {
	lowered := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return &Normalizer{prefixes: lowered}
}

// Normalize returns the canonical form of a location string.
func (n *Normalizer) Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	for stripped := true; stripped; {
		stripped = false
		for _, p := range n.prefixes {
			if !strings.HasPrefix(s, p) {
				continue
			}
			rest := s[len(p):]
			// A prefix word must end at a word boundary ("гр." carries
			// its own delimiter, "office" needs a following space).
			if rest != "" && !strings.HasSuffix(p, ".") && rest[0] != ' ' {
				continue
			}
			s = strings.TrimLeft(rest, " .")
			stripped = true
		}
	}

	return strings.Join(strings.Fields(s), " ")
}

// Match reports whether the normalized stored value contains the
// normalized query value.
func (n *Normalizer) Match(stored, query string) bool {
	q := n.Normalize(query)
	if q == "" {
		return true
	}
	return strings.Contains(n.Normalize(stored), q)
}
