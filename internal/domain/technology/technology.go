package technology

import (
	"fmt"
	"strings"
)

// Technology is a technology reference (immutable value object).
type Technology struct {
	id      string
	name    string
	slug    string
	logoURL string
	active  bool
}

// New validates and creates a Technology.
func New(id, name, slug, logoURL string, active bool) (Technology, error) {
	if id == "" {
		return Technology{}, fmt.Errorf("technology ID is required")
	}
	if name == "" {
		return Technology{}, fmt.Errorf("technology name is required")
	}
	if slug == "" {
		return Technology{}, fmt.Errorf("technology slug is required")
	}
	return Technology{id: id, name: name, slug: slug, logoURL: logoURL, active: active}, nil
}

// Reconstruct creates a Technology without validation (storage hydration).
func Reconstruct(id, name, slug, logoURL string, active bool) Technology {
	return Technology{id: id, name: name, slug: slug, logoURL: logoURL, active: active}
}

// ID returns the technology identifier.
func (t *Technology) ID() string { return t.id }

// Name returns the technology display name.
func (t *Technology) Name() string { return t.name }

// Slug returns the lookup slug.
func (t *Technology) Slug() string { return t.slug }

// LogoURL returns the logo URL.
func (t *Technology) LogoURL() string { return t.logoURL }

// Active reports whether the technology is active.
func (t *Technology) Active() bool { return t.active }

// MatchesSlug reports whether the given slug matches, case-insensitively.
func (t *Technology) MatchesSlug(slug string) bool {
	return strings.EqualFold(t.slug, slug)
}
