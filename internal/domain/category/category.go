package category

import (
	"fmt"
	"strings"
)

// Category is a job category (immutable value object).
// The slug is the unique, case-insensitive lookup key.
type Category struct {
	id      string
	name    string
	slug    string
	iconURL string
}

// New validates and creates a Category.
func New(id, name, slug, iconURL string) (Category, error) {
	if id == "" {
		return Category{}, fmt.Errorf("category ID is required")
	}
	if name == "" {
		return Category{}, fmt.Errorf("category name is required")
	}
	if slug == "" {
		return Category{}, fmt.Errorf("category slug is required")
	}
	return Category{id: id, name: name, slug: slug, iconURL: iconURL}, nil
}

// Reconstruct creates a Category without validation (storage hydration).
func Reconstruct(id, name, slug, iconURL string) Category {
	return Category{id: id, name: name, slug: slug, iconURL: iconURL}
}

// ID returns the category identifier.
func (c *Category) ID() string { return c.id }

// Name returns the category display name.
func (c *Category) Name() string { return c.name }

// Slug returns the lookup slug.
func (c *Category) Slug() string { return c.slug }

// IconURL returns the icon URL.
func (c *Category) IconURL() string { return c.iconURL }

// MatchesSlug reports whether the given slug matches, case-insensitively.
func (c *Category) MatchesSlug(slug string) bool {
	return strings.EqualFold(c.slug, slug)
}
