package company

import (
	"fmt"
	"time"
)

// Attrs carries the company attributes for construction and hydration.
type Attrs struct {
	Name        string
	Description string
	Website     string
	SizeBucket  string
	Location    string
	Active      bool
	LogoURL     string
	CreatedAt   time.Time
}

// Company is a company profile (immutable value object).
// One company owns many job postings; the engine only reads profiles.
type Company struct {
	id    string
	attrs Attrs
}

// New validates and creates a Company.
func New(id string, a Attrs) (Company, error) {
	if id == "" {
		return Company{}, fmt.Errorf("company ID is required")
	}
	if a.Name == "" {
		return Company{}, fmt.Errorf("company name is required")
	}
	return Company{id: id, attrs: a}, nil
}

// Reconstruct creates a Company without validation (storage hydration).
func Reconstruct(id string, a Attrs) Company {
	return Company{id: id, attrs: a}
}

// ID returns the company identifier.
func (c *Company) ID() string { return c.id }

// Name returns the company name.
func (c *Company) Name() string { return c.attrs.Name }

// Description returns the company description.
func (c *Company) Description() string { return c.attrs.Description }

// Website returns the company website URL.
func (c *Company) Website() string { return c.attrs.Website }

// SizeBucket returns the company-size bucket key.
func (c *Company) SizeBucket() string { return c.attrs.SizeBucket }

// Location returns the free-text location.
func (c *Company) Location() string { return c.attrs.Location }

// Active reports whether the company profile is active.
func (c *Company) Active() bool { return c.attrs.Active }

// LogoURL returns the logo URL.
func (c *Company) LogoURL() string { return c.attrs.LogoURL }

// CreatedAt returns the profile creation time.
func (c *Company) CreatedAt() time.Time { return c.attrs.CreatedAt }
