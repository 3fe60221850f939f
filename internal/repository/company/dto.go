package company

import (
	"encoding/json"
	"fmt"
	"time"

	domco "github.com/jobgrid/jobgrid/internal/domain/company"
)

// companyDTO is the RedisJSON document shape for a company profile.
type companyDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	SizeBucket  string    `json:"size_bucket,omitempty"`
	Location    string    `json:"location,omitempty"`
	Active      bool      `json:"active"`
	LogoURL     string    `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func decodeCompany(data []byte) (domco.Company, error) {
	var dto companyDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domco.Company{}, fmt.Errorf("unmarshal company: %w", err)
	}
	return domco.Reconstruct(dto.ID, domco.Attrs{
		Name:        dto.Name,
		Description: dto.Description,
		Website:     dto.Website,
		SizeBucket:  dto.SizeBucket,
		Location:    dto.Location,
		Active:      dto.Active,
		LogoURL:     dto.LogoURL,
		CreatedAt:   dto.CreatedAt,
	}), nil
}

// EncodeCompany serializes a company into its stored JSON document.
// Used by the seeding tool.
func EncodeCompany(c domco.Company) ([]byte, error) {
	return json.Marshal(companyDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Website:     c.Website(),
		SizeBucket:  c.SizeBucket(),
		Location:    c.Location(),
		Active:      c.Active(),
		LogoURL:     c.LogoURL(),
		CreatedAt:   c.CreatedAt(),
	})
}
