package job

import (
	"encoding/json"
	"fmt"
	"time"

	domjob "github.com/jobgrid/jobgrid/internal/domain/job"
)

// postingDTO is the RedisJSON document shape for a job posting.
type postingDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Remote      bool       `json:"remote"`
	JobType     string     `json:"job_type,omitempty"`
	Experience  string     `json:"experience,omitempty"`
	Salary      float64    `json:"salary,omitempty"`
	TechSlugs   []string   `json:"tech_slugs,omitempty"`
	CategoryID  string     `json:"category_id"`
	CompanyID   string     `json:"company_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

func decodePosting(data []byte) (domjob.Posting, error) {
	var dto postingDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domjob.Posting{}, fmt.Errorf("unmarshal posting: %w", err)
	}
	return dto.toDomain(), nil
}

func (d postingDTO) toDomain() domjob.Posting {
	a := domjob.Attrs{
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Remote:      d.Remote,
		JobType:     domjob.Type(d.JobType),
		Experience:  domjob.Experience(d.Experience),
		Salary:      d.Salary,
		TechSlugs:   d.TechSlugs,
		CategoryID:  d.CategoryID,
		CompanyID:   d.CompanyID,
		Status:      domjob.Status(d.Status),
		CreatedAt:   d.CreatedAt,
	}
	if d.PublishedAt != nil {
		a.PublishedAt = *d.PublishedAt
	}
	if d.Deadline != nil {
		a.Deadline = *d.Deadline
	}
	return domjob.Reconstruct(d.ID, a)
}

// EncodePosting serializes a posting into its stored JSON document.
// Used by the seeding tool; the engine itself never writes postings.
func EncodePosting(p domjob.Posting) ([]byte, error) {
	dto := postingDTO{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Location:    p.Location(),
		Remote:      p.Remote(),
		JobType:     string(p.JobType()),
		Experience:  string(p.Experience()),
		Salary:      p.Salary(),
		TechSlugs:   p.TechSlugs(),
		CategoryID:  p.CategoryID(),
		CompanyID:   p.CompanyID(),
		Status:      string(p.Status()),
		CreatedAt:   p.CreatedAt(),
	}
	if !p.PublishedAt().IsZero() {
		t := p.PublishedAt()
		dto.PublishedAt = &t
	}
	if !p.Deadline().IsZero() {
		t := p.Deadline()
		dto.Deadline = &t
	}
	return json.Marshal(dto)
}
