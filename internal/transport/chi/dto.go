package chi

import (
	"time"

	"github.com/jobgrid/jobgrid/internal/domain/category"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/listing/facet"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
	companiesuc "github.com/jobgrid/jobgrid/internal/usecase/companies"
	homeuc "github.com/jobgrid/jobgrid/internal/usecase/home"
)

// errorCode identifies a machine-readable error class on the wire.
type errorCode string

const (
	codeBadRequest         errorCode = "bad_request"
	codeNotFound           errorCode = "not_found"
	codeJobNotFound        errorCode = "job_not_found"
	codeCompanyNotFound    errorCode = "company_not_found"
	codeCategoryNotFound   errorCode = "category_not_found"
	codeTechnologyNotFound errorCode = "technology_not_found"
	codeInternalError      errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type jobResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Remote      bool       `json:"remote"`
	JobType     string     `json:"job_type"`
	Experience  string     `json:"experience"`
	Salary      float64    `json:"salary,omitempty"`
	TechSlugs   []string   `json:"tech_slugs,omitempty"`
	CategoryID  string     `json:"category_id"`
	CompanyID   string     `json:"company_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

func jobToResponse(p *job.Posting) jobResponse {
	resp := jobResponse{
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
		resp.PublishedAt = &t
	}
	if !p.Deadline().IsZero() {
		t := p.Deadline()
		resp.Deadline = &t
	}
	return resp
}

func jobsToResponse(items []job.Posting) []jobResponse {
	out := make([]jobResponse, len(items))
	for i := range items {
		out[i] = jobToResponse(&items[i])
	}
	return out
}

type companyResponse struct {
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

func companyToResponse(c *company.Company) companyResponse {
	return companyResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Website:     c.Website(),
		SizeBucket:  c.SizeBucket(),
		Location:    c.Location(),
		Active:      c.Active(),
		LogoURL:     c.LogoURL(),
		CreatedAt:   c.CreatedAt(),
	}
}

func companiesToResponse(items []company.Company) []companyResponse {
	out := make([]companyResponse, len(items))
	for i := range items {
		out[i] = companyToResponse(&items[i])
	}
	return out
}

type categoryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	IconURL string `json:"icon_url,omitempty"`
}

func categoryToResponse(c *category.Category) categoryResponse {
	return categoryResponse{ID: c.ID(), Name: c.Name(), Slug: c.Slug(), IconURL: c.IconURL()}
}

type technologyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	LogoURL string `json:"logo_url,omitempty"`
	Active  bool   `json:"active"`
}

func technologyToResponse(t *technology.Technology) technologyResponse {
	return technologyResponse{
		ID: t.ID(), Name: t.Name(), Slug: t.Slug(), LogoURL: t.LogoURL(), Active: t.Active(),
	}
}

type bucketResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

func bucketsToResponse(items []facet.Bucket) []bucketResponse {
	out := make([]bucketResponse, len(items))
	for i, b := range items {
		out[i] = bucketResponse{Key: b.Key, Label: b.Label, Count: b.Count}
	}
	return out
}

type facetsResponse struct {
	Locations   []bucketResponse `json:"locations"`
	Experience  []bucketResponse `json:"experience"`
	JobTypes    []bucketResponse `json:"job_types"`
	SalaryBands []bucketResponse `json:"salary_bands"`
	RemoteCount int              `json:"remote_count"`
	OfficeCount int              `json:"office_count"`
}

func facetsToResponse(f facet.Facets) facetsResponse {
	return facetsResponse{
		Locations:   bucketsToResponse(f.Locations),
		Experience:  bucketsToResponse(f.Experience),
		JobTypes:    bucketsToResponse(f.JobTypes),
		SalaryBands: bucketsToResponse(f.SalaryBands),
		RemoteCount: f.RemoteCount,
		OfficeCount: f.OfficeCount,
	}
}

type mapPointResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	LogoURL  string  `json:"logo_url,omitempty"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

func mapPointsToResponse(items []companiesuc.MapPoint) []mapPointResponse {
	out := make([]mapPointResponse, len(items))
	for i, p := range items {
		out[i] = mapPointResponse{
			ID: p.ID, Name: p.Name, Location: p.Location,
			LogoURL: p.LogoURL, Lat: p.Lat, Lon: p.Lon,
		}
	}
	return out
}

type techCountResponse struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type sectionResponse struct {
	Category categoryResponse    `json:"category"`
	JobCount int                 `json:"job_count"`
	TopTechs []techCountResponse `json:"top_techs"`
}

func sectionsToResponse(items []homeuc.Section) []sectionResponse {
	out := make([]sectionResponse, len(items))
	for i := range items {
		s := &items[i]
		techs := make([]techCountResponse, len(s.TopTechs))
		for j, t := range s.TopTechs {
			techs[j] = techCountResponse{Slug: t.Slug, Name: t.Name, Count: t.Count}
		}
		out[i] = sectionResponse{
			Category: categoryToResponse(&s.Category),
			JobCount: s.JobCount,
			TopTechs: techs,
		}
	}
	return out
}
