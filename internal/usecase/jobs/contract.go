package jobs

import (
	"context"

	"github.com/jobgrid/jobgrid/internal/domain/category"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
)

// Repository defines the storage contract for job postings.
type Repository interface {
	List(ctx context.Context) ([]job.Posting, error)
	Get(ctx context.Context, id string) (job.Posting, error)
}

// CompanyReader reads companies for search scope and lookups.
type CompanyReader interface {
	List(ctx context.Context) ([]company.Company, error)
}

// CategoryReader reads categories for slug resolution.
type CategoryReader interface {
	List(ctx context.Context) ([]category.Category, error)
}

// TechnologyReader reads technologies for slug/name resolution.
type TechnologyReader interface {
	List(ctx context.Context) ([]technology.Technology, error)
}
