package companies

import (
	"context"

	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
)

// Repository defines the storage contract for companies.
type Repository interface {
	List(ctx context.Context) ([]company.Company, error)
	Get(ctx context.Context, id string) (company.Company, error)
}

// JobReader reads postings for the per-company job listing.
type JobReader interface {
	List(ctx context.Context) ([]job.Posting, error)
}
