package categories

import (
	"context"

	"github.com/jobgrid/jobgrid/internal/domain/category"
	"github.com/jobgrid/jobgrid/internal/domain/job"
)

// Repository defines the storage contract for categories.
type Repository interface {
	List(ctx context.Context) ([]category.Category, error)
}

// JobReader reads postings for per-category summaries.
type JobReader interface {
	List(ctx context.Context) ([]job.Posting, error)
}
