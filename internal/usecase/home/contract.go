package home

import (
	"context"

	"github.com/jobgrid/jobgrid/internal/domain/category"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
)

// JobReader reads postings for the section aggregation.
type JobReader interface {
	List(ctx context.Context) ([]job.Posting, error)
}

// CategoryReader reads the categories that become sections.
type CategoryReader interface {
	List(ctx context.Context) ([]category.Category, error)
}

// TechnologyReader resolves tech slugs to display names.
type TechnologyReader interface {
	List(ctx context.Context) ([]technology.Technology, error)
}
