package categories

import (
	"context"
	"fmt"
	"time"

	"github.com/jobgrid/jobgrid/internal/domain"
	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/category"
)

// newWindow is how far back a posting's effective publish date may lie
// for the posting to count as new in a category summary.
const newWindow = 30 * 24 * time.Hour

// Service serves the category catalog and per-category job summaries.
type Service struct {
	categories Repository
	jobs       JobReader
	cat        *catalog.Catalog
	now        func() time.Time
}

// New creates a category service.
func New(categories Repository, jobs JobReader, cat *catalog.Catalog) *Service {
	return &Service{categories: categories, jobs: jobs, cat: cat, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns all categories in alphabetical order.
func (s *Service) List(ctx context.Context) ([]category.Category, error) {
	items, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

// GetBySlug resolves a category by slug, case-insensitively.
func (s *Service) GetBySlug(ctx context.Context, slug string) (category.Category, error) {
	items, err := s.categories.List(ctx)
	if err != nil {
		return category.Category{}, fmt.Errorf("list categories: %w", err)
	}
	for i := range items {
		if items[i].MatchesSlug(slug) {
			return items[i], nil
		}
	}
	return category.Category{}, domain.ErrCategoryNotFound
}

// Summary aggregates a category's visible postings.
type Summary struct {
	Category  category.Category
	TotalJobs int
	NewJobs   int
}

// SummaryBySlug counts the category's visible postings and how many of
// them were published inside the new-posting window.
func (s *Service) SummaryBySlug(ctx context.Context, slug string) (Summary, error) {
	cat, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return Summary{}, err
	}

	postings, err := s.jobs.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list postings: %w", err)
	}

	cutoff := s.now().Add(-newWindow)
	out := Summary{Category: cat}
	for i := range postings {
		p := &postings[i]
		if p.CategoryID() != cat.ID() || !s.cat.IsVisible(p.Status()) {
			continue
		}
		out.TotalJobs++
		if p.EffectivePublishDate().After(cutoff) {
			out.NewJobs++
		}
	}
	return out, nil
}
