package companies

import (
	"context"
	"fmt"

	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/listing/filter"
	"github.com/jobgrid/jobgrid/internal/domain/listing/sortkey"
)

// Service executes company listing queries and company-scoped lookups.
type Service struct {
	companies       Repository
	jobs            JobReader
	cat             *catalog.Catalog
	suggestTake     int
	defaultPageSize int
	maxPageSize     int
}

// New creates a company listing service.
func New(companies Repository, jobs JobReader, cat *catalog.Catalog) *Service {
	return &Service{
		companies: companies, jobs: jobs, cat: cat,
		suggestTake: 8, defaultPageSize: 20, maxPageSize: 100,
	}
}

// WithSuggestTake overrides the default suggestion count.
func (s *Service) WithSuggestTake(take int) *Service {
	if take > 0 {
		s.suggestTake = take
	}
	return s
}

// WithPagination overrides the pagination defaults.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// Query is a company listing request.
type Query struct {
	Filter filter.CompanyParams
	Sort   string
}

// Result is a company listing response. The list is not paginated;
// callers get the full filtered set in the requested order.
type Result struct {
	Items      []company.Company
	TotalCount int
}

// List returns companies matching the filter. The default order is a
// fresh random permutation per request.
func (s *Service) List(ctx context.Context, q Query) (Result, error) {
	all, err := s.companies.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list companies: %w", err)
	}

	f := filter.ParseCompany(q.Filter, s.cat)
	matched := make([]company.Company, 0, len(all))
	for i := range all {
		if f.Matches(&all[i]) {
			matched = append(matched, all[i])
		}
	}

	sortkey.Companies(matched, sortkey.Parse(q.Sort, sortkey.Random))

	return Result{Items: matched, TotalCount: len(matched)}, nil
}

// Get returns a single company by id.
func (s *Service) Get(ctx context.Context, id string) (company.Company, error) {
	c, err := s.companies.Get(ctx, id)
	if err != nil {
		return company.Company{}, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// JobsPage is a page of a company's postings.
type JobsPage struct {
	Items      []job.Posting
	TotalCount int
	Page       int
	PageSize   int
}

// Jobs returns the company's visible postings, newest first. A missing
// company is an error; a company with no postings is an empty page.
func (s *Service) Jobs(ctx context.Context, companyID string, page, pageSize int) (JobsPage, error) {
	if _, err := s.companies.Get(ctx, companyID); err != nil {
		return JobsPage{}, fmt.Errorf("get company: %w", err)
	}

	all, err := s.jobs.List(ctx)
	if err != nil {
		return JobsPage{}, fmt.Errorf("list postings: %w", err)
	}

	matched := make([]job.Posting, 0)
	for i := range all {
		p := &all[i]
		if p.CompanyID() == companyID && s.cat.IsVisible(p.Status()) {
			matched = append(matched, all[i])
		}
	}
	sortkey.Jobs(matched, sortkey.Newest)

	page, pageSize = s.clampPage(page, pageSize)
	start := (page - 1) * pageSize
	items := []job.Posting(nil)
	if start < len(matched) {
		end := start + pageSize
		if end > len(matched) {
			end = len(matched)
		}
		items = matched[start:end]
	}

	return JobsPage{
		Items:      items,
		TotalCount: len(matched),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *Service) clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}
	return page, pageSize
}
