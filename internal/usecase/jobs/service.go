package jobs

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/category"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/listing/facet"
	"github.com/jobgrid/jobgrid/internal/domain/listing/filter"
	"github.com/jobgrid/jobgrid/internal/domain/listing/sortkey"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
)

// Service executes job listing queries: filter, facet, sort, paginate.
type Service struct {
	jobs            Repository
	companies       CompanyReader
	categories      CategoryReader
	techs           TechnologyReader
	cat             *catalog.Catalog
	defaultPageSize int
	maxPageSize     int
}

// New creates a job listing service.
func New(jobs Repository, companies CompanyReader, categories CategoryReader,
	techs TechnologyReader, cat *catalog.Catalog,
) *Service {
	return &Service{
		jobs: jobs, companies: companies, categories: categories, techs: techs,
		cat: cat, defaultPageSize: 20, maxPageSize: 100,
	}
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

// Query is a job listing request.
type Query struct {
	Filter   filter.JobParams
	Sort     string
	Page     int
	PageSize int
}

// Page is a job listing response.
type Page struct {
	Items      []job.Posting
	TotalCount int
	Page       int
	PageSize   int
	Facets     facet.Facets
}

// Search runs the full listing pipeline. The only suspension points are
// the four collaborator reads; filtering and aggregation are in-memory.
func (s *Service) Search(ctx context.Context, q Query) (Page, error) {
	postings, lk, err := s.load(ctx)
	if err != nil {
		return Page{}, err
	}

	f := filter.ParseJob(q.Filter, s.cat)
	match := f.Matcher(lk)

	matched := make([]job.Posting, 0, len(postings))
	for i := range postings {
		if match(&postings[i]) {
			matched = append(matched, postings[i])
		}
	}

	facets := buildFacets(ctx, postings, f, lk, s.cat)

	sortkey.Jobs(matched, sortkey.Parse(q.Sort, sortkey.Newest))

	page, pageSize := s.clampPage(q.Page, q.PageSize)
	return Page{
		Items:      paginate(matched, page, pageSize),
		TotalCount: len(matched),
		Page:       page,
		PageSize:   pageSize,
		Facets:     facets,
	}, nil
}

// Get returns a single posting by id.
func (s *Service) Get(ctx context.Context, id string) (job.Posting, error) {
	p, err := s.jobs.Get(ctx, id)
	if err != nil {
		return job.Posting{}, fmt.Errorf("get posting: %w", err)
	}
	return p, nil
}

// load fetches all collections in parallel and builds filter lookups.
func (s *Service) load(ctx context.Context) ([]job.Posting, filter.Lookups, error) {
	var (
		postings   []job.Posting
		companies  []company.Company
		categories []category.Category
		techs      []technology.Technology
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		postings, err = s.jobs.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		companies, err = s.companies.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categories.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		techs, err = s.techs.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, filter.Lookups{}, fmt.Errorf("load listing data: %w", err)
	}

	lk := filter.Lookups{
		CompanyNameByID:  make(map[string]string, len(companies)),
		CategoryIDBySlug: make(map[string]string, len(categories)),
		TechSlugByName:   make(map[string]string, len(techs)),
	}
	for i := range companies {
		lk.CompanyNameByID[companies[i].ID()] = companies[i].Name()
	}
	for i := range categories {
		lk.CategoryIDBySlug[strings.ToLower(categories[i].Slug())] = categories[i].ID()
	}
	for i := range techs {
		lk.TechSlugByName[strings.ToLower(techs[i].Name())] = techs[i].Slug()
		lk.TechSlugByName[strings.ToLower(techs[i].Slug())] = techs[i].Slug()
	}

	return postings, lk, nil
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

func paginate(items []job.Posting, page, pageSize int) []job.Posting {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
