package home

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/category"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
)

// Service builds the landing-page section overview: one section per
// category with its visible job count and leading technologies.
type Service struct {
	jobs       JobReader
	categories CategoryReader
	techs      TechnologyReader
	cat        *catalog.Catalog
	takeTechs  int
}

// New creates a home section service.
func New(jobs JobReader, categories CategoryReader, techs TechnologyReader,
	cat *catalog.Catalog,
) *Service {
	return &Service{jobs: jobs, categories: categories, techs: techs, cat: cat, takeTechs: 6}
}

// WithTakeTechs overrides how many technologies each section carries.
func (s *Service) WithTakeTechs(take int) *Service {
	if take > 0 {
		s.takeTechs = take
	}
	return s
}

// Params optionally narrows the postings that feed the sections.
// TakeTechs overrides the configured per-section technology count when
// positive.
type Params struct {
	Location  string
	Remote    *bool
	TakeTechs int
}

// TechCount is a technology and how many of the section's postings use it.
type TechCount struct {
	Slug  string
	Name  string
	Count int
}

// Section is one category on the landing page.
type Section struct {
	Category category.Category
	JobCount int
	TopTechs []TechCount
}

// Sections returns every category as a section, ordered by job count
// descending then category name ascending. Categories without matching
// postings appear with a zero count and no technologies.
func (s *Service) Sections(ctx context.Context, p Params) ([]Section, error) {
	var (
		postings   []job.Posting
		categories []category.Category
		techs      []technology.Technology
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		postings, err = s.jobs.List(gctx)
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
		return nil, fmt.Errorf("load section data: %w", err)
	}

	nameBySlug := make(map[string]string, len(techs))
	for i := range techs {
		nameBySlug[techs[i].Slug()] = techs[i].Name()
	}

	norm := s.cat.Normalizer()
	counts := make(map[string]int, len(categories))
	techCounts := make(map[string]map[string]int, len(categories))
	for i := range postings {
		p2 := &postings[i]
		if !s.cat.IsVisible(p2.Status()) {
			continue
		}
		if p.Location != "" && !norm.Match(p2.Location(), p.Location) {
			continue
		}
		if p.Remote != nil && p2.Remote() != *p.Remote {
			continue
		}
		catID := p2.CategoryID()
		counts[catID]++
		if techCounts[catID] == nil {
			techCounts[catID] = make(map[string]int)
		}
		for _, slug := range p2.TechSlugs() {
			techCounts[catID][slug]++
		}
	}

	take := s.takeTechs
	if p.TakeTechs > 0 {
		take = p.TakeTechs
	}

	sections := make([]Section, 0, len(categories))
	for i := range categories {
		c := categories[i]
		sections = append(sections, Section{
			Category: c,
			JobCount: counts[c.ID()],
			TopTechs: topTechs(techCounts[c.ID()], nameBySlug, take),
		})
	}
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].JobCount != sections[j].JobCount {
			return sections[i].JobCount > sections[j].JobCount
		}
		return sections[i].Category.Name() < sections[j].Category.Name()
	})
	return sections, nil
}

// topTechs ranks a section's technologies by posting count descending,
// ties broken alphabetically by display name.
func topTechs(counts map[string]int, nameBySlug map[string]string, take int) []TechCount {
	if len(counts) == 0 {
		return nil
	}
	out := make([]TechCount, 0, len(counts))
	for slug, n := range counts {
		name, ok := nameBySlug[slug]
		if !ok {
			name = slug
		}
		out = append(out, TechCount{Slug: slug, Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	if len(out) > take {
		out = out[:take]
	}
	return out
}
