package chi

import (
	"context"
	"net/http"
	"time"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jobgrid/jobgrid/internal/domain"
	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/category"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
	categoriesuc "github.com/jobgrid/jobgrid/internal/usecase/categories"
	companiesuc "github.com/jobgrid/jobgrid/internal/usecase/companies"
	healthuc "github.com/jobgrid/jobgrid/internal/usecase/health"
	homeuc "github.com/jobgrid/jobgrid/internal/usecase/home"
	jobsuc "github.com/jobgrid/jobgrid/internal/usecase/jobs"
	technologiesuc "github.com/jobgrid/jobgrid/internal/usecase/technologies"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

// memStore serves every read contract of the usecase layer from slices.
type memStore struct {
	postings   []job.Posting
	companies  []company.Company
	categories []category.Category
	techs      []technology.Technology
}

func (m *memStore) List(ctx context.Context) ([]job.Posting, error) { return m.postings, nil }

func (m *memStore) Get(ctx context.Context, id string) (job.Posting, error) {
	for i := range m.postings {
		if m.postings[i].ID() == id {
			return m.postings[i], nil
		}
	}
	return job.Posting{}, domain.ErrJobNotFound
}

type memCompanies struct{ items []company.Company }

func (m *memCompanies) List(ctx context.Context) ([]company.Company, error) { return m.items, nil }

func (m *memCompanies) Get(ctx context.Context, id string) (company.Company, error) {
	for i := range m.items {
		if m.items[i].ID() == id {
			return m.items[i], nil
		}
	}
	return company.Company{}, domain.ErrCompanyNotFound
}

type memCategories struct{ items []category.Category }

func (m *memCategories) List(ctx context.Context) ([]category.Category, error) {
	return m.items, nil
}

type memTechs struct{ items []technology.Technology }

func (m *memTechs) List(ctx context.Context) ([]technology.Technology, error) {
	return m.items, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testCatalog() *catalog.Catalog {
	cat, err := catalog.New(catalog.Params{
		VisibleStatuses:  []string{"active"},
		LocationPrefixes: []string{"office", "city", "гр."},
		SalaryBands: []catalog.BandDef{
			{Key: "0-1500", Label: "Up to 1500", Min: 0, Max: 1500},
			{Key: "1500-3000", Label: "1500 – 3000", Min: 1500, Max: 3000},
			{Key: "3000-5000", Label: "3000 – 5000", Min: 3000, Max: 5000},
			{Key: "5000+", Label: "5000 and above", Min: 5000, Max: 0},
		},
		SizeBuckets: []catalog.BucketDef{
			{Key: "small", Label: "10-49"},
			{Key: "medium", Label: "50-249"},
		},
		Locations: []catalog.PointDef{
			{Name: "Sofia", Lat: 42.6977, Lon: 23.3219},
		},
	})
	if err != nil {
		panic(err)
	}
	return cat
}

func newTestHandler() http.Handler {
	cat := testCatalog()

	jobs := &memStore{postings: []job.Posting{
		job.Reconstruct("j1", job.Attrs{
			Title: "Backend Engineer", Description: "Go services",
			Location: "Sofia", JobType: job.TypeFullTime,
			Experience: job.ExperienceSenior, Salary: 4200,
			TechSlugs: []string{"go"}, CategoryID: "cat-dev", CompanyID: "co-acme",
			Status: job.StatusActive, CreatedAt: fixedNow,
			PublishedAt: fixedNow.Add(-24 * time.Hour),
		}),
		job.Reconstruct("j2", job.Attrs{
			Title: "QA Analyst", Location: "Plovdiv", JobType: job.TypePartTime,
			Experience: job.ExperienceJunior,
			CategoryID: "cat-qa", CompanyID: "co-acme",
			Status: job.StatusActive, CreatedAt: fixedNow,
			PublishedAt: fixedNow.Add(-48 * time.Hour),
		}),
		job.Reconstruct("j3", job.Attrs{
			Title: "Hidden Draft", Location: "Sofia", JobType: job.TypeContract,
			Experience: job.ExperienceMid,
			CategoryID: "cat-dev", CompanyID: "co-acme",
			Status: job.StatusDraft, CreatedAt: fixedNow,
		}),
	}}
	companies := &memCompanies{items: []company.Company{
		company.Reconstruct("co-acme", company.Attrs{
			Name: "Acme", SizeBucket: "small", Location: "Sofia",
			Active: true, CreatedAt: fixedNow.Add(-72 * time.Hour),
		}),
		company.Reconstruct("co-beta", company.Attrs{
			Name: "Beta Soft", SizeBucket: "medium", Location: "Varna",
			Active: true, CreatedAt: fixedNow.Add(-24 * time.Hour),
		}),
		company.Reconstruct("co-mill", company.Attrs{
			Name: "Old Mill", SizeBucket: "medium", Location: "Sofia",
			Active: false, CreatedAt: fixedNow.Add(-96 * time.Hour),
		}),
	}}
	categories := &memCategories{items: []category.Category{
		category.Reconstruct("cat-dev", "Development", "development", ""),
		category.Reconstruct("cat-qa", "Quality Assurance", "qa", ""),
	}}
	techs := &memTechs{items: []technology.Technology{
		technology.Reconstruct("t1", "Go", "go", "", true),
		technology.Reconstruct("t2", "React", "react", "", true),
	}}

	server := NewServer(
		jobsuc.New(jobs, companies, categories, techs, cat),
		companiesuc.New(companies, jobs, cat),
		categoriesuc.New(categories, jobs, cat).
			WithClock(func() time.Time { return fixedNow }),
		technologiesuc.New(techs),
		homeuc.New(jobs, categories, techs, cat),
		healthuc.New(okPinger{}, nil),
		zap.NewNop(),
	)

	r := chirouter.NewRouter()
	server.Mount(r)
	return r
}
