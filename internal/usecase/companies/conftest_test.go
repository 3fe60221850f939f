package companies

import (
	"context"
	"time"

	"github.com/jobgrid/jobgrid/internal/domain"
	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
)

type repoMock struct {
	listFn func(ctx context.Context) ([]company.Company, error)
	getFn  func(ctx context.Context, id string) (company.Company, error)
}

func (m *repoMock) List(ctx context.Context) ([]company.Company, error) { return m.listFn(ctx) }
func (m *repoMock) Get(ctx context.Context, id string) (company.Company, error) {
	return m.getFn(ctx, id)
}

type jobReaderMock struct {
	listFn func(ctx context.Context) ([]job.Posting, error)
}

func (m *jobReaderMock) List(ctx context.Context) ([]job.Posting, error) { return m.listFn(ctx) }

func testCatalog() *catalog.Catalog {
	cat, err := catalog.New(catalog.Params{
		VisibleStatuses:  []string{"active"},
		LocationPrefixes: []string{"office", "city", "гр."},
		SizeBuckets: []catalog.BucketDef{
			{Key: "micro", Label: "1-9"},
			{Key: "small", Label: "10-49"},
			{Key: "medium", Label: "50-249"},
			{Key: "large", Label: "250+"},
		},
		Locations: []catalog.PointDef{
			{Name: "Sofia", Lat: 42.6977, Lon: 23.3219},
			{Name: "Plovdiv", Lat: 42.1354, Lon: 24.7453},
		},
	})
	if err != nil {
		panic(err)
	}
	return cat
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func intPtr(n int) *int { return &n }

func fixtureCompanies() []company.Company {
	return []company.Company{
		company.Reconstruct("co-acme", company.Attrs{
			Name: "Acme", SizeBucket: "small", Location: "Sofia",
			Active: true, CreatedAt: fixedNow.Add(-72 * time.Hour),
		}),
		company.Reconstruct("co-beta", company.Attrs{
			Name: "Beta Soft", SizeBucket: "medium", Location: "Office Sofia",
			Active: true, CreatedAt: fixedNow.Add(-24 * time.Hour),
		}),
		company.Reconstruct("co-gamma", company.Attrs{
			Name: "Gamma Labs", SizeBucket: "micro", Location: "Varna",
			Active: true, CreatedAt: fixedNow.Add(-48 * time.Hour),
		}),
		company.Reconstruct("co-dormant", company.Attrs{
			Name: "Dormant Inc", SizeBucket: "large", Location: "Sofia",
			Active: false, CreatedAt: fixedNow.Add(-96 * time.Hour),
		}),
	}
}

func fixturePostings() []job.Posting {
	return []job.Posting{
		job.Reconstruct("j1", job.Attrs{
			Title: "Backend Engineer", CompanyID: "co-acme", CategoryID: "cat-dev",
			Status: job.StatusActive, JobType: job.TypeFullTime,
			Experience: job.ExperienceSenior, CreatedAt: fixedNow,
			PublishedAt: fixedNow.Add(-24 * time.Hour),
		}),
		job.Reconstruct("j2", job.Attrs{
			Title: "Office Manager", CompanyID: "co-acme", CategoryID: "cat-ops",
			Status: job.StatusActive, JobType: job.TypeFullTime,
			Experience: job.ExperienceMid, CreatedAt: fixedNow,
			PublishedAt: fixedNow.Add(-2 * time.Hour),
		}),
		job.Reconstruct("j3", job.Attrs{
			Title: "Closed Role", CompanyID: "co-acme", CategoryID: "cat-dev",
			Status: job.StatusClosed, JobType: job.TypeFullTime,
			Experience: job.ExperienceMid, CreatedAt: fixedNow,
		}),
		job.Reconstruct("j4", job.Attrs{
			Title: "Data Analyst", CompanyID: "co-beta", CategoryID: "cat-data",
			Status: job.StatusActive, JobType: job.TypeFullTime,
			Experience: job.ExperienceJunior, CreatedAt: fixedNow,
			PublishedAt: fixedNow.Add(-12 * time.Hour),
		}),
	}
}

func fixtureService() *Service {
	byID := make(map[string]company.Company)
	for _, c := range fixtureCompanies() {
		byID[c.ID()] = c
	}
	return New(
		&repoMock{
			listFn: func(context.Context) ([]company.Company, error) { return fixtureCompanies(), nil },
			getFn: func(_ context.Context, id string) (company.Company, error) {
				c, ok := byID[id]
				if !ok {
					return company.Company{}, domain.ErrCompanyNotFound
				}
				return c, nil
			},
		},
		&jobReaderMock{
			listFn: func(context.Context) ([]job.Posting, error) { return fixturePostings(), nil },
		},
		testCatalog(),
	)
}
