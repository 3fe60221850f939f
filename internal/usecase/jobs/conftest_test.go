package jobs

import (
	"context"
	"time"

	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/category"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
)

type repoMock struct {
	listFn func(ctx context.Context) ([]job.Posting, error)
	getFn  func(ctx context.Context, id string) (job.Posting, error)
}

func (m *repoMock) List(ctx context.Context) ([]job.Posting, error) { return m.listFn(ctx) }
func (m *repoMock) Get(ctx context.Context, id string) (job.Posting, error) {
	return m.getFn(ctx, id)
}

type companyReaderMock struct {
	listFn func(ctx context.Context) ([]company.Company, error)
}

func (m *companyReaderMock) List(ctx context.Context) ([]company.Company, error) {
	return m.listFn(ctx)
}

type categoryReaderMock struct {
	listFn func(ctx context.Context) ([]category.Category, error)
}

func (m *categoryReaderMock) List(ctx context.Context) ([]category.Category, error) {
	return m.listFn(ctx)
}

type technologyReaderMock struct {
	listFn func(ctx context.Context) ([]technology.Technology, error)
}

func (m *technologyReaderMock) List(ctx context.Context) ([]technology.Technology, error) {
	return m.listFn(ctx)
}

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
	})
	if err != nil {
		panic(err)
	}
	return cat
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func mustPosting(id string, a job.Attrs) job.Posting {
	if a.Status == "" {
		a.Status = job.StatusActive
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = fixedNow
	}
	return job.Reconstruct(id, a)
}

// fixturePostings covers every filter dimension: mixed locations,
// experience levels, job types, salaries, remote flags and statuses.
func fixturePostings() []job.Posting {
	return []job.Posting{
		mustPosting("j1", job.Attrs{
			Title: "Backend Engineer", Description: "Go services",
			Location: "Office Sofia", JobType: job.TypeFullTime,
			Experience: job.ExperienceSenior, Salary: 4200,
			TechSlugs: []string{"go", "postgres"},
			CategoryID: "cat-dev", CompanyID: "co-acme",
			PublishedAt: fixedNow.Add(-24 * time.Hour),
		}),
		mustPosting("j2", job.Attrs{
			Title: "Frontend Developer", Description: "React apps",
			Location: "Sofia", Remote: true, JobType: job.TypeFullTime,
			Experience: job.ExperienceMid, Salary: 2500,
			TechSlugs: []string{"react"},
			CategoryID: "cat-dev", CompanyID: "co-beta",
			PublishedAt: fixedNow.Add(-48 * time.Hour),
		}),
		mustPosting("j3", job.Attrs{
			Title: "QA Analyst", Description: "Manual and automation",
			Location: "Plovdiv", JobType: job.TypePartTime,
			Experience: job.ExperienceJunior,
			CategoryID: "cat-qa", CompanyID: "co-acme",
			PublishedAt: fixedNow.Add(-72 * time.Hour),
		}),
		mustPosting("j4", job.Attrs{
			Title: "Team Lead", Description: "Platform team",
			Location: "гр.София", JobType: job.TypeFullTime,
			Experience: job.ExperienceLead, Salary: 6000,
			TechSlugs: []string{"go"},
			CategoryID: "cat-dev", CompanyID: "co-beta",
			PublishedAt: fixedNow.Add(-2 * time.Hour),
		}),
		mustPosting("j5", job.Attrs{
			Title: "Draft Opening", Description: "not yet published",
			Location: "Sofia", JobType: job.TypeContract,
			Experience: job.ExperienceMid,
			CategoryID: "cat-dev", CompanyID: "co-acme",
			Status: job.StatusDraft,
		}),
	}
}

func fixtureCompanies() []company.Company {
	return []company.Company{
		company.Reconstruct("co-acme", company.Attrs{Name: "Acme", Active: true}),
		company.Reconstruct("co-beta", company.Attrs{Name: "Beta Soft", Active: true}),
	}
}

func fixtureCategories() []category.Category {
	return []category.Category{
		category.Reconstruct("cat-dev", "Development", "development", ""),
		category.Reconstruct("cat-qa", "Quality Assurance", "qa", ""),
	}
}

func fixtureTechnologies() []technology.Technology {
	return []technology.Technology{
		technology.Reconstruct("t1", "Go", "go", "", true),
		technology.Reconstruct("t2", "React", "react", "", true),
		technology.Reconstruct("t3", "PostgreSQL", "postgres", "", true),
	}
}

func fixtureService() *Service {
	return New(
		&repoMock{
			listFn: func(context.Context) ([]job.Posting, error) { return fixturePostings(), nil },
		},
		&companyReaderMock{
			listFn: func(context.Context) ([]company.Company, error) { return fixtureCompanies(), nil },
		},
		&categoryReaderMock{
			listFn: func(context.Context) ([]category.Category, error) { return fixtureCategories(), nil },
		},
		&technologyReaderMock{
			listFn: func(context.Context) ([]technology.Technology, error) { return fixtureTechnologies(), nil },
		},
		testCatalog(),
	)
}
