package filter

import (
	"testing"
	"time"

	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Params{
		VisibleStatuses:  []string{"active"},
		LocationPrefixes: []string{"office", "city", "гр."},
		SalaryBands: []catalog.BandDef{
			{Key: "0-3000", Label: "Up to 3 000", Min: 0, Max: 3000},
			{Key: "3000+", Label: "Over 3 000", Min: 3000, Max: 0},
		},
		SizeBuckets: []catalog.BucketDef{
			{Key: "micro", Label: "1-9"},
			{Key: "large", Label: "250+"},
		},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func posting(t *testing.T, id string, mutate func(*job.Attrs)) job.Posting {
	t.Helper()
	a := job.Attrs{
		Title:       "Backend Engineer",
		Description: "Build APIs in Go",
		Location:    "Office Sofia",
		JobType:     job.TypeFullTime,
		Experience:  job.ExperienceMid,
		Salary:      2500,
		TechSlugs:   []string{"go"},
		CategoryID:  "cat-backend",
		CompanyID:   "co-1",
		Status:      job.StatusActive,
		CreatedAt:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	if mutate != nil {
		mutate(&a)
	}
	return job.Reconstruct(id, a)
}

func testLookups() Lookups {
	return Lookups{
		CompanyNameByID:  map[string]string{"co-1": "Acme Ltd"},
		CategoryIDBySlug: map[string]string{"backend": "cat-backend"},
		TechSlugByName:   map[string]string{"go": "go", "postgresql": "postgres"},
	}
}

func TestParseJob_UnknownValuesIgnored(t *testing.T) {
	cat := testCatalog(t)

	f := ParseJob(JobParams{
		Experience: "principal",
		JobType:    "gig-economy",
		SalaryBand: "1-2",
		Remote:     "maybe",
		OnlyActive: "whatever",
	}, cat)

	if f.Experience() != "" {
		t.Error("unknown experience must be ignored")
	}
	if f.JobType() != "" {
		t.Error("unknown job type must be ignored")
	}
	if f.SalaryBand() != nil {
		t.Error("unknown salary band must be ignored")
	}
	if f.Remote() != nil {
		t.Error("unparseable remote flag must be ignored")
	}
	if !f.OnlyActive() {
		t.Error("onlyActive must default to true on unparseable input")
	}
}

func TestParseJob_UIFormsCanonicalized(t *testing.T) {
	cat := testCatalog(t)

	f := ParseJob(JobParams{JobType: "Full-time", Experience: " Senior "}, cat)

	if f.JobType() != job.TypeFullTime {
		t.Errorf("jobType = %q, want full_time", f.JobType())
	}
	if f.Experience() != job.ExperienceSenior {
		t.Errorf("experience = %q, want senior", f.Experience())
	}
}

func TestMatcher_CombinesWithAND(t *testing.T) {
	cat := testCatalog(t)
	match := ParseJob(JobParams{
		Category:   "backend",
		Tech:       "go",
		Location:   "sofia",
		Experience: "mid",
		JobType:    "full_time",
		SalaryBand: "0-3000",
	}, cat).Matcher(testLookups())

	p := posting(t, "j1", nil)
	if !match(&p) {
		t.Fatal("expected posting to pass all filters")
	}

	other := posting(t, "j2", func(a *job.Attrs) { a.Experience = job.ExperienceLead })
	if match(&other) {
		t.Error("one failing dimension must reject the posting")
	}
}

func TestMatcher_OnlyActive(t *testing.T) {
	cat := testCatalog(t)
	lk := testLookups()

	draft := posting(t, "j1", func(a *job.Attrs) { a.Status = job.StatusDraft })

	if ParseJob(JobParams{}, cat).Matcher(lk)(&draft) {
		t.Error("draft posting must be invisible by default")
	}
	if !ParseJob(JobParams{OnlyActive: "false"}, cat).Matcher(lk)(&draft) {
		t.Error("onlyActive=false must include non-visible postings")
	}
}

func TestMatcher_SearchIncludesCompanyName(t *testing.T) {
	cat := testCatalog(t)
	match := ParseJob(JobParams{Search: "acme"}, cat).Matcher(testLookups())

	p := posting(t, "j1", nil)
	if !match(&p) {
		t.Error("search must match against the company name")
	}

	nomatch := ParseJob(JobParams{Search: "globex"}, cat).Matcher(testLookups())
	if nomatch(&p) {
		t.Error("unrelated search term must not match")
	}
}

func TestMatcher_LocationNormalized(t *testing.T) {
	cat := testCatalog(t)
	match := ParseJob(JobParams{Location: "Sofia"}, cat).Matcher(testLookups())

	p := posting(t, "j1", nil) // stored as "Office Sofia"
	if !match(&p) {
		t.Error("stored 'Office Sofia' must match filter 'Sofia'")
	}
}

func TestMatcher_TechByName(t *testing.T) {
	cat := testCatalog(t)
	lk := testLookups()

	p := posting(t, "j1", func(a *job.Attrs) { a.TechSlugs = []string{"postgres"} })

	if !ParseJob(JobParams{Tech: "PostgreSQL"}, cat).Matcher(lk)(&p) {
		t.Error("technology name must resolve to its slug")
	}
	if !ParseJob(JobParams{Tech: "cobol"}, cat).Matcher(lk)(&p) {
		t.Error("unknown technology value must be ignored, not exclude everything")
	}
}

func TestMatcher_SalaryBandRequiresDisclosedSalary(t *testing.T) {
	cat := testCatalog(t)
	match := ParseJob(JobParams{SalaryBand: "0-3000"}, cat).Matcher(testLookups())

	undisclosed := posting(t, "j1", func(a *job.Attrs) { a.Salary = 0 })
	if match(&undisclosed) {
		t.Error("salary-band filter must exclude undisclosed salaries")
	}
}

func TestWithout(t *testing.T) {
	cat := testCatalog(t)
	f := ParseJob(JobParams{
		Location:   "sofia",
		Experience: "mid",
		JobType:    "full_time",
		SalaryBand: "0-3000",
		Remote:     "true",
	}, cat)

	if got := f.Without(DimLocation); got.Location() != "" || got.Experience() == "" {
		t.Error("Without(location) must clear only the location dimension")
	}
	if got := f.Without(DimRemote); got.Remote() != nil {
		t.Error("Without(remote) must clear the remote dimension")
	}
	if got := f.Without(DimSalary); got.SalaryBand() != nil {
		t.Error("Without(salary) must clear the salary dimension")
	}
	// the receiver is untouched
	if f.Location() == "" || f.Remote() == nil {
		t.Error("Without must not mutate the original filter")
	}
}

func TestParseCompanyAndMatch(t *testing.T) {
	cat := testCatalog(t)

	acme := company.Reconstruct("co-1", company.Attrs{
		Name: "Acme", Description: "Widgets", SizeBucket: "micro",
		Location: "Sofia", Active: true,
	})
	beta := company.Reconstruct("co-2", company.Attrs{
		Name: "Beta", SizeBucket: "large", Location: "Varna", Active: false,
	})

	onlyActive := ParseCompany(CompanyParams{}, cat)
	if !onlyActive.Matches(&acme) {
		t.Error("active company must pass the default filter")
	}
	if onlyActive.Matches(&beta) {
		t.Error("inactive company must fail the default filter")
	}

	all := ParseCompany(CompanyParams{OnlyActive: "false"}, cat)
	if !all.Matches(&beta) {
		t.Error("onlyActive=false must include inactive companies")
	}

	sized := ParseCompany(CompanyParams{SizeBucket: "micro", OnlyActive: "false"}, cat)
	if !sized.Matches(&acme) || sized.Matches(&beta) {
		t.Error("size bucket filter mismatch")
	}

	unknownSize := ParseCompany(CompanyParams{SizeBucket: "gigantic", OnlyActive: "false"}, cat)
	if !unknownSize.Matches(&beta) {
		t.Error("unknown size bucket must be ignored")
	}
}
