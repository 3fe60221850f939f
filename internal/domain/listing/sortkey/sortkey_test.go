package sortkey

import (
	"testing"
	"time"

	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"newest", Newest},
		{"ALPHA", Alpha},
		{" random ", Random},
		{"price", Newest}, // unknown falls back
		{"", Newest},
	}

	for _, tt := range tests {
		if got := Parse(tt.in, Newest); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func postingAt(id string, created, published time.Time) job.Posting {
	return job.Reconstruct(id, job.Attrs{
		Title: "t-" + id, CategoryID: "c", CompanyID: "co",
		Status: job.StatusActive, CreatedAt: created, PublishedAt: published,
	})
}

func TestJobs_Newest(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	items := []job.Posting{
		postingAt("j1", base, time.Time{}),                 // effective = createdAt
		postingAt("j2", base.AddDate(0, 0, -10), base.AddDate(0, 0, 5)), // effective = publishedAt
		postingAt("j3", base, time.Time{}),                 // ties with j1, id descending
	}

	Jobs(items, Newest)

	wantOrder := []string{"j2", "j3", "j1"}
	for i, want := range wantOrder {
		if items[i].ID() != want {
			t.Fatalf("position %d = %s, want %s", i, items[i].ID(), want)
		}
	}

	// adjacency property: effective dates never increase
	for i := 1; i < len(items); i++ {
		if items[i-1].EffectivePublishDate().Before(items[i].EffectivePublishDate()) {
			t.Errorf("items out of order at %d", i)
		}
	}
}

func TestJobs_Alpha(t *testing.T) {
	base := time.Now()
	a := job.Reconstruct("j2", job.Attrs{Title: "api engineer", CategoryID: "c", CompanyID: "co", CreatedAt: base})
	b := job.Reconstruct("j1", job.Attrs{Title: "API Engineer", CategoryID: "c", CompanyID: "co", CreatedAt: base})
	c := job.Reconstruct("j3", job.Attrs{Title: "Backend", CategoryID: "c", CompanyID: "co", CreatedAt: base})
	items := []job.Posting{c, a, b}

	Jobs(items, Alpha)

	// case-insensitive title, then id ascending for equal titles
	if items[0].ID() != "j1" || items[1].ID() != "j2" || items[2].ID() != "j3" {
		t.Errorf("alpha order = [%s %s %s]", items[0].ID(), items[1].ID(), items[2].ID())
	}
}

func TestJobs_RandomKeepsAllItems(t *testing.T) {
	base := time.Now()
	items := make([]job.Posting, 0, 20)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		items = append(items, postingAt(id, base, time.Time{}))
	}

	Jobs(items, Random)

	seen := make(map[string]bool, len(items))
	for i := range items {
		seen[items[i].ID()] = true
	}
	if len(seen) != 5 {
		t.Errorf("random sort changed the item set: %v", seen)
	}
}

func TestCompanies_Alpha(t *testing.T) {
	items := []company.Company{
		company.Reconstruct("c2", company.Attrs{Name: "beta"}),
		company.Reconstruct("c1", company.Attrs{Name: "Acme"}),
	}

	Companies(items, Alpha)

	if items[0].Name() != "Acme" {
		t.Errorf("first = %s, want Acme", items[0].Name())
	}
}

func TestCompanies_Newest(t *testing.T) {
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []company.Company{
		company.Reconstruct("c1", company.Attrs{Name: "Old", CreatedAt: old}),
		company.Reconstruct("c2", company.Attrs{Name: "New", CreatedAt: old.AddDate(1, 0, 0)}),
	}

	Companies(items, Newest)

	if items[0].ID() != "c2" {
		t.Errorf("first = %s, want c2", items[0].ID())
	}
}
