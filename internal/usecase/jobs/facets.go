package jobs

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/listing/facet"
	"github.com/jobgrid/jobgrid/internal/domain/listing/filter"
)

// buildFacets computes per-dimension counts over the full posting set.
// Each dimension is counted against the active filter with that
// dimension's own filter removed, so a facet shows how many results
// adding it would yield given every other active filter. Dimensions are
// independent and fan out in parallel.
func buildFacets(
	ctx context.Context, postings []job.Posting,
	f filter.Job, lk filter.Lookups, cat *catalog.Catalog,
) facet.Facets {
	var out facet.Facets

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.Locations = locationFacet(postings, f, lk, cat)
		return nil
	})
	g.Go(func() error {
		match := f.Without(filter.DimExperience).Matcher(lk)
		buckets := make([]facet.Bucket, 0, len(job.Experiences()))
		for _, level := range job.Experiences() {
			n := 0
			for i := range postings {
				if match(&postings[i]) && postings[i].Experience() == level {
					n++
				}
			}
			buckets = append(buckets, facet.Bucket{Key: string(level), Label: level.Label(), Count: n})
		}
		out.Experience = buckets
		return nil
	})
	g.Go(func() error {
		match := f.Without(filter.DimJobType).Matcher(lk)
		buckets := make([]facet.Bucket, 0, len(job.Types()))
		for _, jt := range job.Types() {
			n := 0
			for i := range postings {
				if match(&postings[i]) && postings[i].JobType() == jt {
					n++
				}
			}
			buckets = append(buckets, facet.Bucket{Key: string(jt), Label: jt.Label(), Count: n})
		}
		out.JobTypes = buckets
		return nil
	})
	g.Go(func() error {
		match := f.Without(filter.DimSalary).Matcher(lk)
		buckets := make([]facet.Bucket, 0, len(cat.SalaryBands()))
		for _, band := range cat.SalaryBands() {
			n := 0
			for i := range postings {
				p := &postings[i]
				if match(p) && p.HasSalary() && band.Contains(p.Salary()) {
					n++
				}
			}
			buckets = append(buckets, facet.Bucket{Key: band.Key(), Label: band.Label(), Count: n})
		}
		out.SalaryBands = buckets
		return nil
	})
	g.Go(func() error {
		match := f.Without(filter.DimRemote).Matcher(lk)
		for i := range postings {
			if !match(&postings[i]) {
				continue
			}
			if postings[i].Remote() {
				out.RemoteCount++
			} else {
				out.OfficeCount++
			}
		}
		return nil
	})

	_ = g.Wait() // goroutines never return errors; Wait only synchronizes

	return out
}

// locationFacet derives buckets from the data: one per distinct
// normalized location, labelled with the most common original spelling
// (ties broken by the lexicographically smallest spelling). Bucket
// counts use the same containment match the location filter applies,
// so a bucket's count equals the result size of filtering by its key:
// "sofia" counts "Sofia Center" too.
func locationFacet(
	postings []job.Posting, f filter.Job, lk filter.Lookups, cat *catalog.Catalog,
) []facet.Bucket {
	match := f.Without(filter.DimLocation).Matcher(lk)
	norm := cat.Normalizer()

	spellings := make(map[string]map[string]int)
	for i := range postings {
		p := &postings[i]
		if !match(p) || p.Location() == "" {
			continue
		}
		key := norm.Normalize(p.Location())
		if key == "" {
			continue
		}
		if spellings[key] == nil {
			spellings[key] = make(map[string]int)
		}
		spellings[key][p.Location()]++
	}

	buckets := make([]facet.Bucket, 0, len(spellings))
	for key, freq := range spellings {
		n := 0
		for i := range postings {
			p := &postings[i]
			if match(p) && norm.Match(p.Location(), key) {
				n++
			}
		}
		buckets = append(buckets, facet.Bucket{
			Key:   key,
			Label: commonSpelling(freq),
			Count: n,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}

// commonSpelling picks the most frequent original spelling for a
// normalized key; ties go to the lexicographically smallest spelling
// so output is deterministic.
func commonSpelling(freq map[string]int) string {
	best, bestN := "", -1
	for s, n := range freq {
		if n > bestN || (n == bestN && s < best) {
			best, bestN = s, n
		}
	}
	return best
}
