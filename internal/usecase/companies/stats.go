package companies

import (
	"context"
	"fmt"
	"sort"

	"github.com/jobgrid/jobgrid/internal/domain/listing/facet"
)

// SizeStats counts companies per configured size bucket, restricted to
// active companies when onlyActive is set. Every configured bucket
// appears in the output, zero counts included.
func (s *Service) SizeStats(ctx context.Context, onlyActive bool) ([]facet.Bucket, error) {
	all, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	counts := make(map[string]int)
	for i := range all {
		if onlyActive && !all[i].Active() {
			continue
		}
		counts[all[i].SizeBucket()]++
	}

	buckets := make([]facet.Bucket, 0, len(s.cat.SizeBuckets()))
	for _, b := range s.cat.SizeBuckets() {
		buckets = append(buckets, facet.Bucket{Key: b.Key(), Label: b.Label(), Count: counts[b.Key()]})
	}
	return buckets, nil
}

// LocationStats counts companies per normalized location, restricted to
// active companies when onlyActive is set. The bucket label is the most
// common original spelling, ties broken by the lexicographically
// smallest one. Companies without a location are skipped.
func (s *Service) LocationStats(ctx context.Context, onlyActive bool) ([]facet.Bucket, error) {
	all, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	norm := s.cat.Normalizer()
	counts := make(map[string]int)
	spellings := make(map[string]map[string]int)
	for i := range all {
		c := &all[i]
		if onlyActive && !c.Active() {
			continue
		}
		if c.Location() == "" {
			continue
		}
		key := norm.Normalize(c.Location())
		if key == "" {
			continue
		}
		counts[key]++
		if spellings[key] == nil {
			spellings[key] = make(map[string]int)
		}
		spellings[key][c.Location()]++
	}

	buckets := make([]facet.Bucket, 0, len(counts))
	for key, n := range counts {
		label, best := "", -1
		for sp, sn := range spellings[key] {
			if sn > best || (sn == best && sp < label) {
				label, best = sp, sn
			}
		}
		buckets = append(buckets, facet.Bucket{Key: key, Label: label, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets, nil
}

// MapPoint is a company pinned to gazetteer coordinates.
type MapPoint struct {
	ID       string
	Name     string
	Location string
	LogoURL  string
	Lat      float64
	Lon      float64
}

// Map returns one point per company whose location resolves in the
// gazetteer, restricted to active companies when onlyActive is set.
// Unresolvable locations are silently dropped.
func (s *Service) Map(ctx context.Context, onlyActive bool) ([]MapPoint, error) {
	all, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	points := make([]MapPoint, 0, len(all))
	for i := range all {
		c := &all[i]
		if onlyActive && !c.Active() {
			continue
		}
		pt, ok := s.cat.ResolveLocation(c.Location())
		if !ok {
			continue
		}
		points = append(points, MapPoint{
			ID:       c.ID(),
			Name:     c.Name(),
			Location: c.Location(),
			LogoURL:  c.LogoURL(),
			Lat:      pt.Lat(),
			Lon:      pt.Lon(),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Name < points[j].Name })
	return points, nil
}
