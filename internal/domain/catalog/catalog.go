// Package catalog holds the process-wide, read-only listing configuration:
// the posting visibility set, facet bucket definitions, location
// normalization rules, and the map gazetteer. A Catalog is built once at
// startup and passed explicitly into every aggregator; it is never mutated
// afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jobgrid/jobgrid/internal/domain/job"
	"github.com/jobgrid/jobgrid/internal/domain/location"
)

// SalaryBand is a predefined numeric salary facet band.
type SalaryBand struct {
	key   string
	label string
	min   float64
	max   float64 // <= 0 means unbounded above
}

// Key returns the band key.
func (b SalaryBand) Key() string { return b.key }

// Label returns the display label.
func (b SalaryBand) Label() string { return b.label }

// Min returns the inclusive lower bound.
func (b SalaryBand) Min() float64 { return b.min }

// Max returns the exclusive upper bound, 0 when unbounded.
func (b SalaryBand) Max() float64 { return b.max }

// Contains reports whether a salary falls inside the band.
func (b SalaryBand) Contains(salary float64) bool {
	if salary < b.min {
		return false
	}
	return b.max <= 0 || salary < b.max
}

// SizeBucket is a company-size bucket label.
type SizeBucket struct {
	key   string
	label string
}

// Key returns the bucket key.
func (b SizeBucket) Key() string { return b.key }

// Label returns the display label.
func (b SizeBucket) Label() string { return b.label }

// Point is a resolved map coordinate.
type Point struct {
	lat float64
	lon float64
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 { return p.lat }

// Lon returns the longitude in degrees.
func (p Point) Lon() float64 { return p.lon }

// Band definitions and gazetteer entries for construction.
type (
	// BandDef defines one salary band.
	BandDef struct {
		Key   string
		Label string
		Min   float64
		Max   float64
	}
	// BucketDef defines one size bucket.
	BucketDef struct {
		Key   string
		Label string
	}
	// PointDef maps a location name to coordinates.
	PointDef struct {
		Name string
		Lat  float64
		Lon  float64
	}
)

// Params carries everything needed to build a Catalog.
type Params struct {
	VisibleStatuses  []string
	LocationPrefixes []string
	SalaryBands      []BandDef
	SizeBuckets      []BucketDef
	Locations        []PointDef
}

// Catalog is the immutable listing configuration.
type Catalog struct {
	visible     map[job.Status]struct{}
	salaryBands []SalaryBand
	sizeBuckets []SizeBucket
	normalizer  *location.Normalizer
	gazetteer   map[string]Point
}

// New builds a Catalog from configuration values.
func New(p Params) (*Catalog, error) {
	visible := make(map[job.Status]struct{}, len(p.VisibleStatuses))
	for _, s := range p.VisibleStatuses {
		visible[job.Status(strings.ToLower(strings.TrimSpace(s)))] = struct{}{}
	}
	if len(visible) == 0 {
		visible[job.StatusActive] = struct{}{}
	}

	bands := make([]SalaryBand, 0, len(p.SalaryBands))
	seen := make(map[string]struct{}, len(p.SalaryBands))
	for _, d := range p.SalaryBands {
		if d.Key == "" {
			return nil, fmt.Errorf("salary band key is required")
		}
		if _, dup := seen[d.Key]; dup {
			return nil, fmt.Errorf("duplicate salary band key %q", d.Key)
		}
		seen[d.Key] = struct{}{}
		bands = append(bands, SalaryBand{key: d.Key, label: d.Label, min: d.Min, max: d.Max})
	}

	buckets := make([]SizeBucket, 0, len(p.SizeBuckets))
	for _, d := range p.SizeBuckets {
		if d.Key == "" {
			return nil, fmt.Errorf("size bucket key is required")
		}
		buckets = append(buckets, SizeBucket{key: d.Key, label: d.Label})
	}

	norm := location.NewNormalizer(p.LocationPrefixes)

	gaz := make(map[string]Point, len(p.Locations))
	for _, d := range p.Locations {
		if d.Lat < -90 || d.Lat > 90 || d.Lon < -180 || d.Lon > 180 {
			return nil, fmt.Errorf("location %q: coordinates out of range", d.Name)
		}
		gaz[norm.Normalize(d.Name)] = Point{lat: d.Lat, lon: d.Lon}
	}

	return &Catalog{
		visible:     visible,
		salaryBands: bands,
		sizeBuckets: buckets,
		normalizer:  norm,
		gazetteer:   gaz,
	}, nil
}

// IsVisible reports whether a posting status is in the visibility set.
func (c *Catalog) IsVisible(s job.Status) bool {
	_, ok := c.visible[s]
	return ok
}

// SalaryBands returns the configured bands in order.
func (c *Catalog) SalaryBands() []SalaryBand { return c.salaryBands }

// SalaryBand looks up a band by key.
func (c *Catalog) SalaryBand(key string) (SalaryBand, bool) {
	for _, b := range c.salaryBands {
		if b.key == key {
			return b, true
		}
	}
	return SalaryBand{}, false
}

// SizeBuckets returns the configured buckets in order.
func (c *Catalog) SizeBuckets() []SizeBucket { return c.sizeBuckets }

// HasSizeBucket reports whether the bucket key is configured.
func (c *Catalog) HasSizeBucket(key string) bool {
	for _, b := range c.sizeBuckets {
		if b.key == key {
			return true
		}
	}
	return false
}

// Normalizer returns the location normalizer.
func (c *Catalog) Normalizer() *location.Normalizer { return c.normalizer }

// ResolveLocation maps a free-text location to coordinates via the
// gazetteer. Unresolvable locations return ok=false, never an error.
func (c *Catalog) ResolveLocation(loc string) (Point, bool) {
	p, ok := c.gazetteer[c.normalizer.Normalize(loc)]
	return p, ok
}
