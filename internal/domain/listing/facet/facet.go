// Package facet holds the facet count payload types for job listings.
package facet

// Bucket is one facet value with its count in the current filter
// context. Zero counts are kept so the UI can render disabled options.
type Bucket struct {
	Key   string
	Label string
	Count int
}

// Facets aggregates per-dimension counts for a job listing query.
// Each dimension is counted against the active filter with that
// dimension's own filter removed. RemoteCount and OfficeCount are
// mutually exclusive totals over the same context.
type Facets struct {
	Locations   []Bucket
	Experience  []Bucket
	JobTypes    []Bucket
	SalaryBands []Bucket
	RemoteCount int
	OfficeCount int
}
