// Package filter turns raw listing query parameters into composable
// predicates over job postings and companies.
//
// Parsing is permissive by contract: an unknown, empty, or unparseable
// value for a dimension leaves that dimension unset instead of failing,
// so a UI sending blank or stale fields degrades to "no filter on that
// dimension". All set dimensions combine with logical AND.
package filter

import (
	"strings"

	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	"github.com/jobgrid/jobgrid/internal/domain/company"
	"github.com/jobgrid/jobgrid/internal/domain/job"
)

// Dimension identifies one facetable job-filter dimension.
type Dimension string

// Facet dimension constants.
const (
	DimLocation   Dimension = "location"
	DimExperience Dimension = "experience"
	DimJobType    Dimension = "job_type"
	DimSalary     Dimension = "salary"
	DimRemote     Dimension = "remote"
)

// JobParams is the raw wire parameter bag for a job listing query.
type JobParams struct {
	Search     string
	Category   string
	Tech       string
	Location   string
	Remote     string
	Experience string
	SalaryBand string
	JobType    string
	OnlyActive string
}

// Job is a parsed job-posting filter. The zero value matches every
// visible posting.
type Job struct {
	cat        *catalog.Catalog
	search     string
	category   string
	tech       string
	location   string
	remote     *bool
	experience job.Experience
	salaryBand *catalog.SalaryBand
	jobType    job.Type
	onlyActive bool
}

// ParseJob builds a Job filter from raw parameters. It never fails.
func ParseJob(p JobParams, cat *catalog.Catalog) Job {
	f := Job{
		cat:        cat,
		search:     strings.TrimSpace(p.Search),
		category:   strings.ToLower(strings.TrimSpace(p.Category)),
		tech:       strings.ToLower(strings.TrimSpace(p.Tech)),
		location:   strings.TrimSpace(p.Location),
		remote:     parseBool(p.Remote),
		onlyActive: parseBoolDefault(p.OnlyActive, true),
	}

	if exp := job.Experience(canonical(p.Experience)); exp != "" && exp.IsValid() {
		f.experience = exp
	}
	if jt := job.Type(canonical(p.JobType)); jt != "" && jt.IsValid() {
		f.jobType = jt
	}
	if band, ok := cat.SalaryBand(strings.TrimSpace(p.SalaryBand)); ok {
		f.salaryBand = &band
	}

	return f
}

// Search returns the free-text search term.
func (f Job) Search() string { return f.search }

// Category returns the category slug filter, "" when unset.
func (f Job) Category() string { return f.category }

// Tech returns the technology slug/name filter, "" when unset.
func (f Job) Tech() string { return f.tech }

// Location returns the raw location filter, "" when unset.
func (f Job) Location() string { return f.location }

// Remote returns the remote flag filter, nil when unset.
func (f Job) Remote() *bool { return f.remote }

// Experience returns the experience filter, "" when unset.
func (f Job) Experience() job.Experience { return f.experience }

// SalaryBand returns the salary band filter, nil when unset.
func (f Job) SalaryBand() *catalog.SalaryBand { return f.salaryBand }

// JobType returns the employment type filter, "" when unset.
func (f Job) JobType() job.Type { return f.jobType }

// OnlyActive reports whether the filter restricts to visible postings.
func (f Job) OnlyActive() bool { return f.onlyActive }

// Without returns a copy of the filter with one dimension cleared.
// Facet counts use the standard convention of "all filters except the
// dimension being counted".
func (f Job) Without(d Dimension) Job {
	switch d {
	case DimLocation:
		f.location = ""
	case DimExperience:
		f.experience = ""
	case DimJobType:
		f.jobType = ""
	case DimSalary:
		f.salaryBand = nil
	case DimRemote:
		f.remote = nil
	}
	return f
}

// Lookups supplies the cross-entity resolutions a job predicate needs.
// Keys of CategoryIDBySlug and TechSlugByName are lowercase.
type Lookups struct {
	CompanyNameByID  map[string]string
	CategoryIDBySlug map[string]string
	TechSlugByName   map[string]string
}

// Matcher composes the filter into a single predicate over postings.
// Category and technology values that resolve to nothing are ignored,
// consistent with the permissive-parse contract.
func (f Job) Matcher(lk Lookups) func(p *job.Posting) bool {
	categoryID := ""
	if f.category != "" {
		categoryID = lk.CategoryIDBySlug[f.category]
	}

	techSlug := f.tech
	if mapped, ok := lk.TechSlugByName[f.tech]; ok {
		techSlug = mapped
	}
	if techSlug != "" {
		known := false
		for _, slug := range lk.TechSlugByName {
			if slug == techSlug {
				known = true
				break
			}
		}
		if !known {
			techSlug = ""
		}
	}

	search := strings.ToLower(f.search)

	return func(p *job.Posting) bool {
		if f.onlyActive && !f.cat.IsVisible(p.Status()) {
			return false
		}
		if categoryID != "" && p.CategoryID() != categoryID {
			return false
		}
		if techSlug != "" && !p.HasTech(techSlug) {
			return false
		}
		if f.location != "" && !f.cat.Normalizer().Match(p.Location(), f.location) {
			return false
		}
		if f.remote != nil && p.Remote() != *f.remote {
			return false
		}
		if f.experience != "" && p.Experience() != f.experience {
			return false
		}
		if f.jobType != "" && p.JobType() != f.jobType {
			return false
		}
		if f.salaryBand != nil && (!p.HasSalary() || !f.salaryBand.Contains(p.Salary())) {
			return false
		}
		if search != "" {
			haystack := strings.ToLower(
				p.Title() + "\n" + p.Description() + "\n" + lk.CompanyNameByID[p.CompanyID()],
			)
			if !strings.Contains(haystack, search) {
				return false
			}
		}
		return true
	}
}

// CompanyParams is the raw wire parameter bag for a company listing query.
type CompanyParams struct {
	Search     string
	SizeBucket string
	Location   string
	OnlyActive string
}

// Company is a parsed company filter.
type Company struct {
	cat        *catalog.Catalog
	search     string
	sizeBucket string
	location   string
	onlyActive bool
}

// ParseCompany builds a Company filter from raw parameters. It never fails.
func ParseCompany(p CompanyParams, cat *catalog.Catalog) Company {
	f := Company{
		cat:        cat,
		search:     strings.TrimSpace(p.Search),
		location:   strings.TrimSpace(p.Location),
		onlyActive: parseBoolDefault(p.OnlyActive, true),
	}
	if key := strings.ToLower(strings.TrimSpace(p.SizeBucket)); cat.HasSizeBucket(key) {
		f.sizeBucket = key
	}
	return f
}

// Search returns the free-text search term.
func (f Company) Search() string { return f.search }

// SizeBucket returns the size-bucket filter, "" when unset.
func (f Company) SizeBucket() string { return f.sizeBucket }

// Location returns the raw location filter, "" when unset.
func (f Company) Location() string { return f.location }

// OnlyActive reports whether the filter restricts to active companies.
func (f Company) OnlyActive() bool { return f.onlyActive }

// Matches reports whether a company passes every set dimension.
func (f Company) Matches(c *company.Company) bool {
	if f.onlyActive && !c.Active() {
		return false
	}
	if f.sizeBucket != "" && c.SizeBucket() != f.sizeBucket {
		return false
	}
	if f.location != "" && !f.cat.Normalizer().Match(c.Location(), f.location) {
		return false
	}
	if f.search != "" {
		haystack := strings.ToLower(c.Name() + "\n" + c.Description())
		if !strings.Contains(haystack, strings.ToLower(f.search)) {
			return false
		}
	}
	return true
}

// canonical lowercases and joins words with underscores so that UI forms
// like "Full-time" parse as the stored enum value "full_time".
func canonical(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), "_")
}

// parseBool accepts true/false/1/0 in any case; anything else is unset.
func parseBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

func parseBoolDefault(s string, def bool) bool {
	if v := parseBool(s); v != nil {
		return *v
	}
	return def
}
