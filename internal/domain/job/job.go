package job

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a posting.
// Lifecycle: draft -> active (on publish) -> closed or expired (terminal).
type Status string

// Posting status constants.
const (
	StatusDraft   Status = "draft"
	StatusActive  Status = "active"
	StatusClosed  Status = "closed"
	StatusExpired Status = "expired"
)

// IsValid checks if the status is one of the stored values.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusActive || s == StatusClosed || s == StatusExpired
}

// Type is the employment type of a posting.
type Type string

// Employment type constants.
const (
	TypeFullTime   Type = "full_time"
	TypePartTime   Type = "part_time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
	TypeRemote     Type = "remote"
)

// Types returns all employment types in display order.
func Types() []Type {
	return []Type{TypeFullTime, TypePartTime, TypeContract, TypeInternship, TypeRemote}
}

// Label returns the display label for the type.
func (t Type) Label() string {
	switch t {
	case TypeFullTime:
		return "Full-time"
	case TypePartTime:
		return "Part-time"
	case TypeContract:
		return "Contract"
	case TypeInternship:
		return "Internship"
	case TypeRemote:
		return "Remote"
	}
	return string(t)
}

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// Experience is the seniority level of a posting.
type Experience string

// Experience level constants.
const (
	ExperienceJunior Experience = "junior"
	ExperienceMid    Experience = "mid"
	ExperienceSenior Experience = "senior"
	ExperienceLead   Experience = "lead"
)

// Experiences returns all experience levels in display order.
func Experiences() []Experience {
	return []Experience{ExperienceJunior, ExperienceMid, ExperienceSenior, ExperienceLead}
}

// Label returns the display label for the experience level.
func (e Experience) Label() string {
	switch e {
	case ExperienceJunior:
		return "Junior"
	case ExperienceMid:
		return "Mid"
	case ExperienceSenior:
		return "Senior"
	case ExperienceLead:
		return "Lead"
	}
	return string(e)
}

// IsValid checks if the experience level is one of the supported values.
func (e Experience) IsValid() bool {
	for _, known := range Experiences() {
		if e == known {
			return true
		}
	}
	return false
}

// Attrs carries the posting attributes for construction and hydration.
type Attrs struct {
	Title       string
	Description string
	Location    string
	Remote      bool
	JobType     Type
	Experience  Experience
	Salary      float64 // 0 = undisclosed
	TechSlugs   []string
	CategoryID  string
	CompanyID   string
	Status      Status
	CreatedAt   time.Time
	PublishedAt time.Time // zero = never published
	Deadline    time.Time
}

// Posting is a job posting (immutable value object).
// The query engine reads postings and never mutates them.
type Posting struct {
	id    string
	attrs Attrs
}

// New validates and creates a Posting.
func New(id string, a Attrs) (Posting, error) {
	if id == "" {
		return Posting{}, fmt.Errorf("posting ID is required")
	}
	if a.Title == "" {
		return Posting{}, fmt.Errorf("title is required")
	}
	if a.CategoryID == "" {
		return Posting{}, fmt.Errorf("category is required")
	}
	if a.CompanyID == "" {
		return Posting{}, fmt.Errorf("company is required")
	}
	if a.Status == "" {
		a.Status = StatusDraft
	}
	if !a.Status.IsValid() {
		return Posting{}, fmt.Errorf("unknown status %q", a.Status)
	}
	if a.JobType != "" && !a.JobType.IsValid() {
		return Posting{}, fmt.Errorf("unknown job type %q", a.JobType)
	}
	if a.Experience != "" && !a.Experience.IsValid() {
		return Posting{}, fmt.Errorf("unknown experience level %q", a.Experience)
	}
	if a.Salary < 0 {
		return Posting{}, fmt.Errorf("salary must not be negative")
	}
	a.TechSlugs = cloneStrings(a.TechSlugs)
	return Posting{id: id, attrs: a}, nil
}

// Reconstruct creates a Posting without validation (storage hydration).
func Reconstruct(id string, a Attrs) Posting {
	return Posting{id: id, attrs: a}
}

// ID returns the posting identifier.
func (p *Posting) ID() string { return p.id }

// Title returns the posting title.
func (p *Posting) Title() string { return p.attrs.Title }

// Description returns the posting description.
func (p *Posting) Description() string { return p.attrs.Description }

// Location returns the free-text location.
func (p *Posting) Location() string { return p.attrs.Location }

// Remote reports whether the posting is remote.
func (p *Posting) Remote() bool { return p.attrs.Remote }

// JobType returns the employment type.
func (p *Posting) JobType() Type { return p.attrs.JobType }

// Experience returns the seniority level.
func (p *Posting) Experience() Experience { return p.attrs.Experience }

// Salary returns the offered salary, 0 when undisclosed.
func (p *Posting) Salary() float64 { return p.attrs.Salary }

// HasSalary reports whether a salary is disclosed.
func (p *Posting) HasSalary() bool { return p.attrs.Salary > 0 }

// TechSlugs returns the referenced technology slugs.
func (p *Posting) TechSlugs() []string { return p.attrs.TechSlugs }

// HasTech reports whether the posting references the technology slug.
func (p *Posting) HasTech(slug string) bool {
	for _, s := range p.attrs.TechSlugs {
		if s == slug {
			return true
		}
	}
	return false
}

// CategoryID returns the owning category identifier.
func (p *Posting) CategoryID() string { return p.attrs.CategoryID }

// CompanyID returns the owning company identifier.
func (p *Posting) CompanyID() string { return p.attrs.CompanyID }

// Status returns the lifecycle status.
func (p *Posting) Status() Status { return p.attrs.Status }

// CreatedAt returns the creation time.
func (p *Posting) CreatedAt() time.Time { return p.attrs.CreatedAt }

// PublishedAt returns the publication time, zero if never published.
func (p *Posting) PublishedAt() time.Time { return p.attrs.PublishedAt }

// Deadline returns the application deadline.
func (p *Posting) Deadline() time.Time { return p.attrs.Deadline }

// EffectivePublishDate returns publishedAt, falling back to createdAt.
// This is the "when did this become visible" instant used by sorting
// and the new-in-last-30-days summary.
func (p *Posting) EffectivePublishDate() time.Time {
	if !p.attrs.PublishedAt.IsZero() {
		return p.attrs.PublishedAt
	}
	return p.attrs.CreatedAt
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
