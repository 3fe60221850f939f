package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jobgrid/jobgrid/internal/domain"
	"github.com/jobgrid/jobgrid/internal/domain/listing/filter"
	"github.com/jobgrid/jobgrid/internal/metrics"
	categoriesuc "github.com/jobgrid/jobgrid/internal/usecase/categories"
	companiesuc "github.com/jobgrid/jobgrid/internal/usecase/companies"
	healthuc "github.com/jobgrid/jobgrid/internal/usecase/health"
	homeuc "github.com/jobgrid/jobgrid/internal/usecase/home"
	jobsuc "github.com/jobgrid/jobgrid/internal/usecase/jobs"
	technologiesuc "github.com/jobgrid/jobgrid/internal/usecase/technologies"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API over the listing services.
type Server struct {
	jobs          *jobsuc.Service
	companies     *companiesuc.Service
	categories    *categoriesuc.Service
	technologies  *technologiesuc.Service
	home          *homeuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	jobs *jobsuc.Service,
	companies *companiesuc.Service,
	categories *categoriesuc.Service,
	technologies *technologiesuc.Service,
	home *homeuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		jobs:         jobs,
		companies:    companies,
		categories:   categories,
		technologies: technologies,
		home:         home,
		health:       health,
		logger:       logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrJobNotFound, http.StatusNotFound, codeJobNotFound),
		sentinelHandler(domain.ErrCompanyNotFound, http.StatusNotFound, codeCompanyNotFound),
		sentinelHandler(domain.ErrCategoryNotFound, http.StatusNotFound, codeCategoryNotFound),
		sentinelHandler(domain.ErrTechnologyNotFound, http.StatusNotFound, codeTechnologyNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// Jobs handles GET /api/v1/jobs.
func (s *Server) Jobs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	page, err := s.jobs.Search(r.Context(), jobsuc.Query{
		Filter: filter.JobParams{
			Search:     q.Get("search"),
			Category:   q.Get("category"),
			Tech:       q.Get("tech"),
			Location:   q.Get("location"),
			Remote:     q.Get("remote"),
			Experience: q.Get("experience"),
			SalaryBand: q.Get("salaryBand"),
			JobType:    q.Get("jobType"),
			OnlyActive: q.Get("onlyActive"),
		},
		Sort:     q.Get("sort"),
		Page:     queryInt(q.Get("page")),
		PageSize: queryInt(q.Get("pageSize")),
	})
	if err != nil {
		metrics.ListingQueriesTotal.WithLabelValues("jobs", "error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.ListingQueriesTotal.WithLabelValues("jobs", "ok").Inc()
	metrics.ListingQueryDuration.WithLabelValues("jobs").Observe(time.Since(start).Seconds())
	metrics.ListingResultSize.WithLabelValues("jobs").Observe(float64(page.TotalCount))

	writeJSON(w, http.StatusOK, map[string]any{
		"total_count": page.TotalCount,
		"page":        page.Page,
		"page_size":   page.PageSize,
		"items":       jobsToResponse(page.Items),
		"facets":      facetsToResponse(page.Facets),
	})
}

// Job handles GET /api/v1/jobs/{id}.
func (s *Server) Job(w http.ResponseWriter, r *http.Request) {
	p, err := s.jobs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobToResponse(&p))
}

// Companies handles GET /api/v1/companies.
func (s *Server) Companies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	res, err := s.companies.List(r.Context(), companiesuc.Query{
		Filter: filter.CompanyParams{
			Search:     q.Get("search"),
			SizeBucket: q.Get("sizeBucket"),
			Location:   q.Get("location"),
			OnlyActive: q.Get("onlyActive"),
		},
		Sort: q.Get("sort"),
	})
	if err != nil {
		metrics.ListingQueriesTotal.WithLabelValues("companies", "error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.ListingQueriesTotal.WithLabelValues("companies", "ok").Inc()
	metrics.ListingQueryDuration.WithLabelValues("companies").Observe(time.Since(start).Seconds())
	metrics.ListingResultSize.WithLabelValues("companies").Observe(float64(res.TotalCount))

	writeJSON(w, http.StatusOK, map[string]any{
		"total_count": res.TotalCount,
		"items":       companiesToResponse(res.Items),
	})
}

// Company handles GET /api/v1/companies/{id}.
func (s *Server) Company(w http.ResponseWriter, r *http.Request) {
	c, err := s.companies.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companyToResponse(&c))
}

// CompanyJobs handles GET /api/v1/companies/{id}/jobs.
func (s *Server) CompanyJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := s.companies.Jobs(r.Context(), chi.URLParam(r, "id"),
		queryInt(q.Get("page")), queryInt(q.Get("pageSize")))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_count": page.TotalCount,
		"page":        page.Page,
		"page_size":   page.PageSize,
		"items":       jobsToResponse(page.Items),
	})
}

// CompanySuggest handles GET /api/v1/companies/suggest.
func (s *Server) CompanySuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := s.companies.Suggest(r.Context(), q.Get("q"),
		queryIntOpt(q, "take"), queryOnlyActive(q))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": companiesToResponse(items)})
}

// CompanySizeStats handles GET /api/v1/companies/size-stats.
func (s *Server) CompanySizeStats(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.companies.SizeStats(r.Context(), queryOnlyActive(r.URL.Query()))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"buckets": bucketsToResponse(buckets)})
}

// CompanyLocationStats handles GET /api/v1/companies/location-stats.
func (s *Server) CompanyLocationStats(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.companies.LocationStats(r.Context(), queryOnlyActive(r.URL.Query()))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": bucketsToResponse(buckets)})
}

// CompanyMap handles GET /api/v1/companies/map.
func (s *Server) CompanyMap(w http.ResponseWriter, r *http.Request) {
	points, err := s.companies.Map(r.Context(), queryOnlyActive(r.URL.Query()))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"points": mapPointsToResponse(points)})
}

// Categories handles GET /api/v1/categories.
func (s *Server) Categories(w http.ResponseWriter, r *http.Request) {
	items, err := s.categories.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	out := make([]categoryResponse, len(items))
	for i := range items {
		out[i] = categoryToResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Category handles GET /api/v1/categories/{slug}.
func (s *Server) Category(w http.ResponseWriter, r *http.Request) {
	c, err := s.categories.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToResponse(&c))
}

// CategorySummary handles GET /api/v1/categories/{slug}/summary.
func (s *Server) CategorySummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.categories.SummaryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category":   categoryToResponse(&sum.Category),
		"total_jobs": sum.TotalJobs,
		"new_jobs":   sum.NewJobs,
	})
}

// Technologies handles GET /api/v1/technologies.
func (s *Server) Technologies(w http.ResponseWriter, r *http.Request) {
	items, err := s.technologies.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	out := make([]technologyResponse, len(items))
	for i := range items {
		out[i] = technologyToResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Technology handles GET /api/v1/technologies/{slug}.
func (s *Server) Technology(w http.ResponseWriter, r *http.Request) {
	tech, err := s.technologies.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, technologyToResponse(&tech))
}

// HomeSections handles GET /api/v1/home/sections.
func (s *Server) HomeSections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := homeuc.Params{
		Location:  q.Get("location"),
		TakeTechs: queryInt(q.Get("takeTechs")),
	}
	if raw := q.Get("remote"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			params.Remote = &v
		}
	}

	sections, err := s.home.Sections(r.Context(), params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": sectionsToResponse(sections)})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// queryInt parses a positive integer query parameter, 0 when absent or junk.
func queryInt(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// queryIntOpt parses an optional integer query parameter. Absent or
// unparsable values yield nil so the service applies its default; an
// explicit value is passed through, including zero.
func queryIntOpt(q url.Values, name string) *int {
	if !q.Has(name) {
		return nil
	}
	n, err := strconv.Atoi(q.Get(name))
	if err != nil {
		return nil
	}
	return &n
}

// queryOnlyActive parses the onlyActive query parameter, true when
// absent or unparsable.
func queryOnlyActive(q url.Values) bool {
	if raw := q.Get("onlyActive"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrJobNotFound,
		domain.ErrCompanyNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrTechnologyNotFound,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
