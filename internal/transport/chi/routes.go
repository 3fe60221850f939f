package chi

import "github.com/go-chi/chi/v5"

// Mount registers every route on the given router. Health and metrics
// live outside the versioned prefix so probes and scrapers keep working
// across API versions.
func (s *Server) Mount(r chi.Router) {
	r.Get("/health", s.Health)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", s.Jobs)
			r.Get("/{id}", s.Job)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", s.Companies)
			// Fixed segments must register before the {id} wildcard.
			r.Get("/suggest", s.CompanySuggest)
			r.Get("/size-stats", s.CompanySizeStats)
			r.Get("/location-stats", s.CompanyLocationStats)
			r.Get("/map", s.CompanyMap)
			r.Get("/{id}", s.Company)
			r.Get("/{id}/jobs", s.CompanyJobs)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.Categories)
			r.Get("/{slug}", s.Category)
			r.Get("/{slug}/summary", s.CategorySummary)
		})

		r.Route("/technologies", func(r chi.Router) {
			r.Get("/", s.Technologies)
			r.Get("/{slug}", s.Technology)
		})

		r.Get("/home/sections", s.HomeSections)
	})
}
