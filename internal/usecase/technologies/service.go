package technologies

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jobgrid/jobgrid/internal/domain"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
)

// Repository defines the storage contract for technologies.
type Repository interface {
	List(ctx context.Context) ([]technology.Technology, error)
}

// Service serves the technology catalog.
type Service struct {
	techs Repository
}

// New creates a technology service.
func New(techs Repository) *Service {
	return &Service{techs: techs}
}

// List returns active technologies in alphabetical order.
func (s *Service) List(ctx context.Context) ([]technology.Technology, error) {
	all, err := s.techs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}

	active := make([]technology.Technology, 0, len(all))
	for i := range all {
		if all[i].Active() {
			active = append(active, all[i])
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return strings.ToLower(active[i].Name()) < strings.ToLower(active[j].Name())
	})
	return active, nil
}

// GetBySlug resolves a technology by slug, case-insensitively.
// Inactive technologies resolve too; only listings hide them.
func (s *Service) GetBySlug(ctx context.Context, slug string) (technology.Technology, error) {
	all, err := s.techs.List(ctx)
	if err != nil {
		return technology.Technology{}, fmt.Errorf("list technologies: %w", err)
	}
	for i := range all {
		if all[i].MatchesSlug(slug) {
			return all[i], nil
		}
	}
	return technology.Technology{}, domain.ErrTechnologyNotFound
}
