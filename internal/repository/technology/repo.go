// Package technology reads technology references from the backing store.
package technology

import (
	"context"
	"encoding/json"
	"fmt"

	domtech "github.com/jobgrid/jobgrid/internal/domain/technology"
)

const keyPrefix = "jobgrid:tech:"

// Key returns the storage key for a technology id.
func Key(id string) string { return keyPrefix + id }

// store is the consumer interface for technologies (ISP).
type store interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
}

// technologyDTO is the RedisJSON document shape for a technology.
type technologyDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	LogoURL string `json:"logo_url,omitempty"`
	Active  bool   `json:"active"`
}

// Repo implements the technology read contracts of the usecase layer.
type Repo struct {
	store store
}

// New creates a technology repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns all technologies in storage order; callers sort/filter.
func (r *Repo) List(ctx context.Context) ([]domtech.Technology, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan technologies: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	docs, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("fetch technologies: %w", err)
	}

	techs := make([]domtech.Technology, 0, len(docs))
	for i, raw := range docs {
		if raw == nil {
			continue
		}
		var dto technologyDTO
		if err := json.Unmarshal(unwrapPath(raw), &dto); err != nil {
			return nil, fmt.Errorf("decode technology %s: %w", keys[i], err)
		}
		techs = append(techs, domtech.Reconstruct(dto.ID, dto.Name, dto.Slug, dto.LogoURL, dto.Active))
	}
	return techs, nil
}

// EncodeTechnology serializes a technology into its stored JSON document.
// Used by the seeding tool.
func EncodeTechnology(t domtech.Technology) ([]byte, error) {
	return json.Marshal(technologyDTO{
		ID:      t.ID(),
		Name:    t.Name(),
		Slug:    t.Slug(),
		LogoURL: t.LogoURL(),
		Active:  t.Active(),
	})
}

func unwrapPath(raw []byte) []byte {
	if len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']' {
		return raw[1 : len(raw)-1]
	}
	return raw
}
