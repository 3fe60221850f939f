// Package category reads job categories from the backing store.
package category

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	domcat "github.com/jobgrid/jobgrid/internal/domain/category"
)

const keyPrefix = "jobgrid:category:"

// Key returns the storage key for a category id.
func Key(id string) string { return keyPrefix + id }

// store is the consumer interface for categories (ISP).
type store interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
}

// categoryDTO is the RedisJSON document shape for a category.
type categoryDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	IconURL string `json:"icon_url,omitempty"`
}

// Repo implements the category read contracts of the usecase layer.
type Repo struct {
	store store
}

// New creates a category repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns all categories, name-ascending.
func (r *Repo) List(ctx context.Context) ([]domcat.Category, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	docs, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	cats := make([]domcat.Category, 0, len(docs))
	for i, raw := range docs {
		if raw == nil {
			continue
		}
		var dto categoryDTO
		if err := json.Unmarshal(unwrapPath(raw), &dto); err != nil {
			return nil, fmt.Errorf("decode category %s: %w", keys[i], err)
		}
		cats = append(cats, domcat.Reconstruct(dto.ID, dto.Name, dto.Slug, dto.IconURL))
	}

	sort.Slice(cats, func(i, j int) bool {
		return strings.ToLower(cats[i].Name()) < strings.ToLower(cats[j].Name())
	})
	return cats, nil
}

// EncodeCategory serializes a category into its stored JSON document.
// Used by the seeding tool.
func EncodeCategory(c domcat.Category) ([]byte, error) {
	return json.Marshal(categoryDTO{
		ID:      c.ID(),
		Name:    c.Name(),
		Slug:    c.Slug(),
		IconURL: c.IconURL(),
	})
}

func unwrapPath(raw []byte) []byte {
	if len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']' {
		return raw[1 : len(raw)-1]
	}
	return raw
}
