package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jobgrid/jobgrid/internal/db"
	"github.com/jobgrid/jobgrid/internal/domain"
	domco "github.com/jobgrid/jobgrid/internal/domain/company"
)

const keyPrefix = "jobgrid:company:"

// Key returns the storage key for a company id.
func Key(id string) string { return keyPrefix + id }

// store is the consumer interface for companies (ISP).
type store interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
}

// Repo implements the company read contracts of the usecase layer.
type Repo struct {
	store store
}

// New creates a company repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns every stored company profile.
func (r *Repo) List(ctx context.Context) ([]domco.Company, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan companies: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	docs, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("fetch companies: %w", err)
	}

	companies := make([]domco.Company, 0, len(docs))
	for i, raw := range docs {
		if raw == nil {
			continue
		}
		c, err := decodeCompany(unwrapPath(raw))
		if err != nil {
			return nil, fmt.Errorf("decode company %s: %w", keys[i], err)
		}
		companies = append(companies, c)
	}
	return companies, nil
}

// Get returns a company by id.
func (r *Repo) Get(ctx context.Context, id string) (domco.Company, error) {
	raw, err := r.store.JSONGet(ctx, Key(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domco.Company{}, domain.ErrCompanyNotFound
		}
		return domco.Company{}, fmt.Errorf("json.get %s: %w", Key(id), err)
	}
	c, err := decodeCompany(unwrapPath(raw))
	if err != nil {
		return domco.Company{}, fmt.Errorf("decode company %s: %w", id, err)
	}
	return c, nil
}

func unwrapPath(raw []byte) []byte {
	if len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']' {
		return raw[1 : len(raw)-1]
	}
	return raw
}
