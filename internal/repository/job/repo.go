package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/jobgrid/jobgrid/internal/db"
	"github.com/jobgrid/jobgrid/internal/domain"
	domjob "github.com/jobgrid/jobgrid/internal/domain/job"
)

const keyPrefix = "jobgrid:job:"

// Key returns the storage key for a posting id.
func Key(id string) string { return keyPrefix + id }

// store is the consumer interface for job postings (ISP).
type store interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
}

// Repo implements the job-posting read contracts of the usecase layer.
type Repo struct {
	store store
}

// New creates a job-posting repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns every stored posting. The engine filters and aggregates
// in memory; the store is read in one SCAN plus one pipelined fetch.
func (r *Repo) List(ctx context.Context) ([]domjob.Posting, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan postings: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	docs, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("fetch postings: %w", err)
	}

	postings := make([]domjob.Posting, 0, len(docs))
	for i, raw := range docs {
		if raw == nil {
			continue // deleted between SCAN and fetch
		}
		p, err := decodePosting(unwrapPath(raw))
		if err != nil {
			return nil, fmt.Errorf("decode posting %s: %w", keys[i], err)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// Get returns a posting by id.
func (r *Repo) Get(ctx context.Context, id string) (domjob.Posting, error) {
	raw, err := r.store.JSONGet(ctx, Key(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domjob.Posting{}, domain.ErrJobNotFound
		}
		return domjob.Posting{}, fmt.Errorf("json.get %s: %w", Key(id), err)
	}
	p, err := decodePosting(unwrapPath(raw))
	if err != nil {
		return domjob.Posting{}, fmt.Errorf("decode posting %s: %w", id, err)
	}
	return p, nil
}

// HealthCheck probes the posting keyspace. An empty dataset is healthy;
// only an unreachable store fails the check.
func (r *Repo) HealthCheck(ctx context.Context) error {
	if _, err := r.store.Scan(ctx, keyPrefix+"*"); err != nil {
		return fmt.Errorf("scan postings: %w", err)
	}
	return nil
}

// unwrapPath strips the JSONPath array wrapper that JSON.GET $ returns.
func unwrapPath(raw []byte) []byte {
	if len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']' {
		return raw[1 : len(raw)-1]
	}
	return raw
}
