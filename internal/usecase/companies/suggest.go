package companies

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jobgrid/jobgrid/internal/domain/company"
)

// Suggest returns companies whose name matches q, prefix matches ranked
// above substring matches and each rank ordered alphabetically. An
// empty query yields no suggestions. take is the result cap: nil falls
// back to the configured default, zero yields nothing, negative values
// are treated as zero. onlyActive restricts matching to active
// companies.
func (s *Service) Suggest(ctx context.Context, q string, take *int, onlyActive bool) ([]company.Company, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil, nil
	}

	limit := s.suggestTake
	if take != nil {
		limit = *take
		if limit < 0 {
			limit = 0
		}
	}
	if limit == 0 {
		return nil, nil
	}

	all, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	var prefix, substr []company.Company
	for i := range all {
		c := &all[i]
		if onlyActive && !c.Active() {
			continue
		}
		name := strings.ToLower(c.Name())
		switch {
		case strings.HasPrefix(name, q):
			prefix = append(prefix, all[i])
		case strings.Contains(name, q):
			substr = append(substr, all[i])
		}
	}

	byName := func(items []company.Company) {
		sort.Slice(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name()) < strings.ToLower(items[j].Name())
		})
	}
	byName(prefix)
	byName(substr)

	out := append(prefix, substr...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
