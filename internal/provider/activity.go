package provider

import (
	"context"

	"github.com/mmynk/splitbeam/internal/middleware"
	"github.com/mmynk/splitbeam/internal/models"
)

// ActivityService reads the activity log.
type ActivityService struct {
	*core
}

// List returns the activity log filtered by scope. Without a scope every
// entry is returned; a global scope returns only global entries; any other
// scope returns entries matching both type and ID.
func (s *ActivityService) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	return middleware.Observe(ctx, "activity", "list", func(ctx context.Context) ([]models.Activity, error) {
		all := s.store.Snapshot().Activity
		if filter.Scope == nil {
			return all, nil
		}

		out := make([]models.Activity, 0, len(all))
		for _, a := range all {
			if filter.Scope.Type == models.ScopeGlobal {
				if a.Scope.Type == models.ScopeGlobal {
					out = append(out, a)
				}
				continue
			}
			if a.Scope.Matches(*filter.Scope) {
				out = append(out, a)
			}
		}
		return out, nil
	})
}
