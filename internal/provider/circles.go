package provider

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/mmynk/splitbeam/internal/middleware"
	"github.com/mmynk/splitbeam/internal/models"
)

// CircleService manages circles.
type CircleService struct {
	*core
}

// List returns every circle in insertion order.
func (s *CircleService) List(ctx context.Context) ([]models.Circle, error) {
	return middleware.Observe(ctx, "circles", "list", func(ctx context.Context) ([]models.Circle, error) {
		return s.store.Snapshot().Circles, nil
	})
}

// Get retrieves a circle by ID.
func (s *CircleService) Get(ctx context.Context, id string) (models.Circle, error) {
	return middleware.Observe(ctx, "circles", "get", func(ctx context.Context) (models.Circle, error) {
		circle, ok := s.store.Snapshot().FindCircle(id)
		if !ok {
			return models.Circle{}, notFound("circle", id)
		}
		return circle, nil
	})
}

// Create adds a circle administered by the current user and records a
// member_join activity for it.
func (s *CircleService) Create(ctx context.Context, input models.CircleInput) (models.Circle, error) {
	return middleware.Observe(ctx, "circles", "create", func(ctx context.Context) (models.Circle, error) {
		if strings.TrimSpace(input.Name) == "" {
			return models.Circle{}, invalidArgument("circle name required")
		}

		now := s.clock()
		var circle models.Circle

		_, err := s.store.Update(ctx, func(st *models.State) error {
			circle = models.Circle{
				ID:           s.newID("circle"),
				Name:         input.Name,
				BaseCurrency: input.BaseCurrency,
				SimplifyOn:   input.SimplifyOn,
				AdminUserID:  st.CurrentUser.ID,
				CreatedAt:    now,
			}
			st.Circles = append(st.Circles, circle)

			appendActivity(st, models.Activity{
				ID:          s.newID("activity"),
				Type:        models.ActivityMemberJoin,
				Scope:       models.CircleScope(circle.ID),
				Message:     st.CurrentUser.DisplayName("You") + " created " + circle.Name,
				ActorUserID: st.CurrentUser.ID,
				CreatedAt:   now,
			})
			return nil
		})
		if err != nil {
			return models.Circle{}, err
		}

		slog.Info("Circle created", "circle_id", circle.ID, "name", circle.Name)
		return circle, nil
	})
}

// UpdateSettings merges patch into the circle.
func (s *CircleService) UpdateSettings(ctx context.Context, id string, patch models.CirclePatch) (models.Circle, error) {
	return middleware.Observe(ctx, "circles", "update_settings", func(ctx context.Context) (models.Circle, error) {
		if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
			return models.Circle{}, invalidArgument("circle name cannot be empty")
		}

		var updated models.Circle
		_, err := s.store.Update(ctx, func(st *models.State) error {
			i := slices.IndexFunc(st.Circles, func(c models.Circle) bool { return c.ID == id })
			if i < 0 {
				return notFound("circle", id)
			}
			updated = patch.Apply(st.Circles[i])
			st.Circles[i] = updated
			return nil
		})
		if err != nil {
			return models.Circle{}, err
		}

		slog.Info("Circle updated", "circle_id", id)
		return updated, nil
	})
}

// Delete removes the circle and records a circle_delete activity. Expenses,
// rules and settlements scoped to the circle are kept.
func (s *CircleService) Delete(ctx context.Context, id string) error {
	return middleware.ObserveErr(ctx, "circles", "delete", func(ctx context.Context) error {
		now := s.clock()

		_, err := s.store.Update(ctx, func(st *models.State) error {
			i := slices.IndexFunc(st.Circles, func(c models.Circle) bool { return c.ID == id })
			if i < 0 {
				return notFound("circle", id)
			}
			circle := st.Circles[i]
			st.Circles = slices.Delete(st.Circles, i, i+1)

			appendActivity(st, models.Activity{
				ID:          s.newID("activity"),
				Type:        models.ActivityCircleDelete,
				Scope:       models.CircleScope(id),
				Message:     circle.Name + " was archived",
				ActorUserID: st.CurrentUser.ID,
				CreatedAt:   now,
			})
			return nil
		})
		if err != nil {
			return err
		}

		slog.Info("Circle deleted", "circle_id", id)
		return nil
	})
}
