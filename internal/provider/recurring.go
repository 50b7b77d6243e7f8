package provider

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mmynk/splitbeam/internal/middleware"
	"github.com/mmynk/splitbeam/internal/models"
)

// RecurringService manages recurring expense rules. Rules are bookkeeping
// only; nothing here generates expenses from them.
type RecurringService struct {
	*core
}

// List returns the rules whose scope matches scope exactly, or every rule
// when scope is nil.
func (s *RecurringService) List(ctx context.Context, scope *models.Scope) ([]models.RecurringRule, error) {
	return middleware.Observe(ctx, "recurring", "list", func(ctx context.Context) ([]models.RecurringRule, error) {
		all := s.store.Snapshot().Recurring
		out := make([]models.RecurringRule, 0, len(all))
		for _, r := range all {
			if matchesScope(scope, r.Scope) {
				out = append(out, r)
			}
		}
		return out, nil
	})
}

// Create appends a rule. An empty status defaults to active.
func (s *RecurringService) Create(ctx context.Context, input models.RecurringInput) (models.RecurringRule, error) {
	return middleware.Observe(ctx, "recurring", "create", func(ctx context.Context) (models.RecurringRule, error) {
		if input.Status == "" {
			input.Status = models.RuleActive
		}
		if !input.Scope.IsLedger() {
			return models.RecurringRule{}, invalidArgument("rule scope must be a circle or friend ledger, got %q", input.Scope.Type)
		}
		if err := validateSchedule(input.Cadence, input.CustomCron, input.Status); err != nil {
			return models.RecurringRule{}, err
		}

		now := s.clock()
		rule := models.RecurringRule{
			ID:              s.newID("recurring"),
			Scope:           input.Scope,
			TemplateExpense: models.CloneExpenseInput(input.TemplateExpense),
			Cadence:         input.Cadence,
			CustomCron:      input.CustomCron,
			NextRun:         input.NextRun.UTC(),
			Status:          input.Status,
			CreatedBy:       input.CreatedBy,
			CreatedAt:       &now,
		}

		if _, err := s.store.Update(ctx, func(st *models.State) error {
			st.Recurring = append(st.Recurring, rule)
			return nil
		}); err != nil {
			return models.RecurringRule{}, err
		}

		slog.Info("Recurring rule created",
			"rule_id", rule.ID,
			"cadence", rule.Cadence,
			"next_run", rule.NextRun,
		)
		return rule, nil
	})
}

// Update merges patch into the rule and stamps UpdatedAt.
func (s *RecurringService) Update(ctx context.Context, id string, patch models.RecurringPatch) (models.RecurringRule, error) {
	return middleware.Observe(ctx, "recurring", "update", func(ctx context.Context) (models.RecurringRule, error) {
		now := s.clock()
		return s.modify(ctx, id, func(r models.RecurringRule) (models.RecurringRule, error) {
			r = patch.Apply(r)
			if err := validateSchedule(r.Cadence, r.CustomCron, r.Status); err != nil {
				return r, err
			}
			r.UpdatedAt = &now
			return r, nil
		})
	})
}

// Pause sets the rule's status to paused.
func (s *RecurringService) Pause(ctx context.Context, id string) error {
	return middleware.ObserveErr(ctx, "recurring", "pause", func(ctx context.Context) error {
		_, err := s.modify(ctx, id, func(r models.RecurringRule) (models.RecurringRule, error) {
			r.Status = models.RulePaused
			return r, nil
		})
		return err
	})
}

// Resume sets the rule's status to active.
func (s *RecurringService) Resume(ctx context.Context, id string) error {
	return middleware.ObserveErr(ctx, "recurring", "resume", func(ctx context.Context) error {
		_, err := s.modify(ctx, id, func(r models.RecurringRule) (models.RecurringRule, error) {
			r.Status = models.RuleActive
			return r, nil
		})
		return err
	})
}

// SkipNext moves the rule's next run one calendar month forward. Days past
// the end of the target month roll over into the following month, so
// January 31 becomes March 2 (or March 1 in a leap year).
func (s *RecurringService) SkipNext(ctx context.Context, id string) error {
	return middleware.ObserveErr(ctx, "recurring", "skip_next", func(ctx context.Context) error {
		rule, err := s.modify(ctx, id, func(r models.RecurringRule) (models.RecurringRule, error) {
			r.NextRun = AddMonth(r.NextRun)
			return r, nil
		})
		if err != nil {
			return err
		}
		slog.Info("Recurring run skipped", "rule_id", id, "next_run", rule.NextRun)
		return nil
	})
}

// AddMonth returns t advanced by one calendar month in UTC.
func AddMonth(t time.Time) time.Time {
	return t.UTC().AddDate(0, 1, 0)
}

// modify applies fn to the rule with the given ID as one committed update.
func (s *RecurringService) modify(ctx context.Context, id string, fn func(models.RecurringRule) (models.RecurringRule, error)) (models.RecurringRule, error) {
	var updated models.RecurringRule
	_, err := s.store.Update(ctx, func(st *models.State) error {
		i := slices.IndexFunc(st.Recurring, func(r models.RecurringRule) bool { return r.ID == id })
		if i < 0 {
			return notFound("recurring rule", id)
		}
		next, err := fn(st.Recurring[i])
		if err != nil {
			return err
		}
		updated = next
		st.Recurring[i] = next
		return nil
	})
	if err != nil {
		return models.RecurringRule{}, err
	}
	return updated, nil
}

func validateSchedule(cadence models.Cadence, customCron string, status models.RuleStatus) error {
	if !cadence.Valid() {
		return invalidArgument("unknown cadence %q", cadence)
	}
	if !status.Valid() {
		return invalidArgument("unknown rule status %q", status)
	}
	if cadence == models.CadenceCustom {
		if customCron == "" {
			return invalidArgument("custom cadence requires a cron expression")
		}
		if _, err := cron.ParseStandard(customCron); err != nil {
			return invalidArgument("invalid cron expression %q: %v", customCron, err)
		}
	}
	return nil
}
