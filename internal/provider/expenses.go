package provider

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mmynk/splitbeam/internal/middleware"
	"github.com/mmynk/splitbeam/internal/models"
)

// ExpenseService manages expenses.
type ExpenseService struct {
	*core
}

// List returns the expenses whose scope matches scope exactly, or every
// expense when scope is nil.
func (s *ExpenseService) List(ctx context.Context, scope *models.Scope) ([]models.Expense, error) {
	return middleware.Observe(ctx, "expenses", "list", func(ctx context.Context) ([]models.Expense, error) {
		all := s.store.Snapshot().Expenses
		out := make([]models.Expense, 0, len(all))
		for _, e := range all {
			if matchesScope(scope, e.Scope) {
				out = append(out, e)
			}
		}
		return out, nil
	})
}

// Create adds an expense at the front of the collection. No activity is
// recorded.
func (s *ExpenseService) Create(ctx context.Context, input models.ExpenseInput) (models.Expense, error) {
	return middleware.Observe(ctx, "expenses", "create", func(ctx context.Context) (models.Expense, error) {
		if err := validateExpense(input.Scope, input.Split); err != nil {
			return models.Expense{}, err
		}

		in := models.CloneExpenseInput(input)
		expense := models.Expense{
			ID:           s.newID("expense"),
			Scope:        in.Scope,
			Title:        in.Title,
			AmountBase:   in.AmountBase,
			CurrencyBase: in.CurrencyBase,
			Payers:       in.Payers,
			Split:        in.Split,
			Conversion:   in.Conversion,
			Notes:        in.Notes,
			Attachments:  in.Attachments,
			CreatedBy:    in.CreatedBy,
			CreatedAt:    s.clock(),
		}

		if _, err := s.store.Update(ctx, func(st *models.State) error {
			st.Expenses = append([]models.Expense{expense}, st.Expenses...)
			return nil
		}); err != nil {
			return models.Expense{}, err
		}

		slog.Info("Expense created",
			"expense_id", expense.ID,
			"scope", expense.Scope.Type,
			"scope_id", expense.Scope.ID,
			"amount", expense.AmountBase,
		)
		return expense, nil
	})
}

// Update merges patch into the expense and stamps UpdatedAt.
func (s *ExpenseService) Update(ctx context.Context, id string, patch models.ExpensePatch) (models.Expense, error) {
	return middleware.Observe(ctx, "expenses", "update", func(ctx context.Context) (models.Expense, error) {
		var updated models.Expense
		now := s.clock()

		_, err := s.store.Update(ctx, func(st *models.State) error {
			i := slices.IndexFunc(st.Expenses, func(e models.Expense) bool { return e.ID == id })
			if i < 0 {
				return notFound("expense", id)
			}
			updated = patch.Apply(st.Expenses[i])
			if err := validateExpense(updated.Scope, updated.Split); err != nil {
				return err
			}
			updated.UpdatedAt = &now
			st.Expenses[i] = updated
			return nil
		})
		if err != nil {
			return models.Expense{}, err
		}

		slog.Info("Expense updated", "expense_id", id)
		return updated, nil
	})
}

// Delete removes the expense.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return middleware.ObserveErr(ctx, "expenses", "delete", func(ctx context.Context) error {
		_, err := s.store.Update(ctx, func(st *models.State) error {
			i := slices.IndexFunc(st.Expenses, func(e models.Expense) bool { return e.ID == id })
			if i < 0 {
				return notFound("expense", id)
			}
			st.Expenses = slices.Delete(st.Expenses, i, i+1)
			return nil
		})
		if err != nil {
			return err
		}

		slog.Info("Expense deleted", "expense_id", id)
		return nil
	})
}

func validateExpense(scope models.Scope, split models.Split) error {
	if !scope.IsLedger() {
		return invalidArgument("expense scope must be a circle or friend ledger, got %q", scope.Type)
	}
	if !split.Method.Valid() {
		return invalidArgument("unknown split method %q", split.Method)
	}
	return nil
}
