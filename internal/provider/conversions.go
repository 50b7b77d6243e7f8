package provider

import (
	"context"
	"log/slog"

	"github.com/mmynk/splitbeam/internal/middleware"
	"github.com/mmynk/splitbeam/internal/models"
	"github.com/mmynk/splitbeam/internal/state"
)

// ConversionService attaches display conversions to expenses.
type ConversionService struct {
	*core
}

// Create sets the conversion of the expense. An unknown expense ID is
// ignored: no error is returned and nothing is written.
func (s *ConversionService) Create(ctx context.Context, expenseID, targetCurrency, rateText string, amountConverted float64) error {
	return middleware.ObserveErr(ctx, "conversions", "create", func(ctx context.Context) error {
		applied := false
		_, err := s.store.Update(ctx, func(st *models.State) error {
			for i := range st.Expenses {
				if st.Expenses[i].ID != expenseID {
					continue
				}
				st.Expenses[i].Conversion = &models.Conversion{
					TargetCurrency:  targetCurrency,
					RateText:        rateText,
					AmountConverted: amountConverted,
				}
				applied = true
			}
			if !applied {
				return state.ErrUnchanged
			}
			return nil
		})
		if err != nil {
			return err
		}

		if applied {
			slog.Info("Conversion recorded", "expense_id", expenseID, "target_currency", targetCurrency)
		} else {
			slog.Debug("Conversion skipped, unknown expense", "expense_id", expenseID)
		}
		return nil
	})
}
