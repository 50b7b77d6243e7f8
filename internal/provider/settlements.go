package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/splitbeam/internal/middleware"
	"github.com/mmynk/splitbeam/internal/models"
)

// SettlementService records payments between parties.
type SettlementService struct {
	*core
}

// Create appends a settlement and records a settlement activity in the same
// ledger, attributed to the payer.
func (s *SettlementService) Create(ctx context.Context, input models.SettlementInput) (models.Settlement, error) {
	return middleware.Observe(ctx, "settlements", "create", func(ctx context.Context) (models.Settlement, error) {
		if !input.Scope.IsLedger() {
			return models.Settlement{}, invalidArgument("settlement scope must be a circle or friend ledger, got %q", input.Scope.Type)
		}

		settlement := models.Settlement{
			ID:        s.newID("settlement"),
			Scope:     input.Scope,
			FromUser:  input.FromUser,
			ToUser:    input.ToUser,
			Amount:    input.Amount,
			Currency:  input.Currency,
			RateText:  input.RateText,
			CreatedAt: s.clock(),
		}

		_, err := s.store.Update(ctx, func(st *models.State) error {
			st.Settlements = append(st.Settlements, settlement)
			appendActivity(st, models.Activity{
				ID:          s.newID("activity"),
				Type:        models.ActivitySettlement,
				Scope:       settlement.Scope,
				Message:     fmt.Sprintf("Settlement recorded for %s %s", formatAmount(settlement.Amount), settlement.Currency),
				ActorUserID: settlement.FromUser,
				CreatedAt:   settlement.CreatedAt,
			})
			return nil
		})
		if err != nil {
			return models.Settlement{}, err
		}

		slog.Info("Settlement recorded",
			"settlement_id", settlement.ID,
			"from", settlement.FromUser,
			"to", settlement.ToUser,
			"amount", settlement.Amount,
		)
		return settlement, nil
	})
}

// List returns the settlements whose scope matches scope exactly, or every
// settlement when scope is nil.
func (s *SettlementService) List(ctx context.Context, scope *models.Scope) ([]models.Settlement, error) {
	return middleware.Observe(ctx, "settlements", "list", func(ctx context.Context) ([]models.Settlement, error) {
		all := s.store.Snapshot().Settlements
		out := make([]models.Settlement, 0, len(all))
		for _, st := range all {
			if matchesScope(scope, st.Scope) {
				out = append(out, st)
			}
		}
		return out, nil
	})
}
