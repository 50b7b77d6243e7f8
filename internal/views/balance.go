package views

import "github.com/mmynk/splitbeam/internal/models"

// ExpenseTotal sums amount_base over the expenses in scope, left to right.
func ExpenseTotal(expenses []models.Expense, scope models.Scope) float64 {
	total := 0.0
	for _, e := range expenses {
		if e.Scope.Matches(scope) {
			total += e.AmountBase
		}
	}
	return total
}

// SettlementTotal sums amount over the settlements in scope, left to right.
func SettlementTotal(settlements []models.Settlement, scope models.Scope) float64 {
	total := 0.0
	for _, s := range settlements {
		if s.Scope.Matches(scope) {
			total += s.Amount
		}
	}
	return total
}

// Balance computes the outstanding amount of a circle or friend ledger.
//
// Algorithm:
//   - expense total: amount_base of every expense in scope
//   - settlement total: amount of every settlement in scope
//   - balance = expense total - settlement total
//
// A positive balance is owed to the ledger. Currencies are not converted;
// amounts are summed as recorded.
func Balance(expenses []models.Expense, settlements []models.Settlement, scope models.Scope) float64 {
	return ExpenseTotal(expenses, scope) - SettlementTotal(settlements, scope)
}

// GrandTotal sums amount_base over every expense regardless of scope.
func GrandTotal(expenses []models.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.AmountBase
	}
	return total
}
