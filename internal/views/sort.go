// Package views derives read-only view models from a state snapshot.
// Every function is pure: inputs are never modified and results never share
// backing arrays with them.
package views

import (
	"slices"
	"time"

	"github.com/mmynk/splitbeam/internal/models"
)

// SortNewestFirst returns a copy of items ordered by descending creation
// time. Items with equal timestamps keep their input order.
func SortNewestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return createdAt(b).Compare(createdAt(a))
	})
	return out
}

func SortActivity(activity []models.Activity) []models.Activity {
	return SortNewestFirst(activity, func(a models.Activity) time.Time { return a.CreatedAt })
}

func SortExpenses(expenses []models.Expense) []models.Expense {
	return SortNewestFirst(expenses, func(e models.Expense) time.Time { return e.CreatedAt })
}

func SortSettlements(settlements []models.Settlement) []models.Settlement {
	return SortNewestFirst(settlements, func(s models.Settlement) time.Time { return s.CreatedAt })
}

// filterScope keeps the items whose scope matches scope exactly.
func filterScope[T any](items []T, scope models.Scope, scopeOf func(T) models.Scope) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if scopeOf(item).Matches(scope) {
			out = append(out, item)
		}
	}
	return out
}

func ExpensesInScope(expenses []models.Expense, scope models.Scope) []models.Expense {
	return filterScope(expenses, scope, func(e models.Expense) models.Scope { return e.Scope })
}

func SettlementsInScope(settlements []models.Settlement, scope models.Scope) []models.Settlement {
	return filterScope(settlements, scope, func(s models.Settlement) models.Scope { return s.Scope })
}

func ActivityInScope(activity []models.Activity, scope models.Scope) []models.Activity {
	return filterScope(activity, scope, func(a models.Activity) models.Scope { return a.Scope })
}

func RecurringInScope(rules []models.RecurringRule, scope models.Scope) []models.RecurringRule {
	return filterScope(rules, scope, func(r models.RecurringRule) models.Scope { return r.Scope })
}
