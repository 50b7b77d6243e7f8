// Package provider exposes the data operations the application calls,
// grouped by capability. Every operation reads from and commits to a
// state.Store; none of them talk to a network.
package provider

import (
	"slices"
	"strconv"
	"time"

	"github.com/mmynk/splitbeam/internal/ids"
	"github.com/mmynk/splitbeam/internal/models"
	"github.com/mmynk/splitbeam/internal/state"
)

// Provider bundles the capability groups.
type Provider struct {
	Auth        *AuthService
	Friends     *FriendService
	Circles     *CircleService
	Expenses    *ExpenseService
	Conversions *ConversionService
	Recurring   *RecurringService
	Settlements *SettlementService
	Activity    *ActivityService
}

// Option configures a Provider.
type Option func(*core)

// WithClock overrides the time source used for created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *core) { c.now = now }
}

// WithIDs overrides the identifier generator.
func WithIDs(gen ids.Generator) Option {
	return func(c *core) { c.newID = gen }
}

// core is shared by every capability group.
type core struct {
	store *state.Store
	now   func() time.Time
	newID ids.Generator
}

// New creates a Provider backed by store.
func New(store *state.Store, opts ...Option) *Provider {
	c := &core{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: ids.New,
	}
	for _, opt := range opts {
		opt(c)
	}

	return &Provider{
		Auth:        &AuthService{c},
		Friends:     &FriendService{c},
		Circles:     &CircleService{c},
		Expenses:    &ExpenseService{c},
		Conversions: &ConversionService{c},
		Recurring:   &RecurringService{c},
		Settlements: &SettlementService{c},
		Activity:    &ActivityService{c},
	}
}

// clock returns the current time in UTC.
func (c *core) clock() time.Time {
	return c.now().UTC()
}

// appendActivity adds entry to the log and restores newest-first order.
// The new entry goes first among entries with the same timestamp.
func appendActivity(st *models.State, entry models.Activity) {
	st.Activity = append([]models.Activity{entry}, st.Activity...)
	slices.SortStableFunc(st.Activity, func(a, b models.Activity) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func matchesScope(scope *models.Scope, s models.Scope) bool {
	return scope == nil || s.Matches(*scope)
}
