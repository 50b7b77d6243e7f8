package views

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/mmynk/splitbeam/internal/apperr"
	"github.com/mmynk/splitbeam/internal/models"
	"github.com/mmynk/splitbeam/internal/state"
)

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	input := []models.Activity{
		{ID: "old", CreatedAt: base},
		{ID: "tie_a", CreatedAt: base.Add(time.Hour)},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "tie_b", CreatedAt: base.Add(time.Hour)},
	}
	original := slices.Clone(input)

	got := SortActivity(input)

	var ids []string
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	want := []string{"new", "tie_a", "tie_b", "old"}
	if !slices.Equal(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
	for i := range input {
		if input[i].ID != original[i].ID {
			t.Fatal("input was reordered")
		}
	}
}

func TestScopeFilters(t *testing.T) {
	st := state.Default()

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"expenses", len(ExpensesInScope(st.Expenses, models.CircleScope("circle_1"))), 2},
		{"settlements", len(SettlementsInScope(st.Settlements, models.CircleScope("circle_1"))), 1},
		{"activity", len(ActivityInScope(st.Activity, models.CircleScope("circle_1"))), 3},
		{"recurring", len(RecurringInScope(st.Recurring, models.CircleScope("circle_2"))), 1},
		{"type must match", len(ExpensesInScope(st.Expenses, models.FriendScope("circle_1"))), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.count != tt.want {
				t.Errorf("count = %d, want %d", tt.count, tt.want)
			}
		})
	}
}

func TestUnread(t *testing.T) {
	activity := state.Default().Activity
	lastSeen := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	if got := UnreadCount(activity, lastSeen); got != 2 {
		t.Errorf("UnreadCount() = %d, want 2", got)
	}
	if !HasUnseen(activity, lastSeen) {
		t.Error("HasUnseen() = false, want true")
	}

	// Entries at exactly lastSeen are read.
	exact := activity[0].CreatedAt
	if got := UnreadCount(activity, exact); got != 0 {
		t.Errorf("UnreadCount(at newest) = %d, want 0", got)
	}
	if HasUnseen(nil, time.Time{}) {
		t.Error("HasUnseen(empty) = true, want false")
	}
	if got := UnreadCount(activity, time.Time{}); got != len(activity) {
		t.Errorf("UnreadCount(zero) = %d, want %d", got, len(activity))
	}
}

func TestCircleCards(t *testing.T) {
	st := state.Default()
	now := time.Date(2024, 3, 13, 19, 42, 0, 0, time.UTC)

	cards := CircleCards(st, now)
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}

	lisbon := cards[0]
	if lisbon.BalanceText != "€232.05" {
		t.Errorf("balance text = %q, want €232.05", lisbon.BalanceText)
	}
	if lisbon.SimplifyLabel != "Simplify on" {
		t.Errorf("simplify = %q", lisbon.SimplifyLabel)
	}
	if lisbon.LastActivity != "Last activity 1 day ago" {
		t.Errorf("last activity = %q", lisbon.LastActivity)
	}

	loft := cards[1]
	if loft.BalanceText != "$210.00" || loft.SimplifyLabel != "Simplify off" {
		t.Errorf("loft card = %+v", loft)
	}

	st.Activity = nil
	if got := CircleCards(st, now)[0].LastActivity; got != "No recent activity" {
		t.Errorf("last activity without entries = %q", got)
	}
}

func TestCirclesHero(t *testing.T) {
	st := state.Default()
	want := "Tracking 2 circles with 3 expenses worth €487.25."
	if got := CirclesHero(st); got != want {
		t.Errorf("CirclesHero() = %q, want %q", got, want)
	}

	if got := CirclesHero(state.Empty()); got != "Create your first circle to start tracking shared costs." {
		t.Errorf("CirclesHero(empty) = %q", got)
	}
}

func TestBuildCircleDetail(t *testing.T) {
	st := state.Default()
	now := time.Date(2024, 4, 14, 13, 30, 0, 0, time.UTC)

	d, err := BuildCircleDetail(st, "circle_2", now)
	if err != nil {
		t.Fatalf("BuildCircleDetail failed: %v", err)
	}

	if d.Circle.Name != "NYC Studio Loft" {
		t.Errorf("circle = %q", d.Circle.Name)
	}
	if d.TotalExpenses != 210 || d.TotalSettlements != 0 || d.Outstanding != 210 {
		t.Errorf("totals = %v/%v/%v", d.TotalExpenses, d.TotalSettlements, d.Outstanding)
	}
	if len(d.Members) != 1 || d.Members[0].Status != StatusYou {
		t.Errorf("members = %+v", d.Members)
	}
	if d.Hero != "Created 10 days ago · 1 member" {
		t.Errorf("hero = %q", d.Hero)
	}
	if len(d.Rules) != 1 {
		t.Fatalf("rules = %d, want 1", len(d.Rules))
	}
	rule := d.Rules[0]
	if rule.Schedule != "Every month" || rule.NextRun != "May 1, 2024" || rule.StatusLabel != "Active" || rule.AmountText != "$3,200.00" {
		t.Errorf("rule line = %+v", rule)
	}
	if want := []string{"May 1, 2024", "Jun 1, 2024", "Jul 1, 2024"}; !slices.Equal(rule.Upcoming, want) {
		t.Errorf("upcoming = %v, want %v", rule.Upcoming, want)
	}

	lisbon, err := BuildCircleDetail(st, "circle_1", now)
	if err != nil {
		t.Fatalf("BuildCircleDetail failed: %v", err)
	}
	if len(lisbon.Expenses) != 2 || lisbon.Expenses[0].ID != "expense_2" {
		t.Errorf("expenses not newest first: %+v", lisbon.Expenses)
	}
	if len(lisbon.Members) != 3 {
		t.Errorf("members = %d, want 3", len(lisbon.Members))
	}

	_, err = BuildCircleDetail(st, "circle_9", now)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestActivityFeed(t *testing.T) {
	st := state.Default()
	lastSeen := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 4, 10, 9, 5, 0, 0, time.UTC)

	tests := []struct {
		name       string
		filter     FeedFilter
		lastSeen   time.Time
		wantIDs    []string
		wantTypes  []models.ActivityType
		wantUnread int
		wantHero   string
	}{
		{
			name:       "all",
			lastSeen:   lastSeen,
			wantIDs:    []string{"activity_4", "activity_3", "activity_2", "activity_1"},
			wantTypes:  []models.ActivityType{models.ActivityExpenseAdd, models.ActivitySettlement},
			wantUnread: 2,
			wantHero:   "Tracking 4 events across 2 circles. 2 new events since your last visit.",
		},
		{
			name:       "type filter keeps unread count",
			filter:     FeedFilter{Types: []models.ActivityType{models.ActivitySettlement}},
			lastSeen:   lastSeen,
			wantIDs:    []string{"activity_3"},
			wantTypes:  []models.ActivityType{models.ActivityExpenseAdd, models.ActivitySettlement},
			wantUnread: 2,
			wantHero:   "Tracking 4 events across 2 circles. 2 new events since your last visit.",
		},
		{
			name:       "friend scope",
			filter:     FeedFilter{ScopeType: models.ScopeFriend},
			lastSeen:   lastSeen,
			wantIDs:    nil,
			wantTypes:  nil,
			wantUnread: 0,
			wantHero:   "Tracking 4 events across 2 circles. You're all caught up.",
		},
		{
			name:       "one unread",
			lastSeen:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			wantIDs:    []string{"activity_4", "activity_3", "activity_2", "activity_1"},
			wantTypes:  []models.ActivityType{models.ActivityExpenseAdd, models.ActivitySettlement},
			wantUnread: 1,
			wantHero:   "Tracking 4 events across 2 circles. 1 new event since your last visit.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := ActivityFeed(st, tt.filter, tt.lastSeen, now)

			var ids []string
			for _, e := range feed.Entries {
				ids = append(ids, e.Activity.ID)
			}
			if !slices.Equal(ids, tt.wantIDs) {
				t.Errorf("entries = %v, want %v", ids, tt.wantIDs)
			}
			if !slices.Equal(feed.AvailableTypes, tt.wantTypes) {
				t.Errorf("types = %v, want %v", feed.AvailableTypes, tt.wantTypes)
			}
			if feed.UnreadCount != tt.wantUnread {
				t.Errorf("unread = %d, want %d", feed.UnreadCount, tt.wantUnread)
			}
			if feed.Hero != tt.wantHero {
				t.Errorf("hero = %q, want %q", feed.Hero, tt.wantHero)
			}
		})
	}

	feed := ActivityFeed(st, FeedFilter{}, lastSeen, now)
	first := feed.Entries[0]
	if first.ScopeLabel != "NYC Studio Loft" || first.TypeLabel != "Expense added" || !first.Unread || first.Relative != "just now" {
		t.Errorf("first entry = %+v", first)
	}
	if feed.Entries[3].Unread {
		t.Error("entries before lastSeen must be read")
	}
}

func TestActivityFeed_OrphanedScope(t *testing.T) {
	st := state.Default()
	st.Circles = nil

	feed := ActivityFeed(st, FeedFilter{}, time.Time{}, time.Now())
	if got := feed.Entries[0].ScopeLabel; got != "Circle" {
		t.Errorf("scope label = %q, want Circle", got)
	}
}

func TestFriendBalances(t *testing.T) {
	st := state.Default()
	st.Expenses = append(st.Expenses, models.Expense{
		Scope:      models.FriendScope("friend_2"),
		AmountBase: 18.5,
	})
	st.Settlements = append(st.Settlements, models.Settlement{
		Scope:  models.FriendScope("friend_2"),
		Amount: 20,
	})

	balances := FriendBalances(st)
	if len(balances) != 3 {
		t.Fatalf("got %d balances, want 3", len(balances))
	}
	if balances[0].BalanceText != "€0.00" {
		t.Errorf("friend_1 = %q, want €0.00", balances[0].BalanceText)
	}
	if balances[1].Balance != -1.5 || balances[1].BalanceText != "-€1.50" {
		t.Errorf("friend_2 = %v %q", balances[1].Balance, balances[1].BalanceText)
	}

	st.Profiles = nil
	if got := FriendBalances(st)[0].BalanceText; got != "$0.00" {
		t.Errorf("without a profile = %q, want $0.00", got)
	}

	if got := FriendsHero(st); got != "You have 3 friends syncing with SplitBeam." {
		t.Errorf("FriendsHero() = %q", got)
	}
}

func TestNextRuns(t *testing.T) {
	day := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	tests := []struct {
		name    string
		rule    models.RecurringRule
		n       int
		want    []string
		wantErr bool
	}{
		{
			name: "weekly",
			rule: models.RecurringRule{Cadence: models.CadenceWeekly, NextRun: day("2024-05-01T12:00:00Z")},
			n:    3,
			want: []string{"2024-05-01T12:00:00Z", "2024-05-08T12:00:00Z", "2024-05-15T12:00:00Z"},
		},
		{
			name: "monthly rolls over short months",
			rule: models.RecurringRule{Cadence: models.CadenceMonthly, NextRun: day("2024-01-31T00:00:00Z")},
			n:    3,
			want: []string{"2024-01-31T00:00:00Z", "2024-03-02T00:00:00Z", "2024-04-02T00:00:00Z"},
		},
		{
			name: "custom cron",
			rule: models.RecurringRule{Cadence: models.CadenceCustom, CustomCron: "0 9 1 * *", NextRun: day("2024-07-01T09:00:00Z")},
			n:    3,
			want: []string{"2024-07-01T09:00:00Z", "2024-08-01T09:00:00Z", "2024-09-01T09:00:00Z"},
		},
		{
			name:    "bad cron",
			rule:    models.RecurringRule{Cadence: models.CadenceCustom, CustomCron: "whenever"},
			n:       1,
			wantErr: true,
		},
		{
			name:    "unknown cadence",
			rule:    models.RecurringRule{Cadence: "yearly"},
			n:       1,
			wantErr: true,
		},
		{
			name: "none requested",
			rule: models.RecurringRule{Cadence: models.CadenceWeekly},
			n:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := NextRuns(tt.rule, tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NextRuns() error = %v, wantErr %v", err, tt.wantErr)
			}
			var got []string
			for _, r := range runs {
				got = append(got, r.Format(time.RFC3339))
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("NextRuns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLive(t *testing.T) {
	ctx := context.Background()
	store := state.Open(ctx, nil)
	defer store.Close()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	live := NewLive(store, func() time.Time { return now })

	d, version := live.Dashboard()
	if version != 1 || len(d.Circles) != 2 {
		t.Fatalf("initial dashboard: version %d, %d circles", version, len(d.Circles))
	}

	_, err := store.Update(ctx, func(st *models.State) error {
		st.Circles = append(st.Circles, models.Circle{ID: "circle_3", Name: "Ski Trip", BaseCurrency: "CHF"})
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	d, version = live.Dashboard()
	if version != 2 || len(d.Circles) != 3 {
		t.Errorf("after update: version %d, %d circles", version, len(d.Circles))
	}
	if d.CirclesHero != "Tracking 3 circles with 3 expenses worth €487.25." {
		t.Errorf("hero = %q", d.CirclesHero)
	}

	live.Close()
	_, _ = store.Update(ctx, func(st *models.State) error {
		st.Circles = nil
		return nil
	})
	if _, version = live.Dashboard(); version != 2 {
		t.Errorf("dashboard refreshed after Close: version %d", version)
	}
}
