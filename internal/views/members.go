package views

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/splitbeam/internal/models"
)

// Member status labels.
const (
	StatusYou     = "You"
	StatusActive  = "Active"
	StatusInvited = "Invited"
	StatusGuest   = "Guest"
)

// Badge variants paired with a status.
const (
	VariantSuccess = "success"
	VariantOutline = "outline"
	VariantWarning = "warning"
)

// MemberSummary is one participant of a circle.
type MemberSummary struct {
	ID              string
	Label           string
	Status          string
	Variant         string
	TotalPaid       float64
	ExpensesTouched int
}

// MemberContext identifies the current user and their friends.
type MemberContext struct {
	CurrentUser models.User
	Friends     []models.Friend
}

// MemberSummaries derives the participants of a circle from its expenses,
// settlements and activity.
//
// A participant is the current user, any payer, share holder or expense
// creator, either party of a settlement, or the actor of an activity entry
// scoped to the circle. Blank IDs are dropped. For each participant:
//   - TotalPaid sums the amount of their first payer entry on each expense
//   - ExpensesTouched counts expenses they created, paid, or hold a non-zero
//     share of
//
// Results are sorted by label.
func MemberSummaries(circleID string, expenses []models.Expense, settlements []models.Settlement, activity []models.Activity, mc MemberContext) []MemberSummary {
	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}

	add(mc.CurrentUser.ID)
	for _, e := range expenses {
		for _, p := range e.Payers {
			add(p.UserID)
		}
		for _, id := range sortedKeys(e.Split.Shares) {
			add(id)
		}
		add(e.CreatedBy)
	}
	for _, s := range settlements {
		add(s.FromUser)
		add(s.ToUser)
	}
	circle := models.CircleScope(circleID)
	for _, a := range activity {
		if a.Scope.Matches(circle) {
			add(a.ActorUserID)
		}
	}

	// Later entries win when a friend ID repeats.
	friends := make(map[string]models.Friend, len(mc.Friends))
	for _, f := range mc.Friends {
		friends[f.ID] = f
	}

	out := make([]MemberSummary, 0, len(ids))
	for _, id := range ids {
		m := MemberSummary{
			ID:              id,
			TotalPaid:       totalPaid(expenses, id),
			ExpensesTouched: expensesTouched(expenses, id),
		}

		if id == mc.CurrentUser.ID {
			m.Label = mc.CurrentUser.DisplayName(mc.CurrentUser.Email)
			m.Status, m.Variant = StatusYou, VariantSuccess
		} else if f, ok := friends[id]; ok {
			m.Label = f.Email
			if f.Status == models.FriendActive {
				m.Status, m.Variant = StatusActive, VariantOutline
			} else {
				m.Status, m.Variant = StatusInvited, VariantWarning
			}
		} else {
			m.Label = "Member " + truncate(id, 6)
			m.Status, m.Variant = StatusGuest, VariantOutline
		}
		out = append(out, m)
	}

	col := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b MemberSummary) int {
		return col.CompareString(a.Label, b.Label)
	})
	return out
}

func totalPaid(expenses []models.Expense, id string) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.PaidBy(id)
	}
	return total
}

func expensesTouched(expenses []models.Expense, id string) int {
	n := 0
	for _, e := range expenses {
		if e.CreatedBy == id || e.HasPayer(id) || e.Split.Shares[id] != 0 {
			n++
		}
	}
	return n
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
