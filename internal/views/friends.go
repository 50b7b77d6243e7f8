package views

import (
	"fmt"

	"github.com/mmynk/splitbeam/internal/models"
)

// FriendBalance is the running balance with one friend.
type FriendBalance struct {
	Friend      models.Friend
	Balance     float64
	BalanceText string
}

// FriendBalances computes the balance of every friend ledger, formatted in
// the current user's preferred currency (USD when unset).
func FriendBalances(st models.State) []FriendBalance {
	cur := preferredCurrency(st)
	out := make([]FriendBalance, 0, len(st.Friends))
	for _, f := range st.Friends {
		b := Balance(st.Expenses, st.Settlements, models.FriendScope(f.ID))
		out = append(out, FriendBalance{
			Friend:      f,
			Balance:     b,
			BalanceText: FormatCurrency(b, cur),
		})
	}
	return out
}

// FriendsHero is the headline of the friends page.
func FriendsHero(st models.State) string {
	if len(st.Friends) == 0 {
		return "Invite a friend to split something small before the big trip."
	}
	return fmt.Sprintf("You have %d friends syncing with SplitBeam.", len(st.Friends))
}

func preferredCurrency(st models.State) string {
	for _, p := range st.Profiles {
		if p.UserID == st.CurrentUser.ID && p.PreferredCurrency != "" {
			return p.PreferredCurrency
		}
	}
	return "USD"
}
