package state

import (
	"time"

	"github.com/mmynk/splitbeam/internal/models"
)

// Default returns the built-in dataset used when no valid snapshot is
// persisted.
func Default() models.State {
	currentUser := models.User{
		ID:        "user_1",
		Email:     "casey@splitbeam.app",
		Name:      "Casey Diaz",
		CreatedAt: ts("2024-01-05T09:12:00Z"),
	}

	return models.State{
		CurrentUser: currentUser,
		Friends: []models.Friend{
			{ID: "friend_1", Email: "jules@studio.dev", Status: models.FriendActive, InvitedAt: tsp("2024-01-18T14:20:00Z")},
			{ID: "friend_2", Email: "andrea@vault.io", Status: models.FriendInvited, InvitedAt: tsp("2024-02-02T17:00:00Z")},
			{ID: "friend_3", Email: "nina@folio.co", Status: models.FriendActive, InvitedAt: tsp("2024-02-10T11:45:00Z")},
		},
		Circles: []models.Circle{
			{
				ID:           "circle_1",
				Name:         "Lisbon Landing Crew",
				BaseCurrency: "EUR",
				SimplifyOn:   true,
				AdminUserID:  currentUser.ID,
				CreatedAt:    ts("2024-03-01T10:00:00Z"),
			},
			{
				ID:           "circle_2",
				Name:         "NYC Studio Loft",
				BaseCurrency: "USD",
				SimplifyOn:   false,
				AdminUserID:  currentUser.ID,
				CreatedAt:    ts("2024-04-04T13:30:00Z"),
			},
		},
		Expenses: []models.Expense{
			{
				ID:           "expense_1",
				Scope:        models.CircleScope("circle_1"),
				Title:        "Surfboard rentals",
				AmountBase:   180.45,
				CurrencyBase: "EUR",
				Payers: []models.Payer{
					{UserID: currentUser.ID, Amount: amount(120.3)},
					{UserID: "friend_1", Amount: amount(60.15)},
				},
				Split:     models.Split{Method: models.SplitEqual},
				CreatedBy: currentUser.ID,
				CreatedAt: ts("2024-03-02T15:22:00Z"),
				Notes:     "Weekend session at Guincho",
			},
			{
				ID:           "expense_2",
				Scope:        models.CircleScope("circle_1"),
				Title:        "Shared groceries",
				AmountBase:   96.8,
				CurrencyBase: "EUR",
				Payers:       []models.Payer{{UserID: "friend_3"}},
				Split: models.Split{
					Method: models.SplitShares,
					Shares: map[string]float64{currentUser.ID: 2, "friend_1": 1, "friend_3": 1},
				},
				CreatedBy: "friend_3",
				CreatedAt: ts("2024-03-08T18:05:00Z"),
			},
			{
				ID:           "expense_3",
				Scope:        models.CircleScope("circle_2"),
				Title:        "Studio cleaning service",
				AmountBase:   210,
				CurrencyBase: "USD",
				Payers:       []models.Payer{{UserID: currentUser.ID}},
				Split:        models.Split{Method: models.SplitEqual},
				CreatedBy:    currentUser.ID,
				CreatedAt:    ts("2024-04-10T09:00:00Z"),
			},
		},
		Recurring: []models.RecurringRule{
			{
				ID:    "recurring_1",
				Scope: models.CircleScope("circle_2"),
				TemplateExpense: models.ExpenseInput{
					Scope:        models.CircleScope("circle_2"),
					Title:        "Loft rent",
					AmountBase:   3200,
					CurrencyBase: "USD",
					Payers:       []models.Payer{{UserID: currentUser.ID}},
					Split:        models.Split{Method: models.SplitEqual},
					CreatedBy:    currentUser.ID,
					Notes:        "Due on the 1st",
				},
				Cadence:   models.CadenceMonthly,
				NextRun:   ts("2024-05-01T12:00:00Z"),
				Status:    models.RuleActive,
				CreatedBy: currentUser.ID,
				CreatedAt: tsp("2024-04-05T10:00:00Z"),
			},
		},
		Settlements: []models.Settlement{
			{
				ID:        "settlement_1",
				Scope:     models.CircleScope("circle_1"),
				FromUser:  "friend_1",
				ToUser:    currentUser.ID,
				Amount:    45.2,
				Currency:  "EUR",
				CreatedAt: ts("2024-03-12T19:40:00Z"),
			},
		},
		Activity: []models.Activity{
			{
				ID:          "activity_4",
				Type:        models.ActivityExpenseAdd,
				Scope:       models.CircleScope("circle_2"),
				Message:     "Casey added Studio cleaning service",
				ActorUserID: currentUser.ID,
				CreatedAt:   ts("2024-04-10T09:05:00Z"),
				Tags:        []string{"expense", "nyc studio loft"},
			},
			{
				ID:          "activity_3",
				Type:        models.ActivitySettlement,
				Scope:       models.CircleScope("circle_1"),
				Message:     "Jules settled €45.20 with Casey",
				ActorUserID: "friend_1",
				CreatedAt:   ts("2024-03-12T19:42:00Z"),
				Tags:        []string{"settlement", "lisbon landing crew"},
			},
			{
				ID:          "activity_2",
				Type:        models.ActivityExpenseAdd,
				Scope:       models.CircleScope("circle_1"),
				Message:     "Nina logged Shared groceries",
				ActorUserID: "friend_3",
				CreatedAt:   ts("2024-03-08T18:05:30Z"),
				Tags:        []string{"expense", "shares"},
			},
			{
				ID:          "activity_1",
				Type:        models.ActivityExpenseAdd,
				Scope:       models.CircleScope("circle_1"),
				Message:     "Casey added Surfboard rentals to Lisbon Landing Crew",
				ActorUserID: currentUser.ID,
				CreatedAt:   ts("2024-03-02T15:22:30Z"),
				Tags:        []string{"expense", "lisbon landing crew"},
			},
		},
		Profiles: []models.Profile{
			{
				UserID:            currentUser.ID,
				PreferredCurrency: "EUR",
				Bio:               "Product lead piloting SplitBeam's mock launch.",
				SocialLinks: []models.SocialLink{
					{Label: "Website", URL: "https://splitbeam.app"},
					{Label: "LinkedIn", URL: "https://www.linkedin.com/in/casey-diaz"},
				},
			},
		},
	}
}

// Empty returns a snapshot with the default current user and no other data.
func Empty() models.State {
	return models.State{
		CurrentUser: Default().CurrentUser,
	}.Clone()
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func amount(v float64) *float64 {
	return &v
}
