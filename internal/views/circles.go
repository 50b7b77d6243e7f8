package views

import (
	"fmt"
	"time"

	"github.com/mmynk/splitbeam/internal/apperr"
	"github.com/mmynk/splitbeam/internal/models"
)

// CircleCard summarises one circle for the circles overview.
type CircleCard struct {
	Circle        models.Circle
	Balance       float64
	BalanceText   string
	SimplifyLabel string
	LastActivity  string
}

// CircleCards builds a card per circle, in collection order.
func CircleCards(st models.State, now time.Time) []CircleCard {
	cards := make([]CircleCard, 0, len(st.Circles))
	for _, c := range st.Circles {
		scope := models.CircleScope(c.ID)
		balance := Balance(st.Expenses, st.Settlements, scope)

		last := "No recent activity"
		if recent := SortActivity(ActivityInScope(st.Activity, scope)); len(recent) > 0 {
			last = "Last activity " + FormatRelative(recent[0].CreatedAt, now)
		}

		cards = append(cards, CircleCard{
			Circle:        c,
			Balance:       balance,
			BalanceText:   FormatCurrency(balance, c.BaseCurrency),
			SimplifyLabel: simplifyLabel(c.SimplifyOn),
			LastActivity:  last,
		})
	}
	return cards
}

// CirclesHero is the headline of the circles overview. The grand total is
// shown in the first circle's base currency.
func CirclesHero(st models.State) string {
	if len(st.Circles) == 0 {
		return "Create your first circle to start tracking shared costs."
	}
	return fmt.Sprintf("Tracking %d circles with %d expenses worth %s.",
		len(st.Circles),
		len(st.Expenses),
		FormatCurrency(GrandTotal(st.Expenses), st.Circles[0].BaseCurrency),
	)
}

// RuleLine describes a recurring rule on the circle page.
type RuleLine struct {
	Rule        models.RecurringRule
	Schedule    string
	NextRun     string
	StatusLabel string
	AmountText  string

	// Upcoming lists the next few run dates, starting with NextRun. It is
	// empty when the schedule cannot be evaluated.
	Upcoming []string
}

// CircleDetail is everything shown on a single circle's page.
type CircleDetail struct {
	Circle           models.Circle
	Expenses         []models.Expense
	Settlements      []models.Settlement
	Activity         []models.Activity
	Rules            []RuleLine
	TotalExpenses    float64
	TotalSettlements float64
	Outstanding      float64
	OutstandingText  string
	Members          []MemberSummary
	Hero             string
}

// BuildCircleDetail assembles the page of the circle with the given ID. It
// fails with a not-found error when no such circle exists.
func BuildCircleDetail(st models.State, circleID string, now time.Time) (CircleDetail, error) {
	circle, ok := st.FindCircle(circleID)
	if !ok {
		return CircleDetail{}, apperr.NotFound("circle", circleID)
	}

	scope := models.CircleScope(circleID)
	expenses := ExpensesInScope(st.Expenses, scope)
	settlements := SettlementsInScope(st.Settlements, scope)
	activity := SortActivity(ActivityInScope(st.Activity, scope))

	d := CircleDetail{
		Circle:           circle,
		Expenses:         SortExpenses(expenses),
		Settlements:      SortSettlements(settlements),
		Activity:         activity,
		TotalExpenses:    ExpenseTotal(expenses, scope),
		TotalSettlements: SettlementTotal(settlements, scope),
		Members: MemberSummaries(circleID, expenses, settlements, activity, MemberContext{
			CurrentUser: st.CurrentUser,
			Friends:     st.Friends,
		}),
	}
	d.Outstanding = d.TotalExpenses - d.TotalSettlements
	d.OutstandingText = FormatCurrency(d.Outstanding, circle.BaseCurrency)

	for _, r := range RecurringInScope(st.Recurring, scope) {
		d.Rules = append(d.Rules, ruleLine(r))
	}

	d.Hero = fmt.Sprintf("Created %s · %s",
		FormatRelative(circle.CreatedAt, now),
		countNoun(len(d.Members), "member"),
	)
	return d, nil
}

const (
	dateLayout   = "Jan 2, 2006"
	upcomingRuns = 3
)

func ruleLine(r models.RecurringRule) RuleLine {
	var schedule string
	switch r.Cadence {
	case models.CadenceWeekly:
		schedule = "Every week"
	case models.CadenceMonthly:
		schedule = "Every month"
	default:
		schedule = "Custom (" + r.CustomCron + ")"
	}
	status := "Active"
	if r.Status == models.RulePaused {
		status = "Paused"
	}
	line := RuleLine{
		Rule:        r,
		Schedule:    schedule,
		NextRun:     r.NextRun.UTC().Format(dateLayout),
		StatusLabel: status,
		AmountText:  FormatCurrency(r.TemplateExpense.AmountBase, r.TemplateExpense.CurrencyBase),
	}
	if runs, err := NextRuns(r, upcomingRuns); err == nil {
		for _, t := range runs {
			line.Upcoming = append(line.Upcoming, t.Format(dateLayout))
		}
	}
	return line
}

func simplifyLabel(on bool) string {
	if on {
		return "Simplify on"
	}
	return "Simplify off"
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
