package views

import (
	"fmt"
	"slices"
	"time"

	"github.com/mmynk/splitbeam/internal/models"
)

// FeedFilter narrows the activity feed. An empty ScopeType shows every
// entry; an empty Types list shows every kind.
type FeedFilter struct {
	ScopeType models.ScopeType
	Types     []models.ActivityType
}

// FeedEntry is one row of the activity feed.
type FeedEntry struct {
	Activity   models.Activity
	TypeLabel  string
	ScopeLabel string
	Relative   string
	Unread     bool
}

// Feed is the activity page.
type Feed struct {
	Entries []FeedEntry

	// AvailableTypes lists the kinds present after the scope filter, in
	// display order.
	AvailableTypes []models.ActivityType

	// UnreadCount counts entries newer than the last visit after the scope
	// filter, ignoring the type filter.
	UnreadCount int

	Hero string
}

// ActivityFeed builds the activity page from the snapshot.
func ActivityFeed(st models.State, filter FeedFilter, lastSeen, now time.Time) Feed {
	scoped := make([]models.Activity, 0, len(st.Activity))
	for _, a := range SortActivity(st.Activity) {
		if filter.ScopeType == "" || a.Scope.Type == filter.ScopeType {
			scoped = append(scoped, a)
		}
	}

	present := make(map[models.ActivityType]bool)
	for _, a := range scoped {
		present[a.Type] = true
	}

	feed := Feed{UnreadCount: UnreadCount(scoped, lastSeen)}
	for _, t := range models.ActivityTypes() {
		if present[t] {
			feed.AvailableTypes = append(feed.AvailableTypes, t)
		}
	}

	for _, a := range scoped {
		if len(filter.Types) > 0 && !slices.Contains(filter.Types, a.Type) {
			continue
		}
		feed.Entries = append(feed.Entries, FeedEntry{
			Activity:   a,
			TypeLabel:  a.Type.Label(),
			ScopeLabel: scopeLabel(st, a.Scope),
			Relative:   FormatRelative(a.CreatedAt, now),
			Unread:     a.CreatedAt.After(lastSeen),
		})
	}

	feed.Hero = fmt.Sprintf("Tracking %d events across %d circles.", len(st.Activity), len(st.Circles))
	if feed.UnreadCount > 0 {
		feed.Hero += fmt.Sprintf(" %s since your last visit.", countNoun(feed.UnreadCount, "new event"))
	} else {
		feed.Hero += " You're all caught up."
	}
	return feed
}

// scopeLabel names the ledger of an entry. Orphaned references fall back to
// a generic label.
func scopeLabel(st models.State, s models.Scope) string {
	switch {
	case s.Type == models.ScopeCircle && s.ID != "":
		if c, ok := st.FindCircle(s.ID); ok {
			return c.Name
		}
		return "Circle"
	case s.Type == models.ScopeFriend && s.ID != "":
		if f, ok := st.FindFriend(s.ID); ok {
			return f.Email
		}
		return "Friend"
	default:
		return "Global"
	}
}
