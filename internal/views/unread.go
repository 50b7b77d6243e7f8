package views

import (
	"time"

	"github.com/mmynk/splitbeam/internal/models"
)

// UnreadCount counts entries created strictly after lastSeen.
func UnreadCount(activity []models.Activity, lastSeen time.Time) int {
	n := 0
	for _, a := range activity {
		if a.CreatedAt.After(lastSeen) {
			n++
		}
	}
	return n
}

// HasUnseen reports whether the newest entry is newer than lastSeen.
func HasUnseen(activity []models.Activity, lastSeen time.Time) bool {
	return UnreadCount(activity, lastSeen) > 0
}
