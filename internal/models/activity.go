package models

import "time"

// ActivityType is the kind of an activity entry.
type ActivityType string

const (
	ActivityExpenseAdd     ActivityType = "expense_add"
	ActivityExpenseEdit    ActivityType = "expense_edit"
	ActivityExpenseDelete  ActivityType = "expense_delete"
	ActivityConversion     ActivityType = "conversion"
	ActivityRecurringAdd   ActivityType = "recurring_add"
	ActivityRecurringEdit  ActivityType = "recurring_edit"
	ActivityRecurringPause ActivityType = "recurring_pause"
	ActivityRecurringSkip  ActivityType = "recurring_skip"
	ActivityMemberJoin     ActivityType = "member_join"
	ActivityMemberLeave    ActivityType = "member_leave"
	ActivitySettlement     ActivityType = "settlement"
	ActivityCircleDelete   ActivityType = "circle_delete"
)

var activityLabels = map[ActivityType]string{
	ActivityExpenseAdd:     "Expense added",
	ActivityExpenseEdit:    "Expense updated",
	ActivityExpenseDelete:  "Expense removed",
	ActivityConversion:     "Conversion",
	ActivityRecurringAdd:   "Recurring added",
	ActivityRecurringEdit:  "Recurring updated",
	ActivityRecurringPause: "Recurring paused",
	ActivityRecurringSkip:  "Recurring skipped",
	ActivityMemberJoin:     "Member joined",
	ActivityMemberLeave:    "Member left",
	ActivitySettlement:     "Settlement",
	ActivityCircleDelete:   "Circle deleted",
}

// ActivityTypes returns every activity type in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityExpenseAdd,
		ActivityExpenseEdit,
		ActivityExpenseDelete,
		ActivityConversion,
		ActivityRecurringAdd,
		ActivityRecurringEdit,
		ActivityRecurringPause,
		ActivityRecurringSkip,
		ActivityMemberJoin,
		ActivityMemberLeave,
		ActivitySettlement,
		ActivityCircleDelete,
	}
}

// Valid reports whether t is one of the 12 known kinds.
func (t ActivityType) Valid() bool {
	_, ok := activityLabels[t]
	return ok
}

// Label returns the human-readable name of t.
func (t ActivityType) Label() string {
	if l, ok := activityLabels[t]; ok {
		return l
	}
	return string(t)
}

// Activity is an immutable audit log entry.
type Activity struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`

	// Type is the kind of event.
	Type ActivityType `json:"type"`

	// Scope is global, or the circle/friend ledger the event happened in.
	Scope Scope `json:"scope"`

	// Message is the human-readable description.
	Message string `json:"message"`

	// ActorUserID is who caused the event.
	ActorUserID string `json:"actor_user_id"`

	// CreatedAt is when the event happened.
	CreatedAt time.Time `json:"created_at"`

	// Tags are optional search labels.
	Tags []string `json:"tags,omitempty"`
}

// ActivityFilter narrows an activity listing. A nil Scope means no filter.
type ActivityFilter struct {
	Scope *Scope `json:"scope,omitempty"`
}
