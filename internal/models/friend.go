package models

import "time"

// FriendStatus is the state of a friend relationship.
type FriendStatus string

const (
	FriendActive  FriendStatus = "active"
	FriendInvited FriendStatus = "invited"
)

// Valid reports whether s is a known status.
func (s FriendStatus) Valid() bool {
	return s == FriendActive || s == FriendInvited
}

// Friend represents a bidirectional relationship with the current user.
// Friends are not scoped to any circle.
type Friend struct {
	// ID is the unique identifier for the friend (e.g. "friend_1").
	ID string `json:"id"`

	// Email is the friend's email address, used for search.
	Email string `json:"email"`

	// Status is "invited" until the friend accepts.
	Status FriendStatus `json:"status"`

	// InvitedAt is when the invitation was sent.
	InvitedAt *time.Time `json:"invited_at,omitempty"`
}
