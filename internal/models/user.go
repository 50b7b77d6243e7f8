package models

import "time"

// User represents the signed-in account.
//
// Exactly one User is "current" per session; it is stored on the snapshot
// rather than in the friends collection.
type User struct {
	// ID is the unique identifier for the user (e.g. "user_1").
	ID string `json:"id"`

	// Email is the user's email address.
	Email string `json:"email"`

	// Name is the optional display name. Empty means "not set".
	Name string `json:"name,omitempty"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the user's name, or fallback when it is not set.
func (u User) DisplayName(fallback string) string {
	if u.Name != "" {
		return u.Name
	}
	return fallback
}

// SocialLink is a labelled URL shown on a profile.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Profile holds per-user display preferences.
type Profile struct {
	// UserID is the user this profile belongs to.
	UserID string `json:"user_id"`

	// PreferredCurrency is the ISO 4217 code used for personal totals.
	PreferredCurrency string `json:"preferred_currency"`

	// Bio is an optional free-text blurb.
	Bio string `json:"bio,omitempty"`

	// SocialLinks are optional external links.
	SocialLinks []SocialLink `json:"social_links,omitempty"`
}
