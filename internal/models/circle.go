package models

import "time"

// Circle represents a named shared-expense group.
type Circle struct {
	// ID is the unique identifier for the circle (e.g. "circle_<uuid>").
	ID string `json:"id"`

	// Name is the display name of the circle (e.g. "Lisbon Landing Crew").
	Name string `json:"name"`

	// BaseCurrency is the reporting currency used when aggregating balances.
	BaseCurrency string `json:"base_currency"`

	// SimplifyOn toggles debt simplification. Only the flag is stored;
	// simplification itself is not computed.
	SimplifyOn bool `json:"simplify_on"`

	// AdminUserID is the user who created the circle.
	AdminUserID string `json:"admin_user_id"`

	// CreatedAt is when the circle was created.
	CreatedAt time.Time `json:"created_at"`

	// DeletedAt is reserved for soft deletion. Delete operations remove the
	// circle outright and never set it.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CircleInput is the payload for creating a circle.
type CircleInput struct {
	Name         string `json:"name"`
	BaseCurrency string `json:"base_currency"`
	SimplifyOn   bool   `json:"simplify_on"`
}

// CirclePatch lists the circle settings to change. Nil fields are left as is.
type CirclePatch struct {
	Name         *string `json:"name,omitempty"`
	BaseCurrency *string `json:"base_currency,omitempty"`
	SimplifyOn   *bool   `json:"simplify_on,omitempty"`
}

// Apply returns c with the patch merged in.
func (p CirclePatch) Apply(c Circle) Circle {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.BaseCurrency != nil {
		c.BaseCurrency = *p.BaseCurrency
	}
	if p.SimplifyOn != nil {
		c.SimplifyOn = *p.SimplifyOn
	}
	return c
}
