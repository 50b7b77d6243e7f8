package models

import "time"

// Settlement represents a payment between two parties to clear a balance.
type Settlement struct {
	// ID is the unique identifier for the settlement.
	ID string `json:"id"`

	// Scope is the circle or friend ledger being settled.
	Scope Scope `json:"scope"`

	// FromUser is the party who paid (debtor settling up).
	FromUser string `json:"from_user"`

	// ToUser is the party who received the payment.
	ToUser string `json:"to_user"`

	// Amount is the payment amount in Currency.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 code of Amount.
	Currency string `json:"currency"`

	// RateText is an optional human-readable exchange rate note.
	RateText string `json:"rate_text,omitempty"`

	// CreatedAt is when the settlement was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// SettlementInput is the payload for recording a settlement.
type SettlementInput struct {
	Scope    Scope   `json:"scope"`
	FromUser string  `json:"from_user"`
	ToUser   string  `json:"to_user"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	RateText string  `json:"rate_text,omitempty"`
}
