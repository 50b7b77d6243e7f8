package models

import "time"

// SplitMethod is the allocation rule for an expense.
type SplitMethod string

const (
	SplitEqual   SplitMethod = "equal"
	SplitShares  SplitMethod = "shares"
	SplitPercent SplitMethod = "percent"
	SplitExact   SplitMethod = "exact"
)

// Valid reports whether m is a known split method.
func (m SplitMethod) Valid() bool {
	switch m {
	case SplitEqual, SplitShares, SplitPercent, SplitExact:
		return true
	}
	return false
}

// Payer is one contributor to an expense.
type Payer struct {
	// UserID is the user or friend who paid.
	UserID string `json:"user_id"`

	// Amount is how much this payer covered. Nil when the payer covered an
	// unspecified part (typically the whole amount for a single payer).
	Amount *float64 `json:"amount,omitempty"`
}

// PaidAmount returns the payer's amount, or 0 when it is not recorded.
func (p Payer) PaidAmount() float64 {
	if p.Amount == nil {
		return 0
	}
	return *p.Amount
}

// Split describes how an expense is divided.
type Split struct {
	// Method is the allocation rule.
	Method SplitMethod `json:"method"`

	// Shares maps a participant ID to its weight, percentage or exact amount,
	// depending on Method. Empty for equal splits.
	Shares map[string]float64 `json:"shares,omitempty"`
}

// Conversion records a display conversion of an expense into another currency.
// The rate is informational text; no conversion is computed.
type Conversion struct {
	TargetCurrency  string  `json:"target_currency"`
	RateText        string  `json:"rate_text"`
	AmountConverted float64 `json:"amount_converted"`
}

// Attachment is a receipt or document linked to an expense.
type Attachment struct {
	ID        string `json:"id"`
	ExpenseID string `json:"expense_id"`
	URL       string `json:"url"`
	MIME      string `json:"mime"`
}

// Expense represents a cost logged against a circle or friend ledger.
//
// The sum of Payers[].Amount is expected to match AmountBase but this is
// not enforced.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id"`

	// Scope is the ledger the expense belongs to (circle or friend).
	Scope Scope `json:"scope"`

	// Title is the human-readable name (e.g. "Surfboard rentals").
	Title string `json:"title"`

	// AmountBase is the amount in CurrencyBase.
	AmountBase float64 `json:"amount_base"`

	// CurrencyBase is the ISO 4217 code of AmountBase.
	CurrencyBase string `json:"currency_base"`

	// Payers lists who paid.
	Payers []Payer `json:"payers"`

	// Split describes how the amount is divided.
	Split Split `json:"split"`

	// Conversion is an optional display conversion.
	Conversion *Conversion `json:"conversion,omitempty"`

	Notes       string       `json:"notes,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`

	// CreatedBy is the user who logged the expense.
	CreatedBy string `json:"created_by"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// DeletedAt is reserved for soft deletion and never set by Delete.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// HasPayer reports whether userID is one of the expense's payers.
func (e Expense) HasPayer(userID string) bool {
	for _, p := range e.Payers {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// PaidBy returns the amount recorded for the first payer entry of userID.
func (e Expense) PaidBy(userID string) float64 {
	for _, p := range e.Payers {
		if p.UserID == userID {
			return p.PaidAmount()
		}
	}
	return 0
}

// ExpenseInput is an expense without ID and timestamps. It is used both to
// create expenses and as the template of a recurring rule.
type ExpenseInput struct {
	Scope        Scope        `json:"scope"`
	Title        string       `json:"title"`
	AmountBase   float64      `json:"amount_base"`
	CurrencyBase string       `json:"currency_base"`
	Payers       []Payer      `json:"payers"`
	Split        Split        `json:"split"`
	Conversion   *Conversion  `json:"conversion,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	CreatedBy    string       `json:"created_by"`
}

// ExpensePatch lists the expense fields to change. Nil fields (and nil
// slices) are left as is.
type ExpensePatch struct {
	Scope        *Scope       `json:"scope,omitempty"`
	Title        *string      `json:"title,omitempty"`
	AmountBase   *float64     `json:"amount_base,omitempty"`
	CurrencyBase *string      `json:"currency_base,omitempty"`
	Payers       []Payer      `json:"payers,omitempty"`
	Split        *Split       `json:"split,omitempty"`
	Conversion   *Conversion  `json:"conversion,omitempty"`
	Notes        *string      `json:"notes,omitempty"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	CreatedBy    *string      `json:"created_by,omitempty"`
	DeletedAt    *time.Time   `json:"deleted_at,omitempty"`
}

// Apply returns e with the patch merged in. e is not modified.
func (p ExpensePatch) Apply(e Expense) Expense {
	e = cloneExpense(e)
	if p.Scope != nil {
		e.Scope = *p.Scope
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.AmountBase != nil {
		e.AmountBase = *p.AmountBase
	}
	if p.CurrencyBase != nil {
		e.CurrencyBase = *p.CurrencyBase
	}
	if p.Payers != nil {
		e.Payers = clonePayers(p.Payers)
	}
	if p.Split != nil {
		e.Split = cloneSplit(*p.Split)
	}
	if p.Conversion != nil {
		c := *p.Conversion
		e.Conversion = &c
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Attachments != nil {
		e.Attachments = append([]Attachment(nil), p.Attachments...)
	}
	if p.CreatedBy != nil {
		e.CreatedBy = *p.CreatedBy
	}
	if p.DeletedAt != nil {
		e.DeletedAt = cloneTime(p.DeletedAt)
	}
	return e
}
