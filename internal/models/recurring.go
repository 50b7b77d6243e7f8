package models

import "time"

// Cadence is how often a recurring rule fires.
type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	// CadenceCustom uses the rule's CustomCron expression.
	CadenceCustom Cadence = "custom"
)

// Valid reports whether c is a known cadence.
func (c Cadence) Valid() bool {
	switch c {
	case CadenceWeekly, CadenceMonthly, CadenceCustom:
		return true
	}
	return false
}

// RuleStatus is the activation state of a recurring rule.
// Transitions happen only through explicit pause/resume calls.
type RuleStatus string

const (
	RuleActive RuleStatus = "active"
	RulePaused RuleStatus = "paused"
)

// Valid reports whether s is a known status.
func (s RuleStatus) Valid() bool {
	return s == RuleActive || s == RulePaused
}

// RecurringRule is a template for expenses that repeat on a cadence.
// Only the rule record and its bookkeeping are modelled; nothing fires it.
type RecurringRule struct {
	// ID is the unique identifier for the rule.
	ID string `json:"id"`

	// Scope is the ledger generated expenses will belong to.
	Scope Scope `json:"scope"`

	// TemplateExpense is the expense payload each run would create.
	TemplateExpense ExpenseInput `json:"template_expense"`

	// Cadence is the repeat interval.
	Cadence Cadence `json:"cadence"`

	// CustomCron is a 5-field cron expression, set when Cadence is custom.
	CustomCron string `json:"custom_cron,omitempty"`

	// NextRun is when the rule is next due.
	NextRun time.Time `json:"next_run"`

	// Status is active or paused.
	Status RuleStatus `json:"status"`

	// CreatedBy is the user who created the rule.
	CreatedBy string `json:"created_by"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// RecurringInput is the payload for creating a recurring rule.
type RecurringInput struct {
	Scope           Scope        `json:"scope"`
	TemplateExpense ExpenseInput `json:"template_expense"`
	Cadence         Cadence      `json:"cadence"`
	CustomCron      string       `json:"custom_cron,omitempty"`
	NextRun         time.Time    `json:"next_run"`
	Status          RuleStatus   `json:"status"`
	CreatedBy       string       `json:"created_by"`
}

// RecurringPatch lists the rule fields to change. Scope and CreatedBy are
// fixed at creation. Nil fields are left as is.
type RecurringPatch struct {
	TemplateExpense *ExpenseInput `json:"template_expense,omitempty"`
	Cadence         *Cadence      `json:"cadence,omitempty"`
	CustomCron      *string       `json:"custom_cron,omitempty"`
	NextRun         *time.Time    `json:"next_run,omitempty"`
	Status          *RuleStatus   `json:"status,omitempty"`
}

// Apply returns r with the patch merged in. r is not modified.
func (p RecurringPatch) Apply(r RecurringRule) RecurringRule {
	r = cloneRecurring(r)
	if p.TemplateExpense != nil {
		r.TemplateExpense = cloneExpenseInput(*p.TemplateExpense)
	}
	if p.Cadence != nil {
		r.Cadence = *p.Cadence
	}
	if p.CustomCron != nil {
		r.CustomCron = *p.CustomCron
	}
	if p.NextRun != nil {
		r.NextRun = *p.NextRun
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	return r
}
