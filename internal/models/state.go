package models

import (
	"maps"
	"time"
)

// State is the full snapshot of every collection. It is replaced wholesale
// on each update and persisted as one JSON document.
type State struct {
	CurrentUser User            `json:"currentUser"`
	Friends     []Friend        `json:"friends"`
	Circles     []Circle        `json:"circles"`
	Expenses    []Expense       `json:"expenses"`
	Recurring   []RecurringRule `json:"recurring"`
	Settlements []Settlement    `json:"settlements"`
	Activity    []Activity      `json:"activity"`
	Profiles    []Profile       `json:"profiles"`
}

// Clone returns a deep copy of s. Collections in the copy never share
// backing arrays, maps or pointers with s.
func (s State) Clone() State {
	out := State{
		CurrentUser: s.CurrentUser,
		Friends:     make([]Friend, len(s.Friends)),
		Circles:     make([]Circle, len(s.Circles)),
		Expenses:    make([]Expense, len(s.Expenses)),
		Recurring:   make([]RecurringRule, len(s.Recurring)),
		Settlements: append(make([]Settlement, 0, len(s.Settlements)), s.Settlements...),
		Activity:    make([]Activity, len(s.Activity)),
		Profiles:    make([]Profile, len(s.Profiles)),
	}
	for i, f := range s.Friends {
		f.InvitedAt = cloneTime(f.InvitedAt)
		out.Friends[i] = f
	}
	for i, c := range s.Circles {
		c.DeletedAt = cloneTime(c.DeletedAt)
		out.Circles[i] = c
	}
	for i, e := range s.Expenses {
		out.Expenses[i] = cloneExpense(e)
	}
	for i, r := range s.Recurring {
		out.Recurring[i] = cloneRecurring(r)
	}
	for i, a := range s.Activity {
		a.Tags = append([]string(nil), a.Tags...)
		out.Activity[i] = a
	}
	for i, p := range s.Profiles {
		p.SocialLinks = append([]SocialLink(nil), p.SocialLinks...)
		out.Profiles[i] = p
	}
	return out
}

// FindCircle returns the circle with the given ID.
func (s State) FindCircle(id string) (Circle, bool) {
	for _, c := range s.Circles {
		if c.ID == id {
			return c, true
		}
	}
	return Circle{}, false
}

// FindFriend returns the friend with the given ID.
func (s State) FindFriend(id string) (Friend, bool) {
	for _, f := range s.Friends {
		if f.ID == id {
			return f, true
		}
	}
	return Friend{}, false
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func clonePayers(payers []Payer) []Payer {
	if payers == nil {
		return nil
	}
	out := make([]Payer, len(payers))
	for i, p := range payers {
		if p.Amount != nil {
			amount := *p.Amount
			p.Amount = &amount
		}
		out[i] = p
	}
	return out
}

func cloneSplit(s Split) Split {
	s.Shares = maps.Clone(s.Shares)
	return s
}

func cloneExpense(e Expense) Expense {
	e.Payers = clonePayers(e.Payers)
	e.Split = cloneSplit(e.Split)
	if e.Conversion != nil {
		c := *e.Conversion
		e.Conversion = &c
	}
	if e.Attachments != nil {
		e.Attachments = append([]Attachment(nil), e.Attachments...)
	}
	e.UpdatedAt = cloneTime(e.UpdatedAt)
	e.DeletedAt = cloneTime(e.DeletedAt)
	return e
}

func cloneExpenseInput(e ExpenseInput) ExpenseInput {
	e.Payers = clonePayers(e.Payers)
	e.Split = cloneSplit(e.Split)
	if e.Conversion != nil {
		c := *e.Conversion
		e.Conversion = &c
	}
	if e.Attachments != nil {
		e.Attachments = append([]Attachment(nil), e.Attachments...)
	}
	return e
}

func cloneRecurring(r RecurringRule) RecurringRule {
	r.TemplateExpense = cloneExpenseInput(r.TemplateExpense)
	r.CreatedAt = cloneTime(r.CreatedAt)
	r.UpdatedAt = cloneTime(r.UpdatedAt)
	return r
}

// CloneExpenseInput returns a deep copy of e.
func CloneExpenseInput(e ExpenseInput) ExpenseInput {
	return cloneExpenseInput(e)
}
