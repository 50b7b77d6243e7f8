// Package models defines the core domain models for SplitBeam.
//
// # Entities
//
// The snapshot (State) holds every collection the app works with:
//   - User / Profile: the signed-in person and their display preferences
//   - Friend: a direct relationship to the current user, not tied to a circle
//   - Circle: a shared-expense group with a base currency and an admin
//   - Expense: a cost logged against a circle or a friend ledger
//   - RecurringRule: a template that produces future expenses
//   - Settlement: a payment that clears part of a balance
//   - Activity: an append-only audit entry
//
// # Design Principles
//
// 1. **Scope is the only sharding key**: expenses, rules, settlements and
// activity point at their ledger through a Scope, never through a pointer
// 2. **No referential integrity**: a Scope may name a circle that no longer
// exists; callers decide how to present orphans
// 3. **JSON-compatible**: field tags match the persisted snapshot layout, so a
// snapshot written by an older build still loads
// 4. **Closed enums**: every discriminator is a named string type with a
// Valid method
package models
