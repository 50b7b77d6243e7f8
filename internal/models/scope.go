package models

// ScopeType discriminates the ledger an entity belongs to.
type ScopeType string

const (
	ScopeCircle ScopeType = "circle"
	ScopeFriend ScopeType = "friend"
	// ScopeGlobal is only meaningful for Activity entries.
	ScopeGlobal ScopeType = "global"
)

// Valid reports whether t is one of the known scope types.
func (t ScopeType) Valid() bool {
	switch t {
	case ScopeCircle, ScopeFriend, ScopeGlobal:
		return true
	}
	return false
}

// Scope identifies a circle, a friend relationship, or (for activity only)
// the global feed.
type Scope struct {
	// Type is the kind of ledger.
	Type ScopeType `json:"type"`

	// ID is the circle or friend ID. Empty for global scope.
	ID string `json:"id,omitempty"`
}

// CircleScope returns the scope of the circle with the given ID.
func CircleScope(id string) Scope {
	return Scope{Type: ScopeCircle, ID: id}
}

// FriendScope returns the scope of the friend ledger with the given ID.
func FriendScope(id string) Scope {
	return Scope{Type: ScopeFriend, ID: id}
}

// GlobalScope returns the global activity scope.
func GlobalScope() Scope {
	return Scope{Type: ScopeGlobal}
}

// Matches reports whether both the type and the ID are equal.
func (s Scope) Matches(other Scope) bool {
	return s.Type == other.Type && s.ID == other.ID
}

// IsLedger reports whether s can own expenses, rules and settlements.
func (s Scope) IsLedger() bool {
	return (s.Type == ScopeCircle || s.Type == ScopeFriend) && s.ID != ""
}
