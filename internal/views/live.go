package views

import (
	"sync"
	"time"

	"github.com/mmynk/splitbeam/internal/models"
	"github.com/mmynk/splitbeam/internal/state"
)

// Dashboard is the set of views recomputed on every committed snapshot.
type Dashboard struct {
	Circles     []CircleCard
	CirclesHero string
	Friends     []FriendBalance
	FriendsHero string
	Activity    []models.Activity
}

// BuildDashboard computes the dashboard of st.
func BuildDashboard(st models.State, now time.Time) Dashboard {
	return Dashboard{
		Circles:     CircleCards(st, now),
		CirclesHero: CirclesHero(st),
		Friends:     FriendBalances(st),
		FriendsHero: FriendsHero(st),
		Activity:    SortActivity(st.Activity),
	}
}

// Live keeps a Dashboard in step with a state.Store.
type Live struct {
	clock func() time.Time

	mu        sync.RWMutex
	dashboard Dashboard
	version   int

	unsubscribe func()
}

// NewLive computes the dashboard of the store's current snapshot and
// recomputes it after every committed update until Close.
func NewLive(store *state.Store, clock func() time.Time) *Live {
	l := &Live{clock: clock}
	l.unsubscribe = store.Subscribe(l.refresh)
	l.refresh(store.Snapshot())
	return l
}

func (l *Live) refresh(st models.State) {
	d := BuildDashboard(st, l.clock())

	l.mu.Lock()
	defer l.mu.Unlock()
	l.dashboard = d
	l.version++
}

// Dashboard returns the latest dashboard and how many snapshots have been
// rendered so far.
func (l *Live) Dashboard() (Dashboard, int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dashboard, l.version
}

// Close stops following the store.
func (l *Live) Close() {
	l.unsubscribe()
}
