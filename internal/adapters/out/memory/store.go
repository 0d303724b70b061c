package memory

import (
	"sync"

	"porter/internal/adapters/out/memory/accountrepo"
	"porter/internal/adapters/out/memory/driverrepo"
	"porter/internal/adapters/out/memory/notificationrepo"
	"porter/internal/adapters/out/memory/orderrepo"
	"porter/internal/adapters/out/memory/sessionrepo"
	"porter/internal/adapters/out/memory/table"
	"porter/internal/adapters/out/memory/triprepo"
)

// Store is the state of one driver core: the order ledger, driver and account
// records, the session slot, the trip tracker and the notification queue.
//
// A Store is an explicit instance. The composition root builds one per process
// and tests build as many as they need; nothing is shared between instances.
// All access goes through units of work, which hold the store's single mutex
// from Begin until Commit or Rollback.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	orders        *table.Table[orderrepo.OrderDTO]
	drivers       *table.Table[driverrepo.DriverDTO]
	accounts      *table.Table[accountrepo.AccountDTO]
	session       *table.Slot[sessionrepo.SessionDTO]
	activeTrip    *table.Slot[triprepo.TripDTO]
	tripHistory   *table.Table[triprepo.TripDTO]
	notifications *table.Table[notificationrepo.NotificationDTO]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		state: &state{
			orders:        table.New[orderrepo.OrderDTO](),
			drivers:       table.New[driverrepo.DriverDTO](),
			accounts:      table.New[accountrepo.AccountDTO](),
			session:       table.NewSlot[sessionrepo.SessionDTO](),
			activeTrip:    table.NewSlot[triprepo.TripDTO](),
			tripHistory:   table.New[triprepo.TripDTO](),
			notifications: table.New[notificationrepo.NotificationDTO](),
		},
	}
}

func (s *state) clone() *state {
	return &state{
		orders:        s.orders.Clone(),
		drivers:       s.drivers.Clone(),
		accounts:      s.accounts.Clone(),
		session:       s.session.Clone(),
		activeTrip:    s.activeTrip.Clone(),
		tripHistory:   s.tripHistory.Clone(),
		notifications: s.notifications.Clone(),
	}
}
