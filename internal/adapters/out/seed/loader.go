package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"
	"porter/internal/core/ports"
)

// Loader writes a fixture into the store in a single unit of work.
type Loader struct {
	uowFactory ports.UnitOfWorkFactory
	hasher     ports.PasswordHasher
	clock      ports.Clock
	logger     *slog.Logger
}

func NewLoader(
	uowFactory ports.UnitOfWorkFactory,
	hasher ports.PasswordHasher,
	clock ports.Clock,
	logger *slog.Logger,
) *Loader {
	return &Loader{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
		logger:     logger.With("component", "seed_loader"),
	}
}

// Apply stores the driver account, its driver record and the orders.
// Active and delivered orders are assigned to the seeded driver.
// Nothing is stored if any entry is invalid.
func (l *Loader) Apply(ctx context.Context, fixture Fixture) error {
	now := l.clock.Now()

	acc, err := l.account(fixture.Driver, now)
	if err != nil {
		return fmt.Errorf("seed account: %w", err)
	}

	d, err := l.driver(acc.ID(), fixture.Driver)
	if err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}

	orders := make([]*order.Order, 0, len(fixture.Orders))
	for i, of := range fixture.Orders {
		o, err := l.order(of, d.ID(), now)
		if err != nil {
			return fmt.Errorf("seed order #%d: %w", i+1, err)
		}
		orders = append(orders, o)
	}

	uow := l.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return err
	}

	for _, o := range orders {
		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	l.logger.InfoContext(ctx, "Seed data loaded",
		"driver_email", acc.Email(),
		"orders", len(orders),
	)
	return nil
}

func (l *Loader) account(f DriverFixture, now time.Time) (*account.Account, error) {
	status, err := account.ParseStatus(f.AccountStatus)
	if err != nil {
		return nil, err
	}

	vehicle, err := kernel.NewVehicle(f.Vehicle.Type, f.Vehicle.Number)
	if err != nil {
		return nil, err
	}

	hash, err := l.hasher.Hash(f.Password)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(kernel.NewUUID(), f.Name, f.Email, f.Phone, vehicle, f.LicenseNumber, hash, status, now)
}

func (l *Loader) driver(id kernel.UUID, f DriverFixture) (*driver.Driver, error) {
	status, err := driver.ParseStatus(f.Status)
	if err != nil {
		return nil, err
	}

	vehicle, err := kernel.NewVehicle(f.Vehicle.Type, f.Vehicle.Number)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if f.Location != nil {
		loc, err := f.Location.toDomain()
		if err != nil {
			return nil, err
		}
		location = &loc
	}

	performance := driver.Performance{
		Rating:          f.Rating,
		TotalDeliveries: f.TotalDeliveries,
		TotalEarnings:   f.TotalEarnings,
	}

	return driver.RestoreDriver(id, f.Name, f.Email, f.Phone, vehicle, performance, status, location)
}

func (l *Loader) order(f OrderFixture, driverID kernel.UUID, now time.Time) (*order.Order, error) {
	status, err := order.ParseStatus(f.Status)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(f.Customer.Name, f.Customer.Phone)
	if err != nil {
		return nil, err
	}

	pickup, err := f.Pickup.toDomain()
	if err != nil {
		return nil, err
	}

	dropoff, err := f.Dropoff.toDomain()
	if err != nil {
		return nil, err
	}

	route, err := order.NewRoute(pickup, dropoff, f.DistanceKm, f.EstimatedMinutes)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(f.Items))
	for _, fi := range f.Items {
		item, err := order.NewItemWithNotes(fi.Name, fi.Quantity, fi.Price, fi.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var owner *kernel.UUID
	if status.IsActive() || status == order.Delivered {
		owner = &driverID
	}

	timeline := order.Timeline{
		CreatedAt:   now.Add(-f.CreatedAgo),
		AcceptedAt:  ago(now, f.AcceptedAgo),
		PickedUpAt:  ago(now, f.PickedUpAgo),
		DeliveredAt: ago(now, f.DeliveredAgo),
		CancelledAt: ago(now, f.CancelledAgo),
	}

	return order.RestoreOrder(kernel.NewUUID(), customer, route, items, f.Payment, f.Notes, status, owner, timeline)
}

func (f LocationFixture) toDomain() (kernel.Location, error) {
	return kernel.NewLocation(f.Lat, f.Lng, f.Address)
}

func ago(now time.Time, d *time.Duration) time.Time {
	if d == nil {
		return time.Time{}
	}
	return now.Add(-*d)
}
