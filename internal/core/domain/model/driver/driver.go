package driver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when a driver has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when a driver has no email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when a driver has no phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is the operational record of the person delivering orders.
// It is an aggregate root that shares its identity with the account it was
// registered from.
//
// Key responsibilities:
//   - Holding contact details and the vehicle shown to customers
//   - Tracking whether the driver is online, offline or busy
//   - Accumulating lifetime deliveries and earnings
//   - Remembering the last known position
//
// Business rules:
//   - A new driver starts Offline with a zero rating and zero totals
//   - Totals never decrease; they grow only through CreditDelivery
//   - Rating stays within [RatingMin..RatingMax]
//
// Example usage:
//
//	vehicle, _ := kernel.NewVehicle("Car", "ABC-123")
//	d, err := driver.NewDriver(accountID, "John Smith", "john.smith@porter.com", "+1 (555) 123-4567", vehicle)
//	if err != nil {
//	    // Handle construction error
//	}
//	d.Toggle() // Online
type Driver struct {
	id          kernel.UUID
	name        string
	email       string
	phone       string
	vehicle     kernel.Vehicle
	performance Performance
	status      Status
	location    *kernel.Location
	guard       guard.ConstructorGuard
}

// NewDriver creates an Offline driver with no deliveries.
//
// Parameters:
//   - id: identity shared with the account (must be valid UUID)
//   - name, email, phone: contact details, all required
//   - vehicle: a constructed kernel.Vehicle
//
// Returns:
//   - *Driver: the created driver
//   - error: every failed rule joined with errors.Join
func NewDriver(id kernel.UUID, name string, email string, phone string, vehicle kernel.Vehicle) (*Driver, error) {
	d := &Driver{
		status: Offline,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setPhone(phone),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from stored state.
// location may be nil when the driver never reported a position.
func RestoreDriver(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	vehicle kernel.Vehicle,
	performance Performance,
	status Status,
	location *kernel.Location,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setPhone(phone),
		d.setVehicle(vehicle),
		performance.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		d.location = &loc
	}

	d.performance = performance
	d.status = status
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's identity.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the display name.
func (d *Driver) Name() string {
	return d.name
}

// Email returns the contact email.
func (d *Driver) Email() string {
	return d.email
}

// Phone returns the contact phone.
func (d *Driver) Phone() string {
	return d.phone
}

// Vehicle returns the vehicle descriptor.
func (d *Driver) Vehicle() kernel.Vehicle {
	return d.vehicle
}

// Performance returns rating and lifetime totals.
func (d *Driver) Performance() Performance {
	return d.performance
}

// Status returns the current working status.
func (d *Driver) Status() Status {
	return d.status
}

// Location returns the last known position and whether one was reported.
func (d *Driver) Location() (kernel.Location, bool) {
	if d.location == nil {
		return kernel.Location{}, false
	}
	return *d.location, true
}

// SetStatus puts the driver into the given status.
//
// Returns:
//   - nil on success, including when the driver already has that status
//   - error if the status is Unknown or out of range
func (d *Driver) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// Toggle flips the online/offline switch and returns the new status.
func (d *Driver) Toggle() Status {
	d.status = d.status.Toggle()
	return d.status
}

// CreditDelivery adds one delivery and its commission to the lifetime totals.
// It is the only way the totals change.
//
// Parameters:
//   - commission: the driver's share of the delivered order, not negative
//
// Example:
//
//	// order paid 38.95
//	err := d.CreditDelivery(o.Commission()) // TotalEarnings += 5.8425, TotalDeliveries += 1
func (d *Driver) CreditDelivery(commission float64) error {
	if math.IsNaN(commission) || math.IsInf(commission, 0) || commission < 0 {
		return errs.NewValueIsInvalidErrorWithCause("commission is invalid", fmt.Errorf("%v is negative or not a number", commission))
	}

	d.performance.TotalDeliveries++
	d.performance.TotalEarnings += commission
	return nil
}

// Relocate records a new position and returns the previous one, if any.
func (d *Driver) Relocate(location kernel.Location) (kernel.Location, bool, error) {
	if err := location.Validate(); err != nil {
		return kernel.Location{}, false, err
	}

	previous, had := d.Location()
	d.location = &location
	return previous, had, nil
}

// UpdateContact replaces the name, phone and vehicle.
// The email is the login key and never changes here.
func (d *Driver) UpdateContact(name string, phone string, vehicle kernel.Vehicle) error {
	updated := *d
	if err := errors.Join(
		updated.setName(name),
		updated.setPhone(phone),
		updated.setVehicle(vehicle),
	); err != nil {
		return err
	}

	*d = updated
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	d.email = email
	return nil
}

func (d *Driver) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicle(vehicle kernel.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	d.vehicle = vehicle
	return nil
}
