package account

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrInvalidCredential is returned when the password does not match the stored hash.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrNotApproved is returned when a pending or suspended account tries to log in.
	ErrNotApproved = errors.New("account is not approved")

	// ErrUnauthenticated is returned by operations that need an active session.
	ErrUnauthenticated = errors.New("no active session")
)

// Account is the identity record a driver registers with and logs in as.
// The matching driver.Driver shares its identity.
//
// Invariants:
//   - Email is unique across accounts, stored trimmed and lower-cased
//   - Only the bcrypt hash of the password is kept
//   - A driver license number is required at signup and never edited afterwards
//   - A new account is Pending until approved
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	vehicle      kernel.Vehicle
	license      string
	passwordHash string
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewAccount registers a Pending account.
//
// Parameters:
//   - id: identity shared with the driver record
//   - name, phone: contact details, required
//   - email: login key, must be a valid address
//   - vehicle: the vehicle declared at signup
//   - licenseNumber: the driver license number, required
//   - passwordHash: output of the password hasher, required
//   - createdAt: registration time
//
// Returns:
//   - *Account: the Pending account
//   - error: every failed rule joined with errors.Join
func NewAccount(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	vehicle kernel.Vehicle,
	licenseNumber string,
	passwordHash string,
	createdAt time.Time,
) (*Account, error) {
	return RestoreAccount(id, name, email, phone, vehicle, licenseNumber, passwordHash, Pending, createdAt)
}

// RestoreAccount rebuilds an account from stored state or a seed fixture.
func RestoreAccount(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	vehicle kernel.Vehicle,
	licenseNumber string,
	passwordHash string,
	status Status,
	createdAt time.Time,
) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPhone(phone),
		a.setVehicle(vehicle),
		a.setLicenseNumber(licenseNumber),
		a.setPasswordHash(passwordHash),
		a.setStatus(status),
		a.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// NormalizeEmail returns the form emails are stored and compared in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) Phone() string {
	return a.phone
}

func (a *Account) Vehicle() kernel.Vehicle {
	return a.vehicle
}

// LicenseNumber returns the driver license number given at signup.
func (a *Account) LicenseNumber() string {
	return a.license
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Status() Status {
	return a.status
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// CanAuthenticate returns ErrNotApproved unless the account is Approved.
func (a *Account) CanAuthenticate() error {
	if a.status != Approved {
		return fmt.Errorf("%w: account is %s", ErrNotApproved, a.status)
	}
	return nil
}

// Approve moves a Pending account to Approved.
func (a *Account) Approve() error {
	next, err := a.status.Approve()
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

// Suspend locks the account.
func (a *Account) Suspend() error {
	next, err := a.status.Suspend()
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

// Apply merges a profile update into the account.
// Fields left nil keep their value. The update is all-or-nothing: if any merged
// field is invalid the account is unchanged.
//
// Example:
//
//	phone := "+1 (555) 000-0000"
//	err := acc.Apply(account.ProfileUpdate{Phone: &phone})
func (a *Account) Apply(update ProfileUpdate) error {
	name, phone, vehicleType, vehicleNumber := update.merge(
		a.name, a.phone, a.vehicle.Kind().String(), a.vehicle.Number(),
	)

	vehicle, vehicleErr := kernel.NewVehicle(vehicleType, vehicleNumber)

	updated := *a
	if err := errors.Join(
		updated.setName(name),
		updated.setPhone(phone),
		vehicleErr,
	); err != nil {
		return err
	}
	updated.vehicle = vehicle

	*a = updated
	return nil
}

// Clone returns an independent copy of the account.
func (a *Account) Clone() *Account {
	clone := *a
	return &clone
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if parsed.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a bare address", email))
	}
	a.email = email
	return nil
}

func (a *Account) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Account) setVehicle(vehicle kernel.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	a.vehicle = vehicle
	return nil
}

func (a *Account) setLicenseNumber(license string) error {
	license = strings.ToUpper(strings.TrimSpace(license))
	if license == "" {
		return errs.NewValueIsRequiredError("license number")
	}
	a.license = license
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *Account) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	a.createdAt = createdAt
	return nil
}
