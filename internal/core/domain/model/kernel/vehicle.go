package kernel

import (
	"errors"
	"fmt"
	"strings"

	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when a zero-value Vehicle is used.
var ErrVehicleIsNotConstructed = errs.NewValueIsRequiredError("vehicle must be created via NewVehicle constructor")

// Vehicle describes what a driver delivers with. It is shared by the identity
// record captured at signup and the driver record built from it.
//
// Example:
//
//	v, err := kernel.NewVehicle("Car", "abc-123")
//	fmt.Println(v) // car ABC-123
type Vehicle struct { //nolint:recvcheck //using for validation
	kind   VehicleType
	number string
	guard  guard.ConstructorGuard
}

// NewVehicle creates a Vehicle. The kind must parse as a VehicleType and the
// registration number is required; the number is upper-cased.
func NewVehicle(kind string, number string) (Vehicle, error) {
	v := Vehicle{guard: guard.NewConstructorGuard()}

	if err := errors.Join(v.setKind(kind), v.setNumber(number)); err != nil {
		return Vehicle{}, err
	}

	return v, nil
}

func (v Vehicle) Validate() error {
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// Kind returns the vehicle type.
func (v Vehicle) Kind() VehicleType {
	return v.kind
}

// Number returns the registration number.
func (v Vehicle) Number() string {
	return v.number
}

func (v Vehicle) String() string {
	return fmt.Sprintf("%s %s", v.kind, v.number)
}

func (v *Vehicle) setKind(kind string) error {
	parsed, err := ParseVehicleType(kind)
	if err != nil {
		return err
	}
	v.kind = parsed
	return nil
}

func (v *Vehicle) setNumber(number string) error {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	v.number = number
	return nil
}
