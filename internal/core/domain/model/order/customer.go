package order

import (
	"errors"
	"strings"

	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a zero-value Customer is used.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError("customer must be created via NewCustomer constructor")

// Customer is the contact the driver calls about an order.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewCustomer creates a customer contact. Both name and phone are required.
func NewCustomer(name string, phone string) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setName(name), c.setPhone(phone)); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Phone() string {
	return c.phone
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}
