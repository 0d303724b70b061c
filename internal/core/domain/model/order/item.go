package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when a zero-value Item is used.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem constructor")

// Item is a single line of an order: what the customer ordered, how many and
// at which unit price, plus an optional note for the pickup counter.
// Item is an immutable value object.
type Item struct { //nolint:recvcheck //using for validation
	name     string
	quantity int
	price    float64
	notes    string
	guard    guard.ConstructorGuard
}

// NewItem creates a line item.
//
// Parameters:
//   - name: product name, must not be blank
//   - quantity: number of units, at least 1
//   - price: unit price, not negative
//
// Example:
//
//	burger, err := order.NewItem("Burger Combo", 2, 12.99)
func NewItem(name string, quantity int, price float64) (Item, error) {
	return NewItemWithNotes(name, quantity, price, "")
}

// NewItemWithNotes creates a line item carrying a free-text note such as
// "no onions". Blank notes are stored as empty.
func NewItemWithNotes(name string, quantity int, price float64, notes string) (Item, error) {
	item := Item{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate returns ErrItemIsNotConstructed for a zero-value Item.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Price() float64 {
	return i.price
}

// Notes returns the item note, empty when there is none.
func (i Item) Notes() string {
	return i.notes
}

// Subtotal is quantity multiplied by unit price.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.price
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is negative or not a number", price))
	}
	i.price = price
	return nil
}
