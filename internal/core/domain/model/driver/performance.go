package driver

import (
	"errors"
	"fmt"
	"math"

	"porter/internal/pkg/errs"
)

const (
	// RatingMin is the lowest customer rating.
	RatingMin = 0.0
	// RatingMax is the highest customer rating.
	RatingMax = 5.0
)

// Performance is the driver's running record: customer rating and lifetime totals.
// Totals only ever grow, and only through Driver.CreditDelivery.
type Performance struct {
	Rating          float64
	TotalDeliveries int
	TotalEarnings   float64
}

// Validate checks the rating range and that totals are not negative.
func (p Performance) Validate() error {
	var ratingErr, deliveriesErr, earningsErr error

	if math.IsNaN(p.Rating) || p.Rating < RatingMin || p.Rating > RatingMax {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", p.Rating, RatingMin, RatingMax)
	}
	if p.TotalDeliveries < 0 {
		deliveriesErr = errs.NewValueIsInvalidErrorWithCause(
			"total deliveries is invalid", fmt.Errorf("%d is negative", p.TotalDeliveries))
	}
	if math.IsNaN(p.TotalEarnings) || p.TotalEarnings < 0 {
		earningsErr = errs.NewValueIsInvalidErrorWithCause(
			"total earnings is invalid", fmt.Errorf("%v is negative or not a number", p.TotalEarnings))
	}

	return errors.Join(ratingErr, deliveriesErr, earningsErr)
}
