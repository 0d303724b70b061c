package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a geographic point with a human-readable address.
// It describes where a driver currently is, the pickup and delivery points of an
// order, and the start and end points of a trip.
//
// Location is an immutable value object. The zero value is invalid and fails Validate.
//
// Example:
//
//	loc, err := kernel.NewLocation(40.7589, -73.9851, "Times Square, New York, NY")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Times Square, New York, NY (40.758900, -73.985100)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	address   string
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location from coordinates in degrees and a display address.
//
// Parameters:
//   - latitude: must be within [LatitudeMin..LatitudeMax]
//   - longitude: must be within [LongitudeMin..LongitudeMax]
//   - address: display text, must not be blank
//
// Returns:
//   - Location: a valid location
//   - error: every failed rule joined with errors.Join
func NewLocation(latitude float64, longitude float64, address string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setLatitude(latitude),
		loc.setLongitude(longitude),
		loc.setAddress(address),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for a zero-value Location.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// Address returns the display address.
func (l Location) Address() string {
	return l.address
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("%s (%.6f, %.6f)", l.address, l.latitude, l.longitude)
}

// IsEqual reports whether two locations have the same coordinates and address.
// Both locations must be valid.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance returns the great-circle distance in kilometres between two locations
// using the haversine formula. The result is symmetric and never negative.
//
// Example:
//
//	origin, _ := kernel.NewLocation(40.7580, -73.9855, "Times Square")
//	target, _ := kernel.NewLocation(40.7484, -73.9857, "Empire State Building")
//
//	km, err := origin.Distance(target)
//	// km ≈ 1.07
func (l Location) Distance(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(l.latitude)
	lat2 := toRadians(other.latitude)
	dLat := lat2 - lat1
	dLng := toRadians(other.longitude - l.longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h))), nil
}

// setLatitude, setLongitude and setAddress use pointer receivers so the
// constructor can validate in place; every other method uses a value receiver.
func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}

func (l *Location) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	l.address = address
	return nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
