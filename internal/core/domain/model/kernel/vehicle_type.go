package kernel

import (
	"fmt"
	"strings"

	"porter/internal/pkg/errs"
)

// VehicleType is what a driver can register to deliver with.
type VehicleType int

const (
	UnknownVehicleType VehicleType = iota
	Bike
	Scooter
	Car
	Van
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		UnknownVehicleType: "unknown",
		Bike:               "bike",
		Scooter:            "scooter",
		Car:                "car",
		Van:                "van",
	}
}

// VehicleTypes lists the accepted vehicle types in display order.
func VehicleTypes() []VehicleType {
	return []VehicleType{Bike, Scooter, Car, Van}
}

// ParseVehicleType converts "bike", "scooter", "car" or "van" (any case) into a VehicleType.
func ParseVehicleType(s string) (VehicleType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return UnknownVehicleType, errs.NewValueIsRequiredError("vehicle type")
	}
	for _, t := range VehicleTypes() {
		if t.String() == normalized {
			return t, nil
		}
	}
	return UnknownVehicleType, errs.NewValueIsInvalidErrorWithCause(
		"vehicle type", fmt.Errorf("%q is not one of bike, scooter, car, van", s))
}

func (t VehicleType) Validate() error {
	if t <= UnknownVehicleType || t > Van {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%d is not a valid vehicle type", t))
	}
	return nil
}

func (t VehicleType) String() string {
	if s, ok := getVehicleTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}
