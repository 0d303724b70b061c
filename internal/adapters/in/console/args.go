package console

import (
	"errors"
	"strconv"
	"strings"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
)

func splitFields(args string) []string {
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseLocation reads "<lat> <lng> <address>".
func parseLocation(args string) (kernel.Location, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return kernel.Location{}, errs.NewValueIsRequiredError("location as <lat> <lng> <address>")
	}

	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return kernel.Location{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}
	lng, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return kernel.Location{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	return kernel.NewLocation(lat, lng, strings.Join(fields[2:], " "))
}

// resolveRef turns a 1-based position in listing, or a literal UUID, into an ID.
func resolveRef(ref string, listing []kernel.UUID) (kernel.UUID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("reference")
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(listing) {
			return kernel.UUID{}, errs.NewValueIsOutOfRangeErrorWithCause(
				"reference", n, 1, len(listing), errors.New("list the items first"))
		}
		return listing[n-1], nil
	}

	return kernel.UUIDFromString(ref)
}
