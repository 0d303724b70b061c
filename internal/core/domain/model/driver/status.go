package driver

import (
	"fmt"
	"strings"

	"porter/internal/pkg/errs"
)

// Status tells whether the driver is taking orders.
// Any status can be set explicitly. The online/offline switch moves Online to
// Offline and every other status to Online.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Online means the driver sees the feed and can accept orders.
	Online
	// Offline means the driver is not working.
	Offline
	// Busy means the driver is working but temporarily unavailable.
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "unknown",
		Online:  "online",
		Offline: "offline",
		Busy:    "busy",
	}
}

// ParseStatus converts "online", "offline" or "busy" (any case) into a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"driver status is invalid",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks that the status is Online, Offline or Busy.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("driver status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Toggle returns the status reached by the online/offline switch.
func (s Status) Toggle() Status {
	if s == Online {
		return Offline
	}
	return Online
}
