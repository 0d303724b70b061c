package notification

import (
	"fmt"
	"strings"

	"porter/internal/pkg/errs"
)

// Kind is the severity a notification is shown with.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	Unknown Kind = iota
	Info
	Success
	Warning
	Error
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown: "unknown",
		Info:    "info",
		Success: "success",
		Warning: "warning",
		Error:   "error",
	}
}

// ParseKind converts "info", "success", "warning" or "error" into a Kind.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for kind, str := range getKindStrings() {
		if kind != Unknown && str == normalized {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid kind", s))
}

func (k Kind) Validate() error {
	if k <= Unknown || k > Error {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}
