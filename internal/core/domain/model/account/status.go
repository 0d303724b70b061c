package account

import (
	"fmt"
	"strings"

	"porter/internal/pkg/errs"
)

// Status is the approval state of an account.
//
//	Pending ──> Approved ──> Suspended
//	   │                        ^
//	   └────────────────────────┘
//
// Only Approved accounts may start a session.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Pending is the status of every freshly registered account.
	Pending
	// Approved accounts may log in.
	Approved
	// Suspended accounts are locked out.
	Suspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Approved:  "approved",
		Suspended: "suspended",
	}
}

// ParseStatus converts "pending", "approved" or "suspended" into a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"account status is invalid",
		fmt.Errorf("%q is not a known status", s),
	)
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("account status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve moves a pending account to Approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewIllegalTransitionError("account", s, Approved)
	}
	return Approved, nil
}

// Suspend locks a pending or approved account.
func (s Status) Suspend() (Status, error) {
	if s != Pending && s != Approved {
		return Unknown, errs.NewIllegalTransitionError("account", s, Suspended)
	}
	return Suspended, nil
}
