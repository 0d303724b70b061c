package notification

import (
	"errors"
	"strings"
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when using an improperly initialized Notification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is an advisory message in the driver's feed.
// Everything but the read flag is fixed at creation, and the flag only goes
// from unread to read.
type Notification struct {
	id        kernel.UUID
	title     string
	message   string
	kind      Kind
	timestamp time.Time
	read      bool

	isConstructed bool
}

// NewNotification creates an unread notification.
//
// Parameters:
//   - id: unique identifier
//   - title: short headline, required
//   - message: body text, required, kept verbatim
//   - kind: severity
//   - timestamp: creation time
func NewNotification(id kernel.UUID, title string, message string, kind Kind, timestamp time.Time) (*Notification, error) {
	return RestoreNotification(id, title, message, kind, timestamp, false)
}

// RestoreNotification rebuilds a notification from stored state.
func RestoreNotification(
	id kernel.UUID,
	title string,
	message string,
	kind Kind,
	timestamp time.Time,
	read bool,
) (*Notification, error) {
	n := &Notification{read: read, isConstructed: true}

	if err := errors.Join(
		n.setID(id),
		n.setTitle(title),
		n.setMessage(message),
		n.setKind(kind),
		n.setTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Kind() Kind {
	return n.kind
}

func (n *Notification) Timestamp() time.Time {
	return n.timestamp
}

func (n *Notification) IsRead() bool {
	return n.read
}

// MarkRead flags the notification as read. Calling it again changes nothing.
func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	n.timestamp = timestamp
	return nil
}
