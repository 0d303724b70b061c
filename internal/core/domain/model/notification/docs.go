// Package notification holds the Notification aggregate shown in the driver's
// alert feed, and its Kind (info, success, warning, error).
package notification
