// Package account provides the identity side of the driver core: the Account a
// driver registers with, its approval Status, the explicit ProfileUpdate merge
// and the single active Session.
//
// Key business rules:
//   - Registration creates a Pending account; only Approved accounts log in
//   - Emails are unique and compared case-insensitively
//   - Profile edits touch only name, phone and vehicle, all-or-nothing
//   - At most one session exists; a new login replaces it
package account
