// Package kernel provides the value objects shared by every aggregate of the
// driver core.
//
// The package includes:
//   - UUID: the identity of accounts, drivers, orders, trips and notifications
//   - Location: a geographic point with a display address and haversine distance
//   - Vehicle: the vehicle type and registration number of a driver
//
// Both are immutable, validate on construction and reject their zero value.
package kernel
