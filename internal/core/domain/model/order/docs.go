// Package order provides the Order aggregate of the driver's order ledger.
//
// The package includes:
//   - Order: the aggregate root owning identity, customer, route, items, payment and lifecycle
//   - Status: the one-way state machine of the lifecycle
//   - Item, Customer, Route: value objects describing what is delivered, to whom and where
//   - Timeline: lifecycle timestamps
//
// Key business rules:
//   - Status follows Available -> Accepted -> PickedUp -> InTransit -> Delivered,
//     or Available -> Cancelled when the driver declines
//   - Delivered and Cancelled are terminal
//   - Each timestamp is stamped exactly once and timestamps never decrease
//   - The driver's commission is CommissionRate (15%) of the payment amount
package order
