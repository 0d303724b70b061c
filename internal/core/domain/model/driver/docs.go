// Package driver provides the Driver aggregate: the operational record of the
// person delivering orders, with contact details, vehicle, working status,
// last known position and lifetime totals.
//
// Lifetime deliveries and earnings only grow, and only when the order ledger
// credits a delivered order through Driver.CreditDelivery.
package driver
