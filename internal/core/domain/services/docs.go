// Package services provides domain services that coordinate the driver core's
// aggregates where a rule spans more than one of them.
//
// The package includes:
//   - OrderLifecycle: moves an order through its state machine and applies the
//     side effects on the driver and the active trip
//   - EarningsCalculator: derives today's earnings, deliveries and average per delivery
//   - Alerts: builds the notifications the core emits on its own
//
// Services are stateless. They mutate only the aggregates handed to them and never
// touch storage; application handlers load and save aggregates around them.
package services
