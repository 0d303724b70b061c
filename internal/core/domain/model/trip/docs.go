// Package trip holds the Trip aggregate: a bounded driving session during which
// the driver handles zero or more orders.
//
// A trip accumulates distance and the commission of orders delivered on it.
// Ending a trip freezes it; the tracker then moves it into history.
package trip
