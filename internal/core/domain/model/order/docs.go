// Package order provides the Order aggregate of the back-office service together
// with its lifecycle vocabulary.
//
// The package includes:
//   - Order: the aggregate root holding items, shipping details, status and history
//   - Status: the seven lifecycle states and their display helpers
//   - ShippingMethod: selects the delivery or pickup branch of the lifecycle
//   - LogEntry: one immutable line of the append-only status history
//
// Key business rules:
//   - A new order starts in Pending with a single Pending log entry
//   - The log is append-only and its latest entry always matches the current status
//   - Completed and Cancelled are terminal, nothing can leave them
//   - Re-applying the current status is rejected instead of duplicating a log line
//
// Which transitions an actor may request is decided by the transition policy in
// the services package; the aggregate only guards its own consistency.
package order
