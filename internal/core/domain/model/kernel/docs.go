// Package kernel provides the shared domain primitives of the back-office service.
//
// The package includes:
//   - UUID: the identifier value object used by orders and dashboard users
//   - Clock: the time source used when order log entries are stamped
//
// Primitives are immutable and validate themselves, so aggregates in the order
// and user packages can rely on them without re-checking.
package kernel
