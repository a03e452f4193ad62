// Package services provides the domain policies of the back-office service.
// They are pure functions over static rule tables and never perform I/O.
//
// The package includes:
//   - OrderStatusPolicy: computes which status changes an actor is offered for an order
//   - RoleAccessPolicy: decides permission checks and which roles a manager may assign
//
// Both policies are built once at start-up from immutable configuration and are
// safe to share between goroutines.
package services
