// Package user provides the access vocabulary and the dashboard User aggregate.
//
// The package includes:
//   - Role: the closed set of actor roles, dashboard roles plus the buyer role
//   - Permission: capability strings checked by the access policy
//   - User: a dashboard account whose role can be reassigned
//   - Actor: the role and optional identity of whoever performs an operation
//
// Which role may hold which permission, and which roles a manager may assign,
// is static configuration owned by the access policy in the services package.
package user
