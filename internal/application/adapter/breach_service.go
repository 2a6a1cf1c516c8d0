// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// BreachService defines the interface for looking up a password in a
// breached-password database. Implementations must only send a one-way
// digest (or digest prefix) of the password, never the password itself.
type BreachService interface {
	// CountBreaches returns how many times the password appears in the
	// breach corpus. Zero means the password was not found.
	CountBreaches(ctx context.Context, password string) (int, error)

	// IsAvailable reports whether the service is configured for lookups.
	IsAvailable() bool
}
