// Package session maps opaque cookie tokens to an authenticated role and
// name. Two stores exist: a Redis-backed one for real deployments and an
// in-process one for single-node and test use. Both expire sessions after an
// idle TTL that is refreshed on every read.
package session

import (
	"context"
	"errors"
)

// Data is everything a session holds. No other identity data is cached.
type Data struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// ErrNotFound is returned when a token is unknown or has expired.
var ErrNotFound = errors.New("session: not found")

// Store is the session store contract.
type Store interface {
	// Create stores the data under a fresh opaque token and returns it.
	Create(ctx context.Context, data Data) (string, error)
	// Get returns the data for a token and refreshes its idle TTL.
	Get(ctx context.Context, token string) (Data, error)
	// Destroy removes a token. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}

// Active is the process-wide store, set once at boot.
var Active Store

// Init sets the process-wide store.
func Init(s Store) {
	Active = s
}
