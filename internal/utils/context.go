// Package utils provides helpers shared by the transports, the adapters and
// the command-line client: typed context keys, JWT handling, body hashing,
// JSON response writing and HTTP client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here never
// collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// ClientCtxKey stores the authenticated client name (the token subject).
var ClientCtxKey = contextKey("client")

// WithClient returns a copy of ctx carrying the client name.
func WithClient(ctx context.Context, client string) context.Context {
	return context.WithValue(ctx, ClientCtxKey, client)
}

// GetClientFromContext returns the client name stored by WithClient.
// ok is false when none was stored or the stored value is not a string.
func GetClientFromContext(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(ClientCtxKey).(string)
	return client, ok
}
