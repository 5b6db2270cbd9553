// filepath: internal/httpserver/requestid/requestid.go
// Package requestid carries a per-request ULID through the request context.
package requestid

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Header is the HTTP header used to accept and echo request ids.
const Header = "X-Request-ID"

// maxLength caps client-supplied ids so they stay log friendly.
const maxLength = 128

type contextKey struct{}

// New returns a fresh, lexically sortable request id.
func New() string {
	return ulid.Make().String()
}

// Sanitize returns a client-supplied id if it is usable, otherwise a new one.
func Sanitize(id string) string {
	if id == "" || len(id) > maxLength {
		return New()
	}
	for _, c := range id {
		if c < 0x21 || c > 0x7e {
			return New()
		}
	}
	return id
}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
