package auth

import (
	"context"
	"strings"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	ID       int64
	Username string
	Role     string
}

type identityKey struct{}

// WithIdentity stores the identity in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// BearerToken extracts the token from an Authorization header value.
// The token is the second space-separated word; the scheme is not checked,
// so "Token <jwt>" works as well as "Bearer <jwt>". An empty header yields
// ErrMissingToken and a header with no second word yields ErrInvalidToken.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}
	words := strings.Split(header, " ")
	if len(words) < 2 || words[1] == "" {
		return "", ErrInvalidToken
	}
	return words[1], nil
}
