package auth

import (
	"context"
	"errors"
)

const TokenHeader = "X-WORKOUT-TOKEN"

var ErrNotAuthenticated = errors.New("not authenticated")

// Identity is the authenticated caller. It travels with the request context
// and every per-user read or write is keyed by its UserID.
type Identity struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
}

type identityCtxKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	if !ok || identity.UserID <= 0 {
		return Identity{}, false
	}
	return identity, true
}

// RequireIdentity returns ErrNotAuthenticated when the context carries no caller.
func RequireIdentity(ctx context.Context) (Identity, error) {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return Identity{}, ErrNotAuthenticated
	}
	return identity, nil
}
