package auth

import (
	"context"

	"jamii-hub/mtaani/internal/models/entities"
)

// TokenClaims is the profile the identity provider attests to.
type TokenClaims struct {
	Subject     string
	Email       string
	DisplayName string
	PhotoURL    string
	PhoneNumber string
}

type contextKey string

const (
	claimsKey      contextKey = "token_claims"
	requestUserKey contextKey = "request_user"
)

// SetTokenClaims stores verified claims in the request context.
func SetTokenClaims(ctx context.Context, claims *TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetTokenClaims retrieves verified claims, or nil when the request
// was not authenticated (all GETs).
func GetTokenClaims(ctx context.Context) *TokenClaims {
	claims, _ := ctx.Value(claimsKey).(*TokenClaims)
	return claims
}

// SetRequestUser stores the provisioned platform user for this request.
func SetRequestUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, requestUserKey, user)
}

// GetRequestUser retrieves the provisioned platform user, or nil.
func GetRequestUser(ctx context.Context) *entities.User {
	user, _ := ctx.Value(requestUserKey).(*entities.User)
	return user
}
