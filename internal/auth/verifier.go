package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier is the boundary to the external identity provider: it
// accepts an opaque bearer token and returns the identity claims it
// carries, or rejects it.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// JWTVerifier verifies provider-issued JWTs signed with a shared
// HMAC secret. Claims follow the usual OIDC names: sub, email, name,
// picture, phone_number.
type JWTVerifier struct {
	secret []byte
}

var _ TokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret []byte) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	claims := &TokenClaims{Subject: sub}
	claims.Email, _ = mapClaims["email"].(string)
	claims.DisplayName, _ = mapClaims["name"].(string)
	claims.PhotoURL, _ = mapClaims["picture"].(string)
	claims.PhoneNumber, _ = mapClaims["phone_number"].(string)

	return claims, nil
}
