package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	secret := []byte("test-secret")
	verifier := NewJWTVerifier(secret)

	tokenString := signToken(t, secret, jwt.MapClaims{
		"sub":          "idp-uid-1",
		"email":        "amani@example.com",
		"name":         "Amani M",
		"picture":      "https://example.com/p.jpg",
		"phone_number": "+254700000000",
		"exp":          time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifier.Verify(context.Background(), tokenString)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "idp-uid-1" {
		t.Errorf("Expected subject idp-uid-1, got %q", claims.Subject)
	}
	if claims.Email != "amani@example.com" {
		t.Errorf("Expected email claim, got %q", claims.Email)
	}
	if claims.DisplayName != "Amani M" {
		t.Errorf("Expected name claim, got %q", claims.DisplayName)
	}
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	verifier := NewJWTVerifier([]byte("right-secret"))

	tokenString := signToken(t, []byte("wrong-secret"), jwt.MapClaims{
		"sub": "idp-uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := verifier.Verify(context.Background(), tokenString); err == nil {
		t.Fatal("Expected verification to fail with wrong secret")
	}
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	verifier := NewJWTVerifier(secret)

	tokenString := signToken(t, secret, jwt.MapClaims{
		"sub": "idp-uid-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := verifier.Verify(context.Background(), tokenString); err == nil {
		t.Fatal("Expected verification to fail for an expired token")
	}
}

func TestJWTVerifier_MissingSubject(t *testing.T) {
	secret := []byte("test-secret")
	verifier := NewJWTVerifier(secret)

	tokenString := signToken(t, secret, jwt.MapClaims{
		"email": "amani@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	if _, err := verifier.Verify(context.Background(), tokenString); err == nil {
		t.Fatal("Expected verification to fail without a subject claim")
	}
}

func TestJWTVerifier_Garbage(t *testing.T) {
	verifier := NewJWTVerifier([]byte("test-secret"))

	if _, err := verifier.Verify(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("Expected verification to fail for garbage input")
	}
}
