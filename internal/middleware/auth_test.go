package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jamii-hub/mtaani/internal/auth"
	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/services"
)

type fixedVerifier struct {
	claims *auth.TokenClaims
}

func (v fixedVerifier) Verify(_ context.Context, token string) (*auth.TokenClaims, error) {
	if token != "good-token" {
		return nil, errors.New("unknown token")
	}
	return v.claims, nil
}

func newGate(claims *auth.TokenClaims, store repositories.Store) func(http.Handler) http.Handler {
	return IdentityGate(fixedVerifier{claims: claims}, services.NewProvisioningService(store, nil))
}

func sendThroughGate(gate func(http.Handler) http.Handler, method, authHeader string, inner http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/events", strings.NewReader("{}"))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	gate(inner).ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestIdentityGate_GETPassesThrough(t *testing.T) {
	gate := newGate(&auth.TokenClaims{Subject: "s"}, repositories.NewMemoryStore())

	rec := sendThroughGate(gate, http.MethodGet, "", okHandler())
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected GET to pass unauthenticated, got %d", rec.Code)
	}
}

func TestIdentityGate_MissingHeader(t *testing.T) {
	gate := newGate(&auth.TokenClaims{Subject: "s"}, repositories.NewMemoryStore())

	rec := sendThroughGate(gate, http.MethodPost, "", okHandler())
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authentication required") {
		t.Errorf("Expected auth required message, got %s", rec.Body.String())
	}
}

func TestIdentityGate_NonBearerHeader(t *testing.T) {
	gate := newGate(&auth.TokenClaims{Subject: "s"}, repositories.NewMemoryStore())

	for _, header := range []string{"Basic abc123", "Bearer ", "good-token"} {
		rec := sendThroughGate(gate, http.MethodPost, header, okHandler())
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%q: expected 401, got %d", header, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Authentication token required") {
			t.Errorf("%q: expected token required message, got %s", header, rec.Body.String())
		}
	}
}

func TestIdentityGate_InvalidToken(t *testing.T) {
	gate := newGate(&auth.TokenClaims{Subject: "s"}, repositories.NewMemoryStore())

	rec := sendThroughGate(gate, http.MethodPost, "Bearer forged", okHandler())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid authentication token") {
		t.Errorf("Expected invalid token message, got %s", rec.Body.String())
	}
}

func TestIdentityGate_ProvisionsAndAttachesUser(t *testing.T) {
	store := repositories.NewMemoryStore()
	gate := newGate(&auth.TokenClaims{Subject: "idp-uid-1", Email: "amani@example.com"}, store)

	var sawUser bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetTokenClaims(r.Context())
		if claims == nil || claims.Email != "amani@example.com" {
			t.Error("Expected claims in request context")
		}
		user := auth.GetRequestUser(r.Context())
		if user != nil && user.Username == "amani" {
			sawUser = true
		}
		w.WriteHeader(http.StatusOK)
	})

	rec := sendThroughGate(gate, http.MethodPost, "Bearer good-token", inner)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !sawUser {
		t.Error("Expected provisioned user in request context")
	}

	// The user now exists in the store.
	if _, err := store.GetUserByEmail(context.Background(), "amani@example.com"); err != nil {
		t.Errorf("Expected provisioned user in store: %v", err)
	}
}

func TestIdentityGate_NoEmailStillPasses(t *testing.T) {
	store := repositories.NewMemoryStore()
	gate := newGate(&auth.TokenClaims{Subject: "idp-uid-2"}, store)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.GetRequestUser(r.Context()) != nil {
			t.Error("Expected no request user for claims without email")
		}
		w.WriteHeader(http.StatusOK)
	})

	rec := sendThroughGate(gate, http.MethodPost, "Bearer good-token", inner)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}
