package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"jamii-hub/mtaani/internal/api"
	"jamii-hub/mtaani/internal/auth"
	"jamii-hub/mtaani/internal/common"
	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/routes"
	"jamii-hub/mtaani/internal/services"
)

const testToken = "good-token"

// stubVerifier accepts exactly one token so the identity gate can be
// exercised without a real identity provider.
type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (*auth.TokenClaims, error) {
	if token != testToken {
		return nil, errors.New("unknown token")
	}
	return &auth.TokenClaims{
		Subject: "idp-uid-1",
		Email:   "amani@example.com",
	}, nil
}

func newTestRouter(t *testing.T) (http.Handler, repositories.Store) {
	t.Helper()

	store := repositories.NewMemoryStore()
	cache := common.NewCacheService(time.Minute, 2*time.Minute)

	deps := &api.Dependencies{
		Repo: &api.Repositories{Store: store},
		Services: &api.Services{
			Cache:         cache,
			Registration:  services.NewRegistrationService(store, nil),
			Provisioning:  services.NewProvisioningService(store, nil),
			Tickets:       services.NewTicketService(store, nil),
			Contributions: services.NewContributionService(store, nil, cache, nil),
		},
		Verifier: stubVerifier{},
	}

	r := chi.NewRouter()
	routes.RegisterAPIRoutes(r, deps, api.NewHandlers(deps))
	return r, store
}

func doRequest(handler http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// doRequestRawAuth sends the Authorization header exactly as given,
// for exercising malformed header handling.
func doRequestRawAuth(handler http.Handler, method, path, body, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", header)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
