package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"jamii-hub/mtaani/internal/auth"
	"jamii-hub/mtaani/internal/constants"
	"jamii-hub/mtaani/internal/logging"
	"jamii-hub/mtaani/internal/services"
)

// IdentityGate authenticates mutating requests against the external
// identity provider and provisions a platform user on first sight of
// a new email. GET requests pass through unauthenticated.
//
// Failure modes: missing/malformed Authorization header -> 401,
// token present but unverifiable -> 403.
func IdentityGate(verifier auth.TokenVerifier, provisioner *services.ProvisioningService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				gateError(w, http.StatusUnauthorized, constants.MsgAuthRequired)
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				gateError(w, http.StatusUnauthorized, constants.MsgTokenRequired)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logging.Warn("Token verification failed", "error", err.Error())
				gateError(w, http.StatusForbidden, constants.MsgTokenInvalid)
				return
			}

			ctx := auth.SetTokenClaims(r.Context(), claims)

			user, err := provisioner.FindOrCreateByEmail(ctx, claims)
			if err != nil {
				logging.Error("User provisioning failed", "subject", claims.Subject, "error", err.Error())
				gateError(w, http.StatusInternalServerError, "Failed to resolve user")
				return
			}
			if user != nil {
				ctx = auth.SetRequestUser(ctx, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func gateError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
