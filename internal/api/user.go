package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"jamii-hub/mtaani/internal/constants"
	"jamii-hub/mtaani/internal/logging"
	"jamii-hub/mtaani/internal/models/dtos/requests"
	"jamii-hub/mtaani/internal/services"
	"jamii-hub/mtaani/internal/validation"
)

// Register handles POST /api/auth/register. Username and email
// collisions are reported individually; the password never appears in
// the response.
func (h *Handlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.RegisterUser
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}
		if err := validation.Struct(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := h.deps.Services.Registration.Register(r.Context(), &req)
		if err != nil {
			if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
				respondMessage(w, http.StatusBadRequest, err.Error())
				return
			}
			logging.Error("Registration failed", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, "Failed to register user")
			return
		}

		respondJSON(w, http.StatusCreated, user)
	}
}
