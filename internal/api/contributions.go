package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"jamii-hub/mtaani/internal/constants"
	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/logging"
	"jamii-hub/mtaani/internal/models/dtos/requests"
	"jamii-hub/mtaani/internal/validation"
)

// CreateContribution handles POST /api/contributions (authenticated).
// Responds with the contribution and the harambee carrying the
// updated raised amount; 404 when the harambee does not exist.
func (h *Handlers) CreateContribution() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateContribution
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}
		if err := validation.Struct(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := h.deps.Services.Contributions.Contribute(r.Context(), &req)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondMessage(w, http.StatusNotFound, constants.MsgHarambeeNotFound)
				return
			}
			logging.Error("Failed to record contribution", "harambee_id", req.HarambeeID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, "Failed to record contribution")
			return
		}
		respondJSON(w, http.StatusCreated, result)
	}
}

// ListHarambeeContributions handles GET /api/harambees/{id}/contributions
func (h *Handlers) ListHarambeeContributions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamInt(r, "id")
		if !ok {
			respondMessage(w, http.StatusNotFound, constants.MsgHarambeeNotFound)
			return
		}

		result, err := h.deps.Services.Contributions.ListByHarambee(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondMessage(w, http.StatusNotFound, constants.MsgHarambeeNotFound)
				return
			}
			logging.Error("Failed to list contributions", "harambee_id", id, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchContributions)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// ListUserContributions handles GET /api/contributions/user/{userId}
func (h *Handlers) ListUserContributions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := urlParamInt(r, "userId")
		if !ok {
			respondJSON(w, http.StatusOK, []struct{}{})
			return
		}

		contributions, err := h.deps.Services.Contributions.ListByUser(r.Context(), userID)
		if err != nil {
			logging.Error("Failed to list contributions", "user_id", userID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchContributions)
			return
		}
		respondJSON(w, http.StatusOK, contributions)
	}
}
