package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"jamii-hub/mtaani/internal/constants"
	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/logging"
	"jamii-hub/mtaani/internal/models/dtos/requests"
	"jamii-hub/mtaani/internal/models/entities"
	"jamii-hub/mtaani/internal/validation"
)

// ListHarambees handles GET /api/harambees?limit=&offset=
func (h *Handlers) ListHarambees() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", repositories.DefaultListLimit)
		offset := queryInt(r, "offset", 0)

		harambees, err := h.deps.Repo.Store.ListHarambees(r.Context(), limit, offset)
		if err != nil {
			logging.Error("Failed to list harambees", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchHarambees)
			return
		}
		respondJSON(w, http.StatusOK, harambees)
	}
}

// GetHarambee handles GET /api/harambees/{id}. Cached entries are
// invalidated whenever a contribution lands.
func (h *Handlers) GetHarambee() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamInt(r, "id")
		if !ok {
			respondMessage(w, http.StatusNotFound, constants.MsgHarambeeNotFound)
			return
		}

		if body, found := h.cacheGet(harambeeCacheKey(id)); found {
			respondRawJSON(w, http.StatusOK, body)
			return
		}

		harambee, err := h.deps.Repo.Store.GetHarambee(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondMessage(w, http.StatusNotFound, constants.MsgHarambeeNotFound)
				return
			}
			logging.Error("Failed to fetch harambee", "id", id, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchHarambee)
			return
		}

		body, err := json.Marshal(harambee)
		if err == nil {
			h.cacheSet(harambeeCacheKey(id), string(body))
		}
		respondJSON(w, http.StatusOK, harambee)
	}
}

// CreateHarambee handles POST /api/harambees (authenticated). The
// raised amount always starts at 0 no matter what the client sent.
func (h *Handlers) CreateHarambee() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateHarambee
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}
		if err := validation.Struct(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		harambee, err := h.deps.Repo.Store.CreateHarambee(r.Context(), &entities.Harambee{
			Title:       req.Title,
			Description: req.Description,
			GoalAmount:  req.GoalAmount,
			ImageURL:    req.ImageURL,
			Verified:    req.Verified,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			logging.Error("Failed to create harambee", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, "Failed to create harambee")
			return
		}
		respondJSON(w, http.StatusCreated, harambee)
	}
}
