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

// ListEvents handles GET /api/events?limit=&offset=
func (h *Handlers) ListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", repositories.DefaultListLimit)
		offset := queryInt(r, "offset", 0)

		events, err := h.deps.Repo.Store.ListEvents(r.Context(), limit, offset)
		if err != nil {
			logging.Error("Failed to list events", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchEvents)
			return
		}
		respondJSON(w, http.StatusOK, events)
	}
}

// GetEvent handles GET /api/events/{id}. Events are immutable, so the
// cached body never goes stale.
func (h *Handlers) GetEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamInt(r, "id")
		if !ok {
			respondMessage(w, http.StatusNotFound, constants.MsgEventNotFound)
			return
		}

		if body, found := h.cacheGet(eventCacheKey(id)); found {
			respondRawJSON(w, http.StatusOK, body)
			return
		}

		event, err := h.deps.Repo.Store.GetEvent(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondMessage(w, http.StatusNotFound, constants.MsgEventNotFound)
				return
			}
			logging.Error("Failed to fetch event", "id", id, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchEvent)
			return
		}

		body, err := json.Marshal(event)
		if err == nil {
			h.cacheSet(eventCacheKey(id), string(body))
		}
		respondJSON(w, http.StatusOK, event)
	}
}

// CreateEvent handles POST /api/events (authenticated).
func (h *Handlers) CreateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateEvent
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}
		if err := validation.Struct(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		event, err := h.deps.Repo.Store.CreateEvent(r.Context(), &entities.Event{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Time:        req.Time,
			Location:    req.Location,
			Coordinates: req.Coordinates,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			logging.Error("Failed to create event", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, "Failed to create event")
			return
		}
		respondJSON(w, http.StatusCreated, event)
	}
}
