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

// ListAlerts handles GET /api/alerts?type=&limit=&offset=
func (h *Handlers) ListAlerts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertType := filterQuery(r, "type")
		limit := queryInt(r, "limit", repositories.DefaultListLimit)
		offset := queryInt(r, "offset", 0)

		alerts, err := h.deps.Repo.Store.ListAlerts(r.Context(), alertType, limit, offset)
		if err != nil {
			logging.Error("Failed to list alerts", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchAlerts)
			return
		}
		respondJSON(w, http.StatusOK, alerts)
	}
}

// GetAlert handles GET /api/alerts/{id}
func (h *Handlers) GetAlert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamInt(r, "id")
		if !ok {
			respondMessage(w, http.StatusNotFound, constants.MsgAlertNotFound)
			return
		}

		alert, err := h.deps.Repo.Store.GetAlert(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondMessage(w, http.StatusNotFound, constants.MsgAlertNotFound)
				return
			}
			logging.Error("Failed to fetch alert", "id", id, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchAlert)
			return
		}
		respondJSON(w, http.StatusOK, alert)
	}
}

// CreateAlert handles POST /api/alerts (authenticated).
func (h *Handlers) CreateAlert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateAlert
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}
		if err := validation.Struct(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		alert, err := h.deps.Repo.Store.CreateAlert(r.Context(), &entities.Alert{
			Title:       req.Title,
			Description: req.Description,
			Type:        req.Type,
			Location:    req.Location,
			ImageURL:    req.ImageURL,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			logging.Error("Failed to create alert", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, "Failed to create alert")
			return
		}
		respondJSON(w, http.StatusCreated, alert)
	}
}

// ListAlertComments handles GET /api/alerts/{alertId}/comments.
// Comments come back oldest first; a missing alert is a 404.
func (h *Handlers) ListAlertComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertID, ok := urlParamInt(r, "alertId")
		if !ok {
			respondMessage(w, http.StatusNotFound, constants.MsgAlertNotFound)
			return
		}

		if _, err := h.deps.Repo.Store.GetAlert(r.Context(), alertID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondMessage(w, http.StatusNotFound, constants.MsgAlertNotFound)
				return
			}
			logging.Error("Failed to fetch alert", "id", alertID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchAlert)
			return
		}

		comments, err := h.deps.Repo.Store.ListCommentsByAlert(r.Context(), alertID)
		if err != nil {
			logging.Error("Failed to list comments", "alert_id", alertID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchComments)
			return
		}
		respondJSON(w, http.StatusOK, comments)
	}
}

// CreateComment handles POST /api/comments (authenticated). The
// parent alert must exist.
func (h *Handlers) CreateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateComment
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}
		if err := validation.Struct(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if _, err := h.deps.Repo.Store.GetAlert(r.Context(), req.AlertID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondMessage(w, http.StatusNotFound, constants.MsgAlertNotFound)
				return
			}
			logging.Error("Failed to fetch alert", "id", req.AlertID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchAlert)
			return
		}

		comment, err := h.deps.Repo.Store.CreateComment(r.Context(), &entities.Comment{
			Text:    req.Text,
			AlertID: req.AlertID,
			UserID:  req.UserID,
		})
		if err != nil {
			logging.Error("Failed to create comment", "alert_id", req.AlertID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, "Failed to create comment")
			return
		}
		respondJSON(w, http.StatusCreated, comment)
	}
}
