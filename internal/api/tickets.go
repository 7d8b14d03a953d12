package api

import (
	"encoding/json"
	"net/http"

	"jamii-hub/mtaani/internal/constants"
	"jamii-hub/mtaani/internal/logging"
	"jamii-hub/mtaani/internal/models/dtos/requests"
	"jamii-hub/mtaani/internal/validation"
)

// PurchaseTicket handles POST /api/tickets (authenticated). The qr
// code is generated server side.
func (h *Handlers) PurchaseTicket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateTicket
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}
		if err := validation.Struct(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		ticket, err := h.deps.Services.Tickets.Purchase(r.Context(), &req)
		if err != nil {
			logging.Error("Failed to issue ticket", "event_id", req.EventID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, "Failed to purchase ticket")
			return
		}
		respondJSON(w, http.StatusCreated, ticket)
	}
}

// ListTicketsByEvent handles GET /api/tickets/event/{eventId}
func (h *Handlers) ListTicketsByEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := urlParamInt(r, "eventId")
		if !ok {
			respondJSON(w, http.StatusOK, []struct{}{})
			return
		}

		tickets, err := h.deps.Repo.Store.ListTicketsByEvent(r.Context(), eventID)
		if err != nil {
			logging.Error("Failed to list tickets", "event_id", eventID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchTickets)
			return
		}
		respondJSON(w, http.StatusOK, tickets)
	}
}

// ListTicketsByUser handles GET /api/tickets/user/{userId}
func (h *Handlers) ListTicketsByUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := urlParamInt(r, "userId")
		if !ok {
			respondJSON(w, http.StatusOK, []struct{}{})
			return
		}

		tickets, err := h.deps.Repo.Store.ListTicketsByUser(r.Context(), userID)
		if err != nil {
			logging.Error("Failed to list tickets", "user_id", userID, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchTickets)
			return
		}
		respondJSON(w, http.StatusOK, tickets)
	}
}
