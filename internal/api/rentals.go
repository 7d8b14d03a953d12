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

// ListRentals handles GET /api/rentals?category=&limit=&offset=
func (h *Handlers) ListRentals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := filterQuery(r, "category")
		limit := queryInt(r, "limit", repositories.DefaultListLimit)
		offset := queryInt(r, "offset", 0)

		rentals, err := h.deps.Repo.Store.ListRentals(r.Context(), category, limit, offset)
		if err != nil {
			logging.Error("Failed to list rentals", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchRentals)
			return
		}
		respondJSON(w, http.StatusOK, rentals)
	}
}

// GetRental handles GET /api/rentals/{id}
func (h *Handlers) GetRental() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamInt(r, "id")
		if !ok {
			respondMessage(w, http.StatusNotFound, constants.MsgRentalNotFound)
			return
		}

		rental, err := h.deps.Repo.Store.GetRental(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondMessage(w, http.StatusNotFound, constants.MsgRentalNotFound)
				return
			}
			logging.Error("Failed to fetch rental", "id", id, "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, constants.MsgFailedFetchRental)
			return
		}
		respondJSON(w, http.StatusOK, rental)
	}
}

// CreateRental handles POST /api/rentals (authenticated). A listing
// is for rent unless the client explicitly marks it a sale.
func (h *Handlers) CreateRental() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateRental
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}
		if err := validation.Struct(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		isRental := true
		if req.IsRental != nil {
			isRental = *req.IsRental
		}

		rental, err := h.deps.Repo.Store.CreateRental(r.Context(), &entities.Rental{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Price:       req.Price,
			IsRental:    isRental,
			Location:    req.Location,
			ImageURL:    req.ImageURL,
			ContactInfo: req.ContactInfo,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			logging.Error("Failed to create rental", "error", err.Error())
			respondMessage(w, http.StatusInternalServerError, "Failed to create rental")
			return
		}
		respondJSON(w, http.StatusCreated, rental)
	}
}
