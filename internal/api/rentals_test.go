package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"jamii-hub/mtaani/internal/models/entities"
)

func TestCreateRental_DefaultsToForRent(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/rentals", `{
		"title": "Power Drill Set",
		"description": "Heavy duty drill with bits included",
		"category": "Tools",
		"price": 500,
		"location": "Umoja",
		"contactInfo": "call 0700",
		"createdBy": 1
	}`, testToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var rental entities.Rental
	if err := json.Unmarshal(rec.Body.Bytes(), &rental); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if !rental.IsRental {
		t.Error("Expected isRental to default to true")
	}
}

func TestCreateRental_ExplicitSale(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/rentals", `{
		"title": "Wooden Dining Table",
		"description": "Seats six people, barely used",
		"category": "Furniture",
		"price": 15000,
		"isRental": false,
		"location": "Kasarani",
		"contactInfo": "call 0711",
		"createdBy": 1
	}`, testToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var rental entities.Rental
	if err := json.Unmarshal(rec.Body.Bytes(), &rental); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if rental.IsRental {
		t.Error("Expected isRental false for an explicit sale")
	}
}

func TestGetRental_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/rentals/42", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Rental not found") {
		t.Errorf("Expected not-found message, got %s", rec.Body.String())
	}
}
