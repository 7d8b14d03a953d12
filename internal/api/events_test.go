package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"jamii-hub/mtaani/internal/models/entities"
)

const validEventBody = `{
	"title": "Mtaani Cleanup Day",
	"description": "Bring gloves and bags, we meet at the gate",
	"date": "2025-07-12",
	"time": "09:00",
	"location": "Estate Gate",
	"price": 0,
	"createdBy": 1
}`

func TestCreateEvent_RequiresAuthentication(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/events", validEventBody, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authentication required") {
		t.Errorf("Expected auth required message, got %s", rec.Body.String())
	}
}

func TestCreateEvent_RejectsBadToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/events", validEventBody, "forged-token")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid authentication token") {
		t.Errorf("Expected invalid token message, got %s", rec.Body.String())
	}
}

func TestCreateEvent_MalformedBearerHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequestRawAuth(router, http.MethodPost, "/api/events", validEventBody, "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authentication token required") {
		t.Errorf("Expected token required message, got %s", rec.Body.String())
	}
}

func TestEventLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	created := doRequest(router, http.MethodPost, "/api/events", validEventBody, testToken)
	if created.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", created.Code, created.Body.String())
	}

	var event entities.Event
	if err := json.Unmarshal(created.Body.Bytes(), &event); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if event.ID != 1 {
		t.Errorf("Expected id 1, got %d", event.ID)
	}

	listed := doRequest(router, http.MethodGet, "/api/events", "", "")
	if listed.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", listed.Code)
	}
	var events []entities.Event
	if err := json.Unmarshal(listed.Body.Bytes(), &events); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Mtaani Cleanup Day" {
		t.Errorf("Expected the created event in the list, got %+v", events)
	}

	fetched := doRequest(router, http.MethodGet, "/api/events/1", "", "")
	if fetched.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", fetched.Code)
	}

	// A second fetch is served from cache and must carry the same body.
	cached := doRequest(router, http.MethodGet, "/api/events/1", "", "")
	if cached.Code != http.StatusOK {
		t.Fatalf("Expected 200 on cached fetch, got %d", cached.Code)
	}
	if strings.TrimSpace(cached.Body.String()) != strings.TrimSpace(fetched.Body.String()) {
		t.Error("Cached body differs from the original response")
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/events/999", "/api/events/abc"} {
		rec := doRequest(router, http.MethodGet, path, "", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Event not found") {
			t.Errorf("%s: expected not-found message, got %s", path, rec.Body.String())
		}
	}
}

func TestListEvents_EmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/events", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %s", rec.Body.String())
	}
}
