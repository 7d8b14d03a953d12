package validation

import (
	"strings"
	"testing"

	"jamii-hub/mtaani/internal/models/dtos/requests"
)

func TestStruct_Valid(t *testing.T) {
	err := Struct(&requests.CreateHarambee{
		Title:       "Water Project",
		Description: "Borehole for the estate",
		GoalAmount:  1000,
		CreatedBy:   1,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestStruct_AggregatesAllViolations(t *testing.T) {
	err := Struct(&requests.CreateHarambee{
		Title:       "abc",
		Description: "short",
		GoalAmount:  0,
		CreatedBy:   0,
	})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	message := err.Error()
	for _, fragment := range []string{
		"title must be at least 5 characters",
		"description must be at least 10 characters",
		"goalAmount is required",
		"createdBy is required",
	} {
		if !strings.Contains(message, fragment) {
			t.Errorf("Expected %q in %q", fragment, message)
		}
	}
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(&requests.CreateContribution{HarambeeID: 0, UserID: 1, Amount: 10})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "harambeeId") {
		t.Errorf("Expected JSON field name in message, got %q", err.Error())
	}
	if strings.Contains(err.Error(), "HarambeeID") {
		t.Errorf("Go field name leaked into message: %q", err.Error())
	}
}

func TestStruct_URLValidation(t *testing.T) {
	badURL := "not a url"
	err := Struct(&requests.CreateRental{
		Title:       "Power Drill Set",
		Description: "Heavy duty drill with bits",
		Category:    "Tools",
		Price:       500,
		Location:    "Umoja",
		ImageURL:    &badURL,
		ContactInfo: "call 0700",
		CreatedBy:   1,
	})
	if err == nil {
		t.Fatal("Expected validation error for malformed URL")
	}
	if !strings.Contains(err.Error(), "imageUrl must be a valid URL") {
		t.Errorf("Expected URL violation, got %q", err.Error())
	}
}
