package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/models/dtos/requests"
)

func TestRegister_Success(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := NewRegistrationService(store, nil)

	user, err := service.Register(context.Background(), &requests.RegisterUser{
		Username: "wanjiku",
		Password: "secret123",
		Email:    "wanjiku@example.com",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "wanjiku" {
		t.Errorf("Expected username wanjiku, got %q", user.Username)
	}
	if user.Verified {
		t.Error("Expected new registration to be unverified")
	}
	if user.Password == "secret123" {
		t.Error("Password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Errorf("Stored hash does not verify: %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := NewRegistrationService(store, nil)

	if _, err := service.Register(context.Background(), &requests.RegisterUser{
		Username: "wanjiku",
		Password: "secret123",
		Email:    "wanjiku@example.com",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := service.Register(context.Background(), &requests.RegisterUser{
		Username: "wanjiku",
		Password: "another1",
		Email:    "other@example.com",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("Expected ErrUsernameTaken, got %v", err)
	}

	// The failed attempt must not leave a user behind.
	if _, err := store.GetUserByEmail(context.Background(), "other@example.com"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected no user for other@example.com, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := NewRegistrationService(store, nil)

	if _, err := service.Register(context.Background(), &requests.RegisterUser{
		Username: "wanjiku",
		Password: "secret123",
		Email:    "wanjiku@example.com",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := service.Register(context.Background(), &requests.RegisterUser{
		Username: "otieno",
		Password: "another1",
		Email:    "wanjiku@example.com",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("Expected ErrEmailTaken, got %v", err)
	}

	if _, err := store.GetUserByUsername(context.Background(), "otieno"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected no user otieno, got %v", err)
	}
}
