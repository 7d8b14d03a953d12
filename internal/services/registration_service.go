package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"jamii-hub/mtaani/internal/constants"
	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/metrics"
	"jamii-hub/mtaani/internal/models/dtos/requests"
	"jamii-hub/mtaani/internal/models/entities"
)

var (
	ErrUsernameTaken = errors.New(constants.MsgUsernameExists)
	ErrEmailTaken    = errors.New(constants.MsgEmailExists)
)

// RegistrationService creates accounts for explicit sign-ups.
type RegistrationService struct {
	store      repositories.Store
	metricsReg *metrics.MetricsRegistry
}

func NewRegistrationService(store repositories.Store, metricsReg *metrics.MetricsRegistry) *RegistrationService {
	return &RegistrationService{store: store, metricsReg: metricsReg}
}

// Register checks username and email uniqueness before creating the
// user, so each collision gets its own message. The stored password is
// a bcrypt hash; it never appears in responses.
func (s *RegistrationService) Register(ctx context.Context, req *requests.RegisterUser) (*entities.User, error) {
	if _, err := s.store.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("username lookup: %w", err)
	}

	if _, err := s.store.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, &entities.User{
		Username:    req.Username,
		Password:    string(hash),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		PhoneNumber: req.PhoneNumber,
		Verified:    false,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			// Lost a race with a concurrent registration.
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.metricsReg != nil {
		s.metricsReg.UsersRegisteredTotal.Inc()
	}

	return user, nil
}
