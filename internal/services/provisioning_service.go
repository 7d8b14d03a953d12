package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jamii-hub/mtaani/internal/auth"
	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/metrics"
	"jamii-hub/mtaani/internal/models/entities"
)

// ProvisioningService resolves an authenticated identity to a platform
// user, creating one on first sight of an email.
type ProvisioningService struct {
	store      repositories.Store
	metricsReg *metrics.MetricsRegistry
}

func NewProvisioningService(store repositories.Store, metricsReg *metrics.MetricsRegistry) *ProvisioningService {
	return &ProvisioningService{store: store, metricsReg: metricsReg}
}

// FindOrCreateByEmail returns the user for the claims' email,
// provisioning one when none exists: username is the email local part,
// password empty, verified true. Returns (nil, nil) when the provider
// attested no email. Idempotent under concurrent first writes: the
// store's email uniqueness constraint turns the losing create into a
// lookup.
func (s *ProvisioningService) FindOrCreateByEmail(ctx context.Context, claims *auth.TokenClaims) (*entities.User, error) {
	if claims.Email == "" {
		return nil, nil
	}

	user, err := s.store.GetUserByEmail(ctx, claims.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	candidate := &entities.User{
		Username: strings.SplitN(claims.Email, "@", 2)[0],
		Password: "",
		Email:    claims.Email,
		Verified: true,
	}
	if claims.DisplayName != "" {
		candidate.DisplayName = &claims.DisplayName
	}
	if claims.PhotoURL != "" {
		candidate.PhotoURL = &claims.PhotoURL
	}
	if claims.PhoneNumber != "" {
		candidate.PhoneNumber = &claims.PhoneNumber
	}

	created, err := s.store.CreateUser(ctx, candidate)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return s.store.GetUserByEmail(ctx, claims.Email)
		}
		return nil, fmt.Errorf("provision user: %w", err)
	}

	if s.metricsReg != nil {
		s.metricsReg.UsersRegisteredTotal.Inc()
	}

	return created, nil
}
