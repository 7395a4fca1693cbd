package service

import (
	"context"
	"errors"
	"log"

	"trademate/internal/cache"
	"trademate/internal/model"
	"trademate/internal/repository"
)

var ErrUnknownProvider = errors.New("unknown integration provider")

// IntegrationService manages connected third-party providers. OAuth
// plumbing lives with the provider; this only records the connection
// state the synthesizer reads.
type IntegrationService struct {
	integrationRepo repository.IntegrationRepo
	profileCache    cache.ProfileCache
}

// NewIntegrationService creates a new integration service
func NewIntegrationService(integrationRepo repository.IntegrationRepo, profileCache cache.ProfileCache) *IntegrationService {
	return &IntegrationService{
		integrationRepo: integrationRepo,
		profileCache:    profileCache,
	}
}

// List returns the user's integrations
func (s *IntegrationService) List(ctx context.Context, userID string) ([]*model.Integration, error) {
	return s.integrationRepo.GetByUserID(ctx, userID)
}

// Connect records an active integration for a known provider
func (s *IntegrationService) Connect(ctx context.Context, userID, provider string) (*model.Integration, error) {
	category, ok := model.CategoryForProvider(provider)
	if !ok {
		return nil, ErrUnknownProvider
	}

	integration := &model.Integration{
		UserID:   userID,
		Provider: provider,
		Category: category,
		IsActive: true,
	}
	if err := s.integrationRepo.Upsert(ctx, integration); err != nil {
		return nil, err
	}

	s.invalidateProfile(ctx, userID)
	return integration, nil
}

// Disconnect deactivates a provider connection
func (s *IntegrationService) Disconnect(ctx context.Context, userID, provider string) error {
	if _, ok := model.CategoryForProvider(provider); !ok {
		return ErrUnknownProvider
	}
	if err := s.integrationRepo.Deactivate(ctx, userID, provider); err != nil {
		return err
	}
	s.invalidateProfile(ctx, userID)
	return nil
}

// invalidateProfile drops the cached unified profile so the next
// synthesis sees the new source tier
func (s *IntegrationService) invalidateProfile(ctx context.Context, userID string) {
	if s.profileCache == nil {
		return
	}
	if err := s.profileCache.Invalidate(ctx, userID); err != nil {
		log.Printf("profile cache invalidation failed for user %s: %v", userID, err)
	}
}
