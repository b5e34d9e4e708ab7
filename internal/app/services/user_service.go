package services

import (
	"context"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/repositories"
	"github.com/rkabir/profscope/internal/pkg/auth"
)

// UserService handles account provisioning from the external identity
// provider
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// SyncUser finds or creates the local account for a verified identity.
// Email and name from the token refresh the stored profile; role is
// preserved across syncs.
func (s *UserService) SyncUser(ctx context.Context, identity *auth.Identity) (*models.User, error) {
	user := &models.User{
		ExternalID: identity.Subject,
		Role:       models.RoleStudent,
	}
	if identity.Email != "" {
		user.Email = &identity.Email
	}
	if identity.Name != "" {
		user.Name = &identity.Name
	}
	if identity.AvatarURL != "" {
		user.AvatarURL = &identity.AvatarURL
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByExternalID resolves a verified identity to its local account
func (s *UserService) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return s.userRepo.GetByExternalID(ctx, externalID)
}
