package service

import (
	"context"
	"fmt"

	"github.com/fyan514/go-todo-service/internal/config"
	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/store"
	"github.com/fyan514/go-todo-service/internal/utils"
	"github.com/fyan514/go-todo-service/models"
)

// userService is the concrete implementation of UserService. All operations
// act on the caller's own record, identified by the trusted identity from
// the request context.
type userService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Profile returns the caller's profile view.
func (s *userService) Profile(ctx context.Context, identity models.Identity) (models.UserResponse, error) {
	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", identity.UserID).Msg("profile lookup failed")
		return models.UserResponse{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return models.UserResponse{
		UserID:      user.UserID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        user.Role,
		PhoneNumber: user.PhoneNumber,
	}, nil
}

// ChangePassword replaces the caller's password digest after re-verifying
// the current password against the stored hash.
//
// Returns ErrWrongPassword when the current password does not verify — the
// transport layer maps this to the historical 400 "Confirm password is
// incorrect" response.
func (s *userService) ChangePassword(ctx context.Context, identity models.Identity, request models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !utils.VerifyPassword(request.CurrentPassword, user.HashedPassword) {
		log.Error().Int64("user_id", identity.UserID).Msg("current password does not verify")
		return ErrWrongPassword
	}

	newHash, err := utils.HashPassword(request.NewPassword, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, identity.UserID, newHash); err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// ChangeProfile replaces the caller's mutable profile fields.
func (s *userService) ChangeProfile(ctx context.Context, identity models.Identity, request models.ChangeProfileRequest) error {
	if err := s.userRepository.UpdateProfile(ctx, identity.UserID, request); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", identity.UserID).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	return nil
}
