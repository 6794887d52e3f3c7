package service

import (
	"context"
	"strings"

	"javaconnect/internal/models"
	"javaconnect/internal/repository"
)

// UserService owns profile rules.
type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	ActingUserID uint
	UserID       uint
	UserName     string
	Email        string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies userName/email changes. Users may only update their
// own profile; uniqueness of the new name and email is checked first.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.ActingUserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own profile")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	userName := strings.TrimSpace(in.UserName)
	email := strings.TrimSpace(in.Email)
	if userName == "" && email == "" {
		return nil, models.NewValidationError("Nothing to update")
	}

	if userName != "" && userName != user.UserName {
		existing, err := s.userRepo.GetByUserName(ctx, userName)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Username already taken")
		}
		user.UserName = userName
	}

	if email != "" && email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Email already registered")
		}
		user.Email = email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
