// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"javaconnect/internal/cache"
	"javaconnect/internal/models"
	"javaconnect/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("insert", "users")()
	return r.db.WithContext(ctx).Create(user).Error
}

// cachedUser carries the password hash alongside the user. The wire model
// marshals Password as json:"-", so caching a bare User would hand later
// mutation paths a user with an empty hash and a full Save would then wipe
// the password column.
type cachedUser struct {
	User         models.User `json:"user"`
	PasswordHash string      `json:"passwordHash"`
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var cu cachedUser
	err := cache.Aside(ctx, cache.UserKey(id), &cu, cache.UserTTL, func() error {
		defer observability.TrackQuery("select", "users")()
		if err := r.db.WithContext(ctx).First(&cu.User, id).Error; err != nil {
			return err
		}
		cu.PasswordHash = cu.User.Password
		return nil
	})
	if err != nil {
		return nil, err
	}
	user := cu.User
	user.Password = cu.PasswordHash
	return &user, nil
}

// GetByUserName returns (nil, nil) when no user matches; callers treat the
// absence as a business condition, not an error.
func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	defer observability.TrackQuery("select", "users")()
	var user models.User
	err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	defer observability.TrackQuery("select", "users")()
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("update", "users")()
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}
