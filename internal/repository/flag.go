package repository

import (
	"context"
	"errors"

	"javaconnect/internal/models"
	"javaconnect/internal/observability"

	"gorm.io/gorm"
)

// FlagRepository defines the interface for moderation flag data operations.
type FlagRepository interface {
	Create(ctx context.Context, flag *models.Flag) error
	GetByID(ctx context.Context, id uint) (*models.Flag, error)
	// FindActive returns the user's flag on the given content item, or
	// (nil, nil) when none exists.
	FindActive(ctx context.Context, userID uint, target models.FlagTarget, targetID uint) (*models.Flag, error)
	Delete(ctx context.Context, id uint) error
}

type flagRepository struct {
	db *gorm.DB
}

// NewFlagRepository creates a new flag repository.
func NewFlagRepository(db *gorm.DB) FlagRepository {
	return &flagRepository{db: db}
}

func (r *flagRepository) Create(ctx context.Context, flag *models.Flag) error {
	defer observability.TrackQuery("insert", "flags")()
	return r.db.WithContext(ctx).Create(flag).Error
}

func (r *flagRepository) GetByID(ctx context.Context, id uint) (*models.Flag, error) {
	defer observability.TrackQuery("select", "flags")()
	var flag models.Flag
	if err := r.db.WithContext(ctx).First(&flag, id).Error; err != nil {
		return nil, err
	}
	return &flag, nil
}

func (r *flagRepository) FindActive(ctx context.Context, userID uint, target models.FlagTarget, targetID uint) (*models.Flag, error) {
	column := ""
	switch target {
	case models.FlagTargetQuestion:
		column = "flaged_on_question_id"
	case models.FlagTargetAnswer:
		column = "flaged_on_answer_id"
	case models.FlagTargetFeedback:
		column = "flaged_on_feed_back_id"
	default:
		return nil, models.NewValidationError("Unknown flag target")
	}

	defer observability.TrackQuery("select", "flags")()
	var flag models.Flag
	err := r.db.WithContext(ctx).
		Where("flaged_by_id = ? AND "+column+" = ?", userID, targetID).
		First(&flag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &flag, nil
}

func (r *flagRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "flags")()
	return r.db.WithContext(ctx).Delete(&models.Flag{}, id).Error
}
