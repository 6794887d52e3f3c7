package repository

import (
	"context"

	"javaconnect/internal/cache"
	"javaconnect/internal/models"
	"javaconnect/internal/observability"

	"gorm.io/gorm"
)

// FeedbackRepository defines the interface for feedback data operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByID(ctx context.Context, id uint) (*models.Feedback, error)
	Update(ctx context.Context, feedback *models.Feedback) error
	Delete(ctx context.Context, id uint) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	defer observability.TrackQuery("insert", "feedbacks")()
	err := r.db.WithContext(ctx).Create(feedback).Error
	if err == nil {
		cache.InvalidateQuestion(ctx, feedback.QuestionID)
	}
	return err
}

func (r *feedbackRepository) GetByID(ctx context.Context, id uint) (*models.Feedback, error) {
	defer observability.TrackQuery("select", "feedbacks")()
	var feedback models.Feedback
	err := r.db.WithContext(ctx).
		Select("feedbacks.*, users.user_name as given_by_name").
		Joins("JOIN users ON users.id = feedbacks.given_by").
		First(&feedback, "feedbacks.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *models.Feedback) error {
	defer observability.TrackQuery("update", "feedbacks")()
	if err := r.db.WithContext(ctx).Save(feedback).Error; err != nil {
		return err
	}
	cache.InvalidateQuestion(ctx, feedback.QuestionID)
	return nil
}

// Delete removes the feedback and any flags on it.
func (r *feedbackRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "feedbacks")()
	var questionID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var feedback models.Feedback
		if err := tx.First(&feedback, id).Error; err != nil {
			return err
		}
		questionID = feedback.QuestionID

		if err := tx.Where("flaged_on_feed_back_id = ?", id).Delete(&models.Flag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Feedback{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateQuestion(ctx, questionID)
	return nil
}
