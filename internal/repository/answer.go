package repository

import (
	"context"

	"javaconnect/internal/cache"
	"javaconnect/internal/models"
	"javaconnect/internal/observability"

	"gorm.io/gorm"
)

// AnswerRepository defines the interface for answer data operations.
type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id uint) (*models.Answer, error)
	Update(ctx context.Context, answer *models.Answer) error
	Delete(ctx context.Context, id uint) error
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	defer observability.TrackQuery("insert", "answers")()
	err := r.db.WithContext(ctx).Create(answer).Error
	if err == nil {
		cache.InvalidateQuestion(ctx, answer.QuestionID)
	}
	return err
}

func (r *answerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	defer observability.TrackQuery("select", "answers")()
	var answer models.Answer
	err := r.db.WithContext(ctx).
		Select("answers.*, users.user_name as answer_by_name").
		Joins("JOIN users ON users.id = answers.answered_by").
		First(&answer, "answers.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) Update(ctx context.Context, answer *models.Answer) error {
	defer observability.TrackQuery("update", "answers")()
	if err := r.db.WithContext(ctx).Save(answer).Error; err != nil {
		return err
	}
	cache.InvalidateQuestion(ctx, answer.QuestionID)
	return nil
}

// Delete removes the answer along with its feedbacks and any flags on either.
func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "answers")()
	var questionID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.First(&answer, id).Error; err != nil {
			return err
		}
		questionID = answer.QuestionID

		var feedbackIDs []uint
		if err := tx.Model(&models.Feedback{}).
			Where("answer_id = ?", id).
			Pluck("id", &feedbackIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("flaged_on_answer_id = ?", id).Delete(&models.Flag{}).Error; err != nil {
			return err
		}
		if len(feedbackIDs) > 0 {
			if err := tx.Where("flaged_on_feed_back_id IN ?", feedbackIDs).Delete(&models.Flag{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("answer_id = ?", id).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Answer{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateQuestion(ctx, questionID)
	return nil
}
