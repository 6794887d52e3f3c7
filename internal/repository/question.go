package repository

import (
	"context"

	"javaconnect/internal/cache"
	"javaconnect/internal/models"
	"javaconnect/internal/observability"

	"gorm.io/gorm"
)

// QuestionRepository defines the interface for question data operations.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	GetByUserID(ctx context.Context, userID uint) ([]*models.Question, error)
	ListAll(ctx context.Context) ([]*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// applyAnswerCount adds the answerCount subquery so a single query returns it.
func (r *questionRepository) applyAnswerCount(db *gorm.DB) *gorm.DB {
	return db.Select("questions.*, " +
		"(SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id AND answers.deleted_at IS NULL) as answer_count")
}

// preloadThreads loads answers, the feedback nested under each answer, and
// the question-level feedback list, with author names joined in. The nested
// "Answers.Feedbacks" preload is what fills answerDto[].feedbacks on the wire;
// clients render threads from there.
func preloadThreads(db *gorm.DB) *gorm.DB {
	feedbackWithAuthor := func(tx *gorm.DB) *gorm.DB {
		return tx.Select("feedbacks.*, users.user_name as given_by_name").
			Joins("JOIN users ON users.id = feedbacks.given_by").
			Order("feedbacks.created_at ASC")
	}
	return db.
		Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("answers.*, users.user_name as answer_by_name").
				Joins("JOIN users ON users.id = answers.answered_by").
				Order("answers.created_at ASC")
		}).
		Preload("Answers.Feedbacks", feedbackWithAuthor).
		Preload("Feedbacks", feedbackWithAuthor)
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	defer observability.TrackQuery("insert", "questions")()
	err := r.db.WithContext(ctx).Create(question).Error
	if err == nil {
		cache.InvalidateQuestionsList(ctx)
	}
	return err
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	defer observability.TrackQuery("select", "questions")()
	var question models.Question
	err := preloadThreads(r.applyAnswerCount(r.db.WithContext(ctx))).
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) GetByUserID(ctx context.Context, userID uint) ([]*models.Question, error) {
	defer observability.TrackQuery("select", "questions")()
	var questions []*models.Question
	err := r.applyAnswerCount(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

// ListAll returns the public question listing, cache-aside since it is the
// hottest unauthenticated endpoint.
func (r *questionRepository) ListAll(ctx context.Context) ([]*models.Question, error) {
	var questions []*models.Question
	err := cache.Aside(ctx, cache.QuestionsListKey, &questions, cache.QuestionsListTTL, func() error {
		defer observability.TrackQuery("select", "questions")()
		return r.applyAnswerCount(r.db.WithContext(ctx)).
			Order("created_at DESC").
			Find(&questions).Error
	})
	return questions, err
}

func (r *questionRepository) Update(ctx context.Context, question *models.Question) error {
	defer observability.TrackQuery("update", "questions")()
	if err := r.db.WithContext(ctx).Save(question).Error; err != nil {
		return err
	}
	cache.InvalidateQuestion(ctx, question.ID)
	return nil
}

// Delete removes the question and everything hanging off it: answers,
// feedbacks, and any flags targeting them.
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "questions")()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var answerIDs []uint
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ?", id).
			Pluck("id", &answerIDs).Error; err != nil {
			return err
		}

		var feedbackIDs []uint
		if err := tx.Model(&models.Feedback{}).
			Where("question_id = ?", id).
			Pluck("id", &feedbackIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("flaged_on_question_id = ?", id).Delete(&models.Flag{}).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("flaged_on_answer_id IN ?", answerIDs).Delete(&models.Flag{}).Error; err != nil {
				return err
			}
		}
		if len(feedbackIDs) > 0 {
			if err := tx.Where("flaged_on_feed_back_id IN ?", feedbackIDs).Delete(&models.Flag{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("question_id = ?", id).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateQuestion(ctx, id)
	return nil
}
