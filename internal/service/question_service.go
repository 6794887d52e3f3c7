// Package service contains the business rules sitting between handlers and
// repositories.
package service

import (
	"context"
	"strings"

	"javaconnect/internal/models"
	"javaconnect/internal/repository"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 10000
)

// QuestionService owns question lifecycle rules: validation and ownership.
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// CreateQuestionInput carries the fields needed to post a question.
type CreateQuestionInput struct {
	UserID      uint
	Title       string
	Description string
	Difficulty  models.Difficulty
	Tags        []string
}

// UpdateQuestionInput carries the fields needed to edit a question.
type UpdateQuestionInput struct {
	UserID      uint
	QuestionID  uint
	Title       string
	Description string
	Difficulty  models.Difficulty
	Tags        []string
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

func validateQuestionFields(title, description string, difficulty models.Difficulty) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return models.NewValidationError("Title and description are required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 200 characters)")
	}
	if len(description) > maxDescriptionLen {
		return models.NewValidationError("Description too long (max 10000 characters)")
	}
	if !difficulty.Valid() {
		return models.NewValidationError("Difficulty must be one of Easy, Medium, Hard")
	}
	return nil
}

// normalizeTags trims each tag and drops empties.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *QuestionService) Create(ctx context.Context, in CreateQuestionInput) (*models.Question, error) {
	if err := validateQuestionFields(in.Title, in.Description, in.Difficulty); err != nil {
		return nil, err
	}

	question := &models.Question{
		Title:       in.Title,
		Description: in.Description,
		Difficulty:  in.Difficulty,
		Tags:        normalizeTags(in.Tags),
		UserID:      in.UserID,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	return s.questionRepo.GetByID(ctx, question.ID)
}

func (s *QuestionService) Get(ctx context.Context, id uint) (*models.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

func (s *QuestionService) ListAll(ctx context.Context) ([]*models.Question, error) {
	return s.questionRepo.ListAll(ctx)
}

func (s *QuestionService) ListByUser(ctx context.Context, userID uint) ([]*models.Question, error) {
	return s.questionRepo.GetByUserID(ctx, userID)
}

func (s *QuestionService) Update(ctx context.Context, in UpdateQuestionInput) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, in.QuestionID)
	if err != nil {
		return nil, err
	}
	if question.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own questions")
	}
	if err := validateQuestionFields(in.Title, in.Description, in.Difficulty); err != nil {
		return nil, err
	}

	question.Title = in.Title
	question.Description = in.Description
	question.Difficulty = in.Difficulty
	question.Tags = normalizeTags(in.Tags)

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}
	return s.questionRepo.GetByID(ctx, question.ID)
}

func (s *QuestionService) Delete(ctx context.Context, questionID, userID uint) error {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own questions")
	}
	return s.questionRepo.Delete(ctx, questionID)
}
