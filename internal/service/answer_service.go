package service

import (
	"context"
	"strings"

	"javaconnect/internal/models"
	"javaconnect/internal/repository"
)

const maxAnswerLen = 10000

// AnswerService owns answer lifecycle rules.
type AnswerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

type PostAnswerInput struct {
	UserID     uint
	QuestionID uint
	Content    string
}

type EditAnswerInput struct {
	UserID   uint
	AnswerID uint
	Content  string
}

func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository) *AnswerService {
	return &AnswerService{answerRepo: answerRepo, questionRepo: questionRepo}
}

func validateAnswerContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Answer content is required")
	}
	if len(content) > maxAnswerLen {
		return models.NewValidationError("Answer too long (max 10000 characters)")
	}
	return nil
}

func (s *AnswerService) Post(ctx context.Context, in PostAnswerInput) (*models.Answer, error) {
	if err := validateAnswerContent(in.Content); err != nil {
		return nil, err
	}
	if _, err := s.questionRepo.GetByID(ctx, in.QuestionID); err != nil {
		return nil, err
	}

	answer := &models.Answer{
		QuestionID: in.QuestionID,
		Content:    in.Content,
		AnsweredBy: in.UserID,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(ctx, answer.ID)
}

func (s *AnswerService) Edit(ctx context.Context, in EditAnswerInput) (*models.Answer, error) {
	answer, err := s.answerRepo.GetByID(ctx, in.AnswerID)
	if err != nil {
		return nil, err
	}
	if answer.AnsweredBy != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own answers")
	}
	if err := validateAnswerContent(in.Content); err != nil {
		return nil, err
	}

	answer.Content = in.Content
	if err := s.answerRepo.Update(ctx, answer); err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(ctx, answer.ID)
}

func (s *AnswerService) Delete(ctx context.Context, answerID, userID uint) error {
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer.AnsweredBy != userID {
		return models.NewUnauthorizedError("You can only delete your own answers")
	}
	return s.answerRepo.Delete(ctx, answerID)
}
