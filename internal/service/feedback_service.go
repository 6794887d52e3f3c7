package service

import (
	"context"
	"strings"

	"javaconnect/internal/models"
	"javaconnect/internal/repository"
)

const maxFeedbackLen = 5000

// FeedbackService owns feedback lifecycle rules. Feedback always attaches to
// an answer; the owning question id is derived server-side so the client
// cannot attach feedback across questions.
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	answerRepo   repository.AnswerRepository
}

type PostFeedbackInput struct {
	UserID   uint
	AnswerID uint
	Content  string
}

type UpdateFeedbackInput struct {
	UserID     uint
	FeedbackID uint
	Content    string
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, answerRepo repository.AnswerRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo, answerRepo: answerRepo}
}

func validateFeedbackContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Feedback content is required")
	}
	if len(content) > maxFeedbackLen {
		return models.NewValidationError("Feedback too long (max 5000 characters)")
	}
	return nil
}

func (s *FeedbackService) Post(ctx context.Context, in PostFeedbackInput) (*models.Feedback, error) {
	if err := validateFeedbackContent(in.Content); err != nil {
		return nil, err
	}

	answer, err := s.answerRepo.GetByID(ctx, in.AnswerID)
	if err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		AnswerID:   answer.ID,
		QuestionID: answer.QuestionID,
		Content:    in.Content,
		GivenBy:    in.UserID,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return s.feedbackRepo.GetByID(ctx, feedback.ID)
}

func (s *FeedbackService) Update(ctx context.Context, in UpdateFeedbackInput) (*models.Feedback, error) {
	feedback, err := s.feedbackRepo.GetByID(ctx, in.FeedbackID)
	if err != nil {
		return nil, err
	}
	if feedback.GivenBy != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own feedback")
	}
	if err := validateFeedbackContent(in.Content); err != nil {
		return nil, err
	}

	feedback.Content = in.Content
	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}
	return s.feedbackRepo.GetByID(ctx, feedback.ID)
}

func (s *FeedbackService) Delete(ctx context.Context, feedbackID, userID uint) error {
	feedback, err := s.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return err
	}
	if feedback.GivenBy != userID {
		return models.NewUnauthorizedError("You can only delete your own feedback")
	}
	return s.feedbackRepo.Delete(ctx, feedbackID)
}
