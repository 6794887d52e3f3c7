package service

import (
	"context"
	"errors"
	"strings"

	"javaconnect/internal/models"
	"javaconnect/internal/observability"
	"javaconnect/internal/repository"

	"gorm.io/gorm"
)

// FlagService owns the moderation flag rules: the tagged-union target
// invariant, target existence, and the one-active-flag-per-item rule.
type FlagService struct {
	flagRepo     repository.FlagRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	feedbackRepo repository.FeedbackRepository
}

// SubmitFlagInput carries a flag submission. Exactly one of the target ids
// must be set.
type SubmitFlagInput struct {
	UserID     uint
	QuestionID *uint
	AnswerID   *uint
	FeedbackID *uint
	Reason     string
}

func NewFlagService(
	flagRepo repository.FlagRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	feedbackRepo repository.FeedbackRepository,
) *FlagService {
	return &FlagService{
		flagRepo:     flagRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		feedbackRepo: feedbackRepo,
	}
}

// Check returns the user's active flag on the given content item, or
// (nil, nil) when the item is not flagged by this user.
func (s *FlagService) Check(ctx context.Context, userID uint, target models.FlagTarget, targetID uint) (*models.Flag, error) {
	return s.flagRepo.FindActive(ctx, userID, target, targetID)
}

// Submit validates and stores a new flag.
func (s *FlagService) Submit(ctx context.Context, in SubmitFlagInput) (*models.Flag, error) {
	flag := &models.Flag{
		FlagedByID:         in.UserID,
		FlagedOnQuestionID: in.QuestionID,
		FlagedOnAnswerID:   in.AnswerID,
		FlagedOnFeedBackID: in.FeedbackID,
		FlagedRession:      strings.TrimSpace(in.Reason),
	}
	if err := flag.Validate(); err != nil {
		return nil, err
	}

	target, targetID, _ := flag.Target()
	if err := s.targetExists(ctx, target, targetID); err != nil {
		return nil, err
	}

	existing, err := s.flagRepo.FindActive(ctx, in.UserID, target, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You have already flagged this content")
	}

	if err := s.flagRepo.Create(ctx, flag); err != nil {
		return nil, err
	}
	observability.FlagsSubmitted.WithLabelValues(string(target)).Inc()
	return flag, nil
}

// Unflag removes the flag. Only the user who created it may remove it.
func (s *FlagService) Unflag(ctx context.Context, flagID, userID uint) error {
	flag, err := s.flagRepo.GetByID(ctx, flagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Flag", flagID)
		}
		return err
	}
	if flag.FlagedByID != userID {
		return models.NewUnauthorizedError("You can only remove your own flags")
	}
	return s.flagRepo.Delete(ctx, flagID)
}

func (s *FlagService) targetExists(ctx context.Context, target models.FlagTarget, targetID uint) error {
	var err error
	switch target {
	case models.FlagTargetQuestion:
		_, err = s.questionRepo.GetByID(ctx, targetID)
	case models.FlagTargetAnswer:
		_, err = s.answerRepo.GetByID(ctx, targetID)
	case models.FlagTargetFeedback:
		_, err = s.feedbackRepo.GetByID(ctx, targetID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Flag target", targetID)
	}
	return err
}
