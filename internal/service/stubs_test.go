package service

import (
	"context"

	"javaconnect/internal/models"
)

// Function-field stubs so each test wires only the calls it cares about.

type stubQuestionRepo struct {
	createFn      func(ctx context.Context, q *models.Question) error
	getByIDFn     func(ctx context.Context, id uint) (*models.Question, error)
	getByUserIDFn func(ctx context.Context, userID uint) ([]*models.Question, error)
	listAllFn     func(ctx context.Context) ([]*models.Question, error)
	updateFn      func(ctx context.Context, q *models.Question) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (s *stubQuestionRepo) Create(ctx context.Context, q *models.Question) error {
	return s.createFn(ctx, q)
}
func (s *stubQuestionRepo) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubQuestionRepo) GetByUserID(ctx context.Context, userID uint) ([]*models.Question, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *stubQuestionRepo) ListAll(ctx context.Context) ([]*models.Question, error) {
	return s.listAllFn(ctx)
}
func (s *stubQuestionRepo) Update(ctx context.Context, q *models.Question) error {
	return s.updateFn(ctx, q)
}
func (s *stubQuestionRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubAnswerRepo struct {
	createFn  func(ctx context.Context, a *models.Answer) error
	getByIDFn func(ctx context.Context, id uint) (*models.Answer, error)
	updateFn  func(ctx context.Context, a *models.Answer) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (s *stubAnswerRepo) Create(ctx context.Context, a *models.Answer) error {
	return s.createFn(ctx, a)
}
func (s *stubAnswerRepo) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubAnswerRepo) Update(ctx context.Context, a *models.Answer) error {
	return s.updateFn(ctx, a)
}
func (s *stubAnswerRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubFeedbackRepo struct {
	createFn  func(ctx context.Context, f *models.Feedback) error
	getByIDFn func(ctx context.Context, id uint) (*models.Feedback, error)
	updateFn  func(ctx context.Context, f *models.Feedback) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (s *stubFeedbackRepo) Create(ctx context.Context, f *models.Feedback) error {
	return s.createFn(ctx, f)
}
func (s *stubFeedbackRepo) GetByID(ctx context.Context, id uint) (*models.Feedback, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubFeedbackRepo) Update(ctx context.Context, f *models.Feedback) error {
	return s.updateFn(ctx, f)
}
func (s *stubFeedbackRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubFlagRepo struct {
	createFn     func(ctx context.Context, f *models.Flag) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Flag, error)
	findActiveFn func(ctx context.Context, userID uint, target models.FlagTarget, targetID uint) (*models.Flag, error)
	deleteFn     func(ctx context.Context, id uint) error
}

func (s *stubFlagRepo) Create(ctx context.Context, f *models.Flag) error {
	return s.createFn(ctx, f)
}
func (s *stubFlagRepo) GetByID(ctx context.Context, id uint) (*models.Flag, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubFlagRepo) FindActive(ctx context.Context, userID uint, target models.FlagTarget, targetID uint) (*models.Flag, error) {
	return s.findActiveFn(ctx, userID, target, targetID)
}
func (s *stubFlagRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
