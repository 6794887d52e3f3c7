package service

import (
	"context"
	"testing"

	"javaconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_Create_Validation(t *testing.T) {
	svc := NewQuestionService(&stubQuestionRepo{})

	tests := []struct {
		name    string
		in      CreateQuestionInput
		wantErr string
	}{
		{
			name:    "missing title",
			in:      CreateQuestionInput{Description: "desc", Difficulty: models.DifficultyEasy},
			wantErr: "Title and description are required",
		},
		{
			name:    "missing description",
			in:      CreateQuestionInput{Title: "t", Difficulty: models.DifficultyEasy},
			wantErr: "Title and description are required",
		},
		{
			name:    "bad difficulty",
			in:      CreateQuestionInput{Title: "t", Description: "d", Difficulty: "Impossible"},
			wantErr: "Difficulty must be one of Easy, Medium, Hard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQuestionService_Create_NormalizesTags(t *testing.T) {
	var created *models.Question
	repo := &stubQuestionRepo{
		createFn: func(_ context.Context, q *models.Question) error {
			q.ID = 7
			created = q
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Question, error) {
			return created, nil
		},
	}
	svc := NewQuestionService(repo)

	q, err := svc.Create(context.Background(), CreateQuestionInput{
		UserID:      1,
		Title:       "How do streams work?",
		Description: "Details here",
		Difficulty:  models.DifficultyMedium,
		Tags:        []string{" java ", "", "streams", "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"java", "streams"}, q.Tags)
}

func TestQuestionService_Update_OwnershipEnforced(t *testing.T) {
	repo := &stubQuestionRepo{
		getByIDFn: func(_ context.Context, id uint) (*models.Question, error) {
			return &models.Question{ID: id, UserID: 1}, nil
		},
	}
	svc := NewQuestionService(repo)

	_, err := svc.Update(context.Background(), UpdateQuestionInput{
		UserID:      2,
		QuestionID:  5,
		Title:       "t",
		Description: "d",
		Difficulty:  models.DifficultyEasy,
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestQuestionService_Delete_OwnershipEnforced(t *testing.T) {
	deleted := false
	repo := &stubQuestionRepo{
		getByIDFn: func(_ context.Context, id uint) (*models.Question, error) {
			return &models.Question{ID: id, UserID: 1}, nil
		},
		deleteFn: func(_ context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewQuestionService(repo)

	err := svc.Delete(context.Background(), 5, 2)
	require.Error(t, err)
	assert.False(t, deleted)

	require.NoError(t, svc.Delete(context.Background(), 5, 1))
	assert.True(t, deleted)
}
