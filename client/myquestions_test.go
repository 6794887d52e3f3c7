package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyQuestions_LoadRequiresLogin(t *testing.T) {
	api := newFakeAPI(t)
	my := NewMyQuestions(loggedOutClient(api), alwaysConfirm)

	assert.ErrorIs(t, my.Load(context.Background()), ErrNotLoggedIn)
	assert.ErrorIs(t, my.Submit(context.Background()), ErrNotLoggedIn)
	assert.ErrorIs(t, my.Delete(context.Background(), 1), ErrNotLoggedIn)
}

func TestMyQuestions_SubmitCreatesWithSplitTags(t *testing.T) {
	api := newFakeAPI(t)
	my := NewMyQuestions(loggedInClient(t, api), alwaysConfirm)

	my.Form = QuestionForm{
		Title:       "What are records?",
		Description: "Java 16 records",
		Difficulty:  "Easy",
		Tags:        " java , records ,, syntax ",
	}
	require.NoError(t, my.Submit(context.Background()))

	require.Len(t, my.Questions, 1)
	// The server stores the tags payload verbatim, so the split and trim
	// happened on this side of the wire.
	assert.Equal(t, []string{"java", "records", "syntax"}, my.Questions[0].Tags)
	// form resets to create mode
	assert.Zero(t, my.EditingQuestionID())
	assert.Empty(t, my.Form.Title)
}

func TestMyQuestions_EditRoundTrip(t *testing.T) {
	api := newFakeAPI(t)
	question := api.addQuestion("Old title", "Medium", "java", "streams")

	my := NewMyQuestions(loggedInClient(t, api), alwaysConfirm)
	require.NoError(t, my.Load(context.Background()))
	require.Len(t, my.Questions, 1)

	my.StartEdit(*question)
	assert.Equal(t, question.ID, my.EditingQuestionID())
	// tags rejoin into the comma-separated form value
	assert.Equal(t, "java, streams", my.Form.Tags)

	my.Form.Title = "New title"
	my.Form.Description = "updated"
	require.NoError(t, my.Submit(context.Background()))

	require.Len(t, my.Questions, 1)
	assert.Equal(t, "New title", my.Questions[0].Title)
	assert.Zero(t, my.EditingQuestionID())
}

func TestMyQuestions_DeleteNeedsConfirmation(t *testing.T) {
	api := newFakeAPI(t)
	question := api.addQuestion("keep me", "Easy")

	my := NewMyQuestions(loggedInClient(t, api), neverConfirm)
	require.NoError(t, my.Load(context.Background()))

	assert.ErrorIs(t, my.Delete(context.Background(), question.ID), ErrNotConfirmed)
	assert.Len(t, api.questions, 1)
}

func TestMyQuestions_DeleteConfirmed(t *testing.T) {
	api := newFakeAPI(t)
	question := api.addQuestion("doomed", "Easy")

	my := NewMyQuestions(loggedInClient(t, api), alwaysConfirm)
	require.NoError(t, my.Load(context.Background()))

	require.NoError(t, my.Delete(context.Background(), question.ID))
	assert.Empty(t, api.questions)
	assert.Empty(t, my.Questions)
}
