package client

import (
	"context"
	"strings"

	"javaconnect/internal/models"
)

// QuestionForm is the create/edit form on the "my questions" page. Tags is
// the raw comma-separated input.
type QuestionForm struct {
	Title       string
	Description string
	Difficulty  string
	Tags        string
}

// MyQuestions drives the page where users manage their own questions.
type MyQuestions struct {
	client  *Client
	confirm ConfirmFunc

	Questions []models.Question

	// editingQuestionID selects what Submit does: zero creates, non-zero
	// updates that question.
	editingQuestionID uint
	Form              QuestionForm
}

// NewMyQuestions creates the view-model. confirm guards deletes.
func NewMyQuestions(client *Client, confirm ConfirmFunc) *MyQuestions {
	return &MyQuestions{client: client, confirm: confirm}
}

func (m *MyQuestions) requireLogin() (*Session, error) {
	session := m.client.Session().Current()
	if session == nil || session.Token == "" {
		return nil, ErrNotLoggedIn
	}
	return session, nil
}

// Load fetches the caller's questions.
func (m *MyQuestions) Load(ctx context.Context) error {
	session, err := m.requireLogin()
	if err != nil {
		return err
	}
	questions, err := m.client.GetUserQuestions(ctx, session.User.ID)
	if err != nil {
		return err
	}
	m.Questions = questions
	return nil
}

// StartEdit prefills the form from an existing question. Tags are rejoined
// into the comma-separated form value.
func (m *MyQuestions) StartEdit(question models.Question) {
	m.editingQuestionID = question.ID
	m.Form = QuestionForm{
		Title:       question.Title,
		Description: question.Description,
		Difficulty:  string(question.Difficulty),
		Tags:        strings.Join(question.Tags, ", "),
	}
}

// CancelEdit returns the form to create mode.
func (m *MyQuestions) CancelEdit() {
	m.editingQuestionID = 0
	m.Form = QuestionForm{}
}

// EditingQuestionID returns the question being edited, or zero in create mode.
func (m *MyQuestions) EditingQuestionID() uint {
	return m.editingQuestionID
}

// Submit creates or updates a question from the form, then reloads the list.
func (m *MyQuestions) Submit(ctx context.Context) error {
	session, err := m.requireLogin()
	if err != nil {
		return err
	}

	input := QuestionInput{
		Title:       m.Form.Title,
		Description: m.Form.Description,
		Difficulty:  m.Form.Difficulty,
		Tags:        models.SplitTags(m.Form.Tags),
	}

	if m.editingQuestionID != 0 {
		_, err = m.client.UpdateQuestion(ctx, m.editingQuestionID, input)
	} else {
		_, err = m.client.PostQuestion(ctx, session.User.ID, input)
	}
	if err != nil {
		return err
	}

	m.CancelEdit()
	return m.Load(ctx)
}

// Delete removes one of the caller's questions after confirmation.
func (m *MyQuestions) Delete(ctx context.Context, questionID uint) error {
	session, err := m.requireLogin()
	if err != nil {
		return err
	}
	if !m.confirm("Delete this question and all its answers?") {
		return ErrNotConfirmed
	}
	if err := m.client.DeleteQuestion(ctx, questionID, session.User.ID); err != nil {
		return err
	}
	if m.editingQuestionID == questionID {
		m.CancelEdit()
	}
	return m.Load(ctx)
}
