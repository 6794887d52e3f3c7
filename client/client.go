// Package client is the Go client for the JavaConnect API. It mirrors what
// the web frontend does: a thin HTTP wrapper that attaches the session bearer
// token, plus view-model types for the question list, the question detail
// workflow and the caller's own questions.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"javaconnect/internal/models"
)

// APIError is a business-level failure reported by the server envelope. It is
// distinct from transport errors (connection refused, timeouts), which come
// back as plain wrapped errors.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client wraps HTTP access to the API. All requests carry the session token
// except auth calls (under /api/) and the public question listing.
type Client struct {
	baseURL string
	http    *http.Client
	session *SessionStore
}

// NewClient creates a Client. The session store may be shared with other
// components that need login-state notifications.
func NewClient(baseURL string, session *SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
}

// Session exposes the underlying session store.
func (c *Client) Session() *SessionStore {
	return c.session
}

// skipAuth reports whether a request path is served without a bearer token.
func skipAuth(method, path string) bool {
	if strings.HasPrefix(path, "/api/") {
		return true
	}
	return method == http.MethodGet && path == "/questions/getall/questions"
}

// do executes a request, decodes the response envelope and unmarshals its
// data field into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !skipAuth(method, path) {
		if session := c.session.Current(); session != nil && session.Token != "" {
			req.Header.Set("Authorization", "Bearer "+session.Token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 || !envelope.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	return nil
}

// Login authenticates and stores the resulting session. Credentials travel as
// query parameters, matching the server contract.
func (c *Client) Login(ctx context.Context, userName, password string) (*models.User, error) {
	query := url.Values{}
	query.Set("userName", userName)
	query.Set("password", password)

	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", query, nil, &user); err != nil {
		return nil, err
	}
	c.session.Set(&Session{User: user, Token: user.Token})
	return &user, nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, userName, email, password string) (*models.User, error) {
	query := url.Values{}
	query.Set("userName", userName)
	query.Set("email", email)
	query.Set("password", password)

	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", query, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the account password after verifying the old one.
func (c *Client) ChangePassword(ctx context.Context, userName, oldPassword, newPassword string) error {
	query := url.Values{}
	query.Set("userName", userName)
	query.Set("oldPassword", oldPassword)
	query.Set("newPassword", newPassword)
	return c.do(ctx, http.MethodPut, "/api/auth/changepassword", query, nil, nil)
}

// Logout clears the local session. There is no server-side call.
func (c *Client) Logout() {
	c.session.Clear()
}

// GetAllQuestions fetches the public question listing.
func (c *Client) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := c.do(ctx, http.MethodGet, "/questions/getall/questions", nil, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestion fetches one question with its answer and feedback threads.
func (c *Client) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/questions/getquestion/%d", id), nil, nil, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// GetUserQuestions fetches the questions posted by a user.
func (c *Client) GetUserQuestions(ctx context.Context, userID uint) ([]models.Question, error) {
	var questions []models.Question
	path := fmt.Sprintf("/questions/getquestion/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// QuestionInput is the create/update payload for a question. Tags travel as
// an already-split list; the form's comma-separated input is split and
// trimmed before the request goes out.
type QuestionInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
}

// PostQuestion creates a question owned by the given user.
func (c *Client) PostQuestion(ctx context.Context, userID uint, in QuestionInput) (*models.Question, error) {
	var question models.Question
	path := fmt.Sprintf("/questions/post/question/%d", userID)
	if err := c.do(ctx, http.MethodPost, path, nil, in, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion edits a question.
func (c *Client) UpdateQuestion(ctx context.Context, questionID uint, in QuestionInput) (*models.Question, error) {
	var question models.Question
	path := fmt.Sprintf("/questions/update/question/%d", questionID)
	if err := c.do(ctx, http.MethodPut, path, nil, in, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes a question.
func (c *Client) DeleteQuestion(ctx context.Context, questionID, userID uint) error {
	path := fmt.Sprintf("/questions/delete/question/%d/user/%d", questionID, userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// PostAnswer creates an answer on a question.
func (c *Client) PostAnswer(ctx context.Context, userID, questionID uint, content string) (*models.Answer, error) {
	var answer models.Answer
	path := fmt.Sprintf("/answers/post/answer/%d", userID)
	body := map[string]any{"questionId": questionID, "content": content}
	if err := c.do(ctx, http.MethodPost, path, nil, body, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// EditAnswer replaces an answer's content.
func (c *Client) EditAnswer(ctx context.Context, userID, answerID uint, content string) (*models.Answer, error) {
	var answer models.Answer
	path := fmt.Sprintf("/answers/edit/answer/%d", userID)
	body := map[string]any{"answerId": answerID, "content": content}
	if err := c.do(ctx, http.MethodPut, path, nil, body, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// DeleteAnswer removes an answer.
func (c *Client) DeleteAnswer(ctx context.Context, userID, answerID uint) error {
	path := fmt.Sprintf("/answers/delete/user/%d/answer/%d", userID, answerID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// PostFeedback attaches feedback to an answer.
func (c *Client) PostFeedback(ctx context.Context, userID, answerID uint, content string) (*models.Feedback, error) {
	var feedback models.Feedback
	path := fmt.Sprintf("/feedback/post/feedback/%d", userID)
	body := map[string]any{"answerId": answerID, "feedback": content}
	if err := c.do(ctx, http.MethodPost, path, nil, body, &feedback); err != nil {
		return nil, err
	}
	return &feedback, nil
}

// UpdateFeedback replaces feedback content.
func (c *Client) UpdateFeedback(ctx context.Context, userID, feedbackID uint, content string) (*models.Feedback, error) {
	var feedback models.Feedback
	path := fmt.Sprintf("/feedback/update/feedback/%d", userID)
	body := map[string]any{"feedbackId": feedbackID, "feedback": content}
	if err := c.do(ctx, http.MethodPut, path, nil, body, &feedback); err != nil {
		return nil, err
	}
	return &feedback, nil
}

// DeleteFeedback removes feedback.
func (c *Client) DeleteFeedback(ctx context.Context, userID, feedbackID uint) error {
	path := fmt.Sprintf("/feedback/delete/%d/%d", userID, feedbackID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// FlagTargetKind mirrors the three kinds of flaggable content.
type FlagTargetKind string

const (
	FlagQuestion FlagTargetKind = "questionId"
	FlagAnswer   FlagTargetKind = "answerId"
	FlagFeedback FlagTargetKind = "feedbackId"
)

// CheckFlag looks up the caller's flag on one content item. A 404 means the
// item is simply not flagged and is returned as (nil, nil); transport
// failures and server errors stay errors so callers never mistake an outage
// for "unflagged".
func (c *Client) CheckFlag(ctx context.Context, userID uint, kind FlagTargetKind, targetID uint) (*models.Flag, error) {
	query := url.Values{}
	query.Set(string(kind), fmt.Sprintf("%d", targetID))

	var flag models.Flag
	path := fmt.Sprintf("/flag/check/%d", userID)
	err := c.do(ctx, http.MethodGet, path, query, nil, &flag)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if flag.ID == 0 {
		return nil, nil
	}
	return &flag, nil
}

// SubmitFlag flags one content item with a reason.
func (c *Client) SubmitFlag(ctx context.Context, userID uint, kind FlagTargetKind, targetID uint, reason string) (*models.Flag, error) {
	body := map[string]any{"flagedRession": reason}
	switch kind {
	case FlagQuestion:
		body["flagedOnQuestionId"] = targetID
	case FlagAnswer:
		body["flagedOnAnswerId"] = targetID
	case FlagFeedback:
		body["flagedOnFeedBackId"] = targetID
	default:
		return nil, fmt.Errorf("unknown flag target kind %q", kind)
	}

	var flag models.Flag
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/flag/%d", userID), nil, body, &flag); err != nil {
		return nil, err
	}
	return &flag, nil
}

// Unflag removes a flag by id.
func (c *Client) Unflag(ctx context.Context, userID, flagID uint) error {
	path := fmt.Sprintf("/flag/unflag/user/%d/%d", userID, flagID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Profile fetches a user's profile.
func (c *Client) Profile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("/user/profile/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the caller's username or email. The updated user is
// written back into the session when it is the logged-in user.
func (c *Client) UpdateProfile(ctx context.Context, userID uint, userName, email string) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("/user/update/profile/%d", userID)
	body := map[string]any{"userName": userName, "email": email}
	if err := c.do(ctx, http.MethodPut, path, nil, body, &user); err != nil {
		return nil, err
	}
	if session := c.session.Current(); session != nil && session.User.ID == user.ID {
		user.Token = session.Token
		c.session.Set(&Session{User: user, Token: session.Token})
	}
	return &user, nil
}
