package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"javaconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFlag_NotFlaggedIs404(t *testing.T) {
	srv, app, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	question := seedQuestion(t, db, alice.ID, "unflagged question")

	path := fmt.Sprintf("/flag/check/%d?questionId=%d", alice.ID, question.ID)
	resp := doRequest(t, app, http.MethodGet, path, authToken(t, srv, alice.ID), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	env, _ := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
}

func TestCheckFlag_RequiresExactlyOneTarget(t *testing.T) {
	srv, app, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	token := authToken(t, srv, alice.ID)

	tests := []string{
		fmt.Sprintf("/flag/check/%d", alice.ID),
		fmt.Sprintf("/flag/check/%d?questionId=1&answerId=2", alice.ID),
	}
	for _, path := range tests {
		resp := doRequest(t, app, http.MethodGet, path, token, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestFlagRoundTrip(t *testing.T) {
	srv, app, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	question := seedQuestion(t, db, alice.ID, "question to flag")
	token := authToken(t, srv, bob.ID)

	// submit
	body := jsonBody(t, map[string]any{
		"flagedOnQuestionId": question.ID,
		"flagedRession":      "inappropriate",
	})
	resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/flag/%d", bob.ID), token, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, data := decodeEnvelope(t, resp)
	var flag models.Flag
	require.NoError(t, json.Unmarshal(data, &flag))
	require.NotZero(t, flag.ID)
	assert.Equal(t, "inappropriate", flag.FlagedRession)

	// check now finds it
	checkPath := fmt.Sprintf("/flag/check/%d?questionId=%d", bob.ID, question.ID)
	resp = doRequest(t, app, http.MethodGet, checkPath, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, data = decodeEnvelope(t, resp)
	var found models.Flag
	require.NoError(t, json.Unmarshal(data, &found))
	assert.Equal(t, flag.ID, found.ID)

	// unflag
	unflagPath := fmt.Sprintf("/flag/unflag/user/%d/%d", bob.ID, flag.ID)
	resp = doRequest(t, app, http.MethodDelete, unflagPath, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// back to not flagged
	resp = doRequest(t, app, http.MethodGet, checkPath, token, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitFlag_DuplicateRejected(t *testing.T) {
	srv, app, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	question := seedQuestion(t, db, alice.ID, "q")
	token := authToken(t, srv, bob.ID)

	body := map[string]any{
		"flagedOnQuestionId": question.ID,
		"flagedRession":      "spam",
	}
	resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/flag/%d", bob.ID), token, jsonBody(t, body))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, fmt.Sprintf("/flag/%d", bob.ID), token, jsonBody(t, body))
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSubmitFlag_RejectsMultipleTargets(t *testing.T) {
	srv, app, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	token := authToken(t, srv, alice.ID)

	body := jsonBody(t, map[string]any{
		"flagedOnQuestionId": 1,
		"flagedOnAnswerId":   2,
		"flagedRession":      "spam",
	})
	resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/flag/%d", alice.ID), token, body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUnflag_OnlyOwner(t *testing.T) {
	srv, app, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	question := seedQuestion(t, db, alice.ID, "q")

	flag := &models.Flag{FlagedByID: bob.ID, FlagedOnQuestionID: &question.ID, FlagedRession: "spam"}
	require.NoError(t, db.Create(flag).Error)

	path := fmt.Sprintf("/flag/unflag/user/%d/%d", alice.ID, flag.ID)
	resp := doRequest(t, app, http.MethodDelete, path, authToken(t, srv, alice.ID), nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUnflag_MissingFlagIs404(t *testing.T) {
	srv, app, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")

	path := fmt.Sprintf("/flag/unflag/user/%d/12345", alice.ID)
	resp := doRequest(t, app, http.MethodDelete, path, authToken(t, srv, alice.ID), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
