package server

import (
	"javaconnect/internal/models"
	"javaconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postFeedbackRequest struct {
	AnswerID uint   `json:"answerId"`
	Feedback string `json:"feedback"`
}

type updateFeedbackRequest struct {
	FeedbackID uint   `json:"feedbackId"`
	Feedback   string `json:"feedback"`
}

// PostFeedback attaches feedback to an answer. The owning question id is
// derived from the answer server-side.
func (s *Server) PostFeedback(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	var req postFeedbackRequest
	if err := c.BodyParser(&req); err != nil || req.AnswerID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	feedback, err := s.feedbackService.Post(c.UserContext(), service.PostFeedbackInput{
		UserID:   userID,
		AnswerID: req.AnswerID,
		Content:  req.Feedback,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, "Feedback posted", feedback)
}

// UpdateFeedback replaces the content of existing feedback.
func (s *Server) UpdateFeedback(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	var req updateFeedbackRequest
	if err := c.BodyParser(&req); err != nil || req.FeedbackID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	feedback, err := s.feedbackService.Update(c.UserContext(), service.UpdateFeedbackInput{
		UserID:     userID,
		FeedbackID: req.FeedbackID,
		Content:    req.Feedback,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Feedback updated", feedback)
}

// DeleteFeedback removes feedback and any flags on it.
func (s *Server) DeleteFeedback(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}
	feedbackID, err := parseID(c, "feedbackId")
	if err != nil {
		return nil
	}

	if err := s.feedbackService.Delete(c.UserContext(), feedbackID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Feedback deleted", nil)
}
