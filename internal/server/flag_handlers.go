package server

import (
	"javaconnect/internal/models"
	"javaconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

type submitFlagRequest struct {
	FlagedOnQuestionID *uint  `json:"flagedOnQuestionId"`
	FlagedOnAnswerID   *uint  `json:"flagedOnAnswerId"`
	FlagedOnFeedBackID *uint  `json:"flagedOnFeedBackId"`
	FlagedRession      string `json:"flagedRession"`
}

// checkFlagTarget extracts the single target from the query string. Exactly
// one of questionId, answerId, feedbackId must be present.
func checkFlagTarget(c *fiber.Ctx) (models.FlagTarget, uint, bool) {
	targets := 0
	var target models.FlagTarget
	var id int
	if v := c.QueryInt("questionId"); v > 0 {
		targets++
		target, id = models.FlagTargetQuestion, v
	}
	if v := c.QueryInt("answerId"); v > 0 {
		targets++
		target, id = models.FlagTargetAnswer, v
	}
	if v := c.QueryInt("feedbackId"); v > 0 {
		targets++
		target, id = models.FlagTargetFeedback, v
	}
	if targets != 1 {
		return "", 0, false
	}
	return target, uint(id), true
}

// CheckFlag looks up the caller's active flag on a content item. A missing
// flag is answered with 404 so clients can tell "not flagged" apart from an
// actual failure.
func (s *Server) CheckFlag(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	target, targetID, ok := checkFlagTarget(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Exactly one of questionId, answerId or feedbackId is required"))
	}

	flag, err := s.flagService.Check(c.UserContext(), userID, target, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if flag == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			&models.AppError{Code: "NOT_FOUND", Message: "No flag found"})
	}
	return models.Respond(c, fiber.StatusOK, "Flag found", flag)
}

// SubmitFlag records a moderation flag on one content item.
func (s *Server) SubmitFlag(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	var req submitFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	flag, err := s.flagService.Submit(c.UserContext(), service.SubmitFlagInput{
		UserID:     userID,
		QuestionID: req.FlagedOnQuestionID,
		AnswerID:   req.FlagedOnAnswerID,
		FeedbackID: req.FlagedOnFeedBackID,
		Reason:     req.FlagedRession,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, "Flag submitted", flag)
}

// Unflag removes a flag previously created by the caller.
func (s *Server) Unflag(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}
	flagID, err := parseID(c, "flagId")
	if err != nil {
		return nil
	}

	if err := s.flagService.Unflag(c.UserContext(), flagID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Flag removed", nil)
}
