package server

import (
	"javaconnect/internal/models"
	"javaconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postAnswerRequest struct {
	QuestionID uint   `json:"questionId"`
	Content    string `json:"content"`
}

type editAnswerRequest struct {
	AnswerID uint   `json:"answerId"`
	Content  string `json:"content"`
}

// PostAnswer creates an answer on a question.
func (s *Server) PostAnswer(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	var req postAnswerRequest
	if err := c.BodyParser(&req); err != nil || req.QuestionID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	answer, err := s.answerService.Post(c.UserContext(), service.PostAnswerInput{
		UserID:     userID,
		QuestionID: req.QuestionID,
		Content:    req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, "Answer posted", answer)
}

// EditAnswer replaces the content of an existing answer. The answer id comes
// in the body; the route only carries the acting user.
func (s *Server) EditAnswer(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	var req editAnswerRequest
	if err := c.BodyParser(&req); err != nil || req.AnswerID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	answer, err := s.answerService.Edit(c.UserContext(), service.EditAnswerInput{
		UserID:   userID,
		AnswerID: req.AnswerID,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Answer updated", answer)
}

// DeleteAnswer removes an answer together with its feedback and flags.
func (s *Server) DeleteAnswer(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}
	answerID, err := parseID(c, "answerId")
	if err != nil {
		return nil
	}

	if err := s.answerService.Delete(c.UserContext(), answerID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Answer deleted", nil)
}
