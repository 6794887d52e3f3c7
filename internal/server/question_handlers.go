package server

import (
	"javaconnect/internal/models"
	"javaconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// questionRequest is the JSON body for create and update. Tags arrive as an
// already-split list; clients break the comma-separated form input apart
// before sending.
type questionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
}

// GetAllQuestions returns every question with its answer count. This is the
// one content route that works without a token.
func (s *Server) GetAllQuestions(c *fiber.Ctx) error {
	questions, err := s.questionService.ListAll(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Questions retrieved", questions)
}

// GetQuestion returns one question with its full answer and feedback threads.
func (s *Server) GetQuestion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	question, err := s.questionService.Get(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Question retrieved", question)
}

// GetUserQuestions returns the questions posted by a user.
func (s *Server) GetUserQuestions(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return nil
	}

	questions, err := s.questionService.ListByUser(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Questions retrieved", questions)
}

// PostQuestion creates a question owned by the authenticated user.
func (s *Server) PostQuestion(c *fiber.Ctx) error {
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	question, err := s.questionService.Create(c.UserContext(), service.CreateQuestionInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  models.Difficulty(req.Difficulty),
		Tags:        req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, "Question posted", question)
}

// UpdateQuestion edits a question. Ownership is enforced in the service.
func (s *Server) UpdateQuestion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	question, err := s.questionService.Update(c.UserContext(), service.UpdateQuestionInput{
		UserID:      authUserID(c),
		QuestionID:  id,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  models.Difficulty(req.Difficulty),
		Tags:        req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Question updated", question)
}

// DeleteQuestion removes a question and everything hanging off it.
func (s *Server) DeleteQuestion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := requireSelf(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.questionService.Delete(c.UserContext(), id, userID); err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Question deleted", nil)
}
