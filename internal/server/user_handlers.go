package server

import (
	"javaconnect/internal/models"
	"javaconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// GetProfile returns a user's public profile.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.Profile(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Profile retrieved", user)
}

// UpdateProfile changes the caller's own username or email.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		ActingUserID: authUserID(c),
		UserID:       userID,
		UserName:     req.UserName,
		Email:        req.Email,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Profile updated", user)
}
