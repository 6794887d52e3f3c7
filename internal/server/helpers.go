package server

import (
	"errors"

	"javaconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// errResponseWritten signals that the handler already wrote a response and the
// caller should return nil to Fiber.
var errResponseWritten = errors.New("response already written")

// parseID extracts and validates a positive numeric route parameter. On
// failure it writes the error envelope and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

func humanizeParam(param string) string {
	switch param {
	case "id":
		return "ID"
	case "userId":
		return "user ID"
	case "answerId":
		return "answer ID"
	case "feedbackId":
		return "feedback ID"
	case "flagId":
		return "flag ID"
	default:
		return param
	}
}

// authUserID returns the user id stored by the auth middleware.
func authUserID(c *fiber.Ctx) uint {
	uid, _ := c.Locals("userID").(uint)
	return uid
}

// requireSelf checks the :userId route parameter against the authenticated
// user. The frontend always sends its own id; anything else is forgery.
func requireSelf(c *fiber.Ctx, param string) (uint, error) {
	userID, err := parseID(c, param)
	if err != nil {
		return 0, err
	}
	if userID != authUserID(c) {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You cannot act on behalf of another user"))
		return 0, errResponseWritten
	}
	return userID, nil
}

// respondServiceError maps service-layer errors onto HTTP statuses and writes
// the failure envelope.
func respondServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errResponseWritten) {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			&models.AppError{Code: "NOT_FOUND", Message: "Resource not found"})
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case "UNAUTHORIZED":
			return models.RespondWithError(c, fiber.StatusForbidden, appErr)
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case "CONFLICT":
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
