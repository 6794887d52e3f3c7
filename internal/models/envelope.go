package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the wire shape every API response follows:
// {success, message, data}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// AppError is a business-level error carried up to the response layer.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// Respond writes a success envelope.
func Respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithError writes a failure envelope. AppError messages are surfaced
// verbatim; other errors pass through their Error() string.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	message := "Internal server error"
	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	} else if err != nil {
		message = err.Error()
	}
	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: message,
		Data:    nil,
	})
}
