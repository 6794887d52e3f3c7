package server

import (
	"strconv"
	"strings"
	"time"

	"javaconnect/internal/middleware"
	"javaconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// generateToken creates a signed JWT for the given user.
func (s *Server) generateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "javaconnect-api",
		"aud": "javaconnect-client",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// Register creates a new user account. The frontend sends credentials as
// query parameters rather than a JSON body.
func (s *Server) Register(c *fiber.Ctx) error {
	userName := strings.TrimSpace(c.Query("userName"))
	email := strings.TrimSpace(c.Query("email"))
	password := c.Query("password")

	if userName == "" || email == "" || password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userName, email and password are required"))
	}
	if len(userName) < 3 || len(userName) > 30 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username must be between 3 and 30 characters"))
	}
	if !strings.Contains(email, "@") {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid email address"))
	}
	if len(password) < 8 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Password must be at least 8 characters"))
	}

	ctx := c.UserContext()
	if existing, err := s.userRepo.GetByUserName(ctx, userName); err != nil {
		return respondServiceError(c, err)
	} else if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("Username already taken"))
	}
	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return respondServiceError(c, err)
	} else if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("Email already registered"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return respondServiceError(c, err)
	}

	user := &models.User{
		UserName: userName,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "user registered", "user_name", userName)
	return models.Respond(c, fiber.StatusCreated, "Registration successful", user)
}

// Login authenticates a user and returns their profile with a bearer token.
func (s *Server) Login(c *fiber.Ctx) error {
	userName := strings.TrimSpace(c.Query("userName"))
	password := c.Query("password")

	if userName == "" || password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userName and password are required"))
	}

	ctx := c.UserContext()
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid username or password"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid username or password"))
	}
	if user.Blocked {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Account is blocked"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	user.Token = token

	middleware.Logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return models.Respond(c, fiber.StatusOK, "Login successful", user)
}

// ChangePassword verifies the old password and replaces it with the new one.
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	userName := strings.TrimSpace(c.Query("userName"))
	oldPassword := c.Query("oldPassword")
	newPassword := c.Query("newPassword")

	if userName == "" || oldPassword == "" || newPassword == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userName, oldPassword and newPassword are required"))
	}
	if len(newPassword) < 8 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Password must be at least 8 characters"))
	}

	ctx := c.UserContext()
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid username or password"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid username or password"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return respondServiceError(c, err)
	}
	user.Password = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "password changed", "user_id", user.ID)
	return models.Respond(c, fiber.StatusOK, "Password updated", nil)
}
