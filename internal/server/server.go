// Package server contains the HTTP handlers for the JavaConnect API.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"javaconnect/internal/cache"
	"javaconnect/internal/config"
	"javaconnect/internal/database"
	"javaconnect/internal/middleware"
	"javaconnect/internal/models"
	"javaconnect/internal/observability"
	"javaconnect/internal/repository"
	"javaconnect/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	app             *fiber.App
	promMiddleware  *fiberprometheus.FiberPrometheus
	userRepo        repository.UserRepository
	questionRepo    repository.QuestionRepository
	answerRepo      repository.AnswerRepository
	feedbackRepo    repository.FeedbackRepository
	flagRepo        repository.FlagRepository
	questionService *service.QuestionService
	answerService   *service.AnswerService
	feedbackService *service.FeedbackService
	flagService     *service.FlagService
	userService     *service.UserService
}

// Prometheus collectors register against the default registry, so the
// middleware is created at most once per process.
var (
	metricsOnce sync.Once
	promMW      *fiberprometheus.FiberPrometheus
)

func initMetricsOnce() *fiberprometheus.FiberPrometheus {
	metricsOnce.Do(func() {
		promMW = observability.InitMetrics("javaconnect")
	})
	return promMW
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	flagRepo := repository.NewFlagRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: nil,
		userRepo:       userRepo,
		questionRepo:   questionRepo,
		answerRepo:     answerRepo,
		feedbackRepo:   feedbackRepo,
		flagRepo:       flagRepo,
	}
	if cfg.Env != "test" {
		server.promMiddleware = initMetricsOnce()
	}
	server.questionService = service.NewQuestionService(questionRepo)
	server.answerService = service.NewAnswerService(answerRepo, questionRepo)
	server.feedbackService = service.NewFeedbackService(feedbackRepo, answerRepo)
	server.flagService = service.NewFlagService(flagRepo, questionRepo, answerRepo, feedbackRepo)
	server.userService = service.NewUserService(userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				models.NewValidationError("Too many requests, please try again later"))
		},
	}))
}

// SetupRoutes configures all routes for the application. The route shapes
// mirror the frontend contract and must not be "cleaned up".
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes (no bearer token; credentials travel as query parameters)
	auth := app.Group("/api/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Put("/changepassword", s.ChangePassword)

	// Public question listing (the only unauthenticated content route)
	app.Get("/questions/getall/questions", s.GetAllQuestions)

	authRequired := s.AuthRequired()

	// Question routes
	questions := app.Group("/questions", authRequired)
	questions.Get("/getquestion/user/:userId", s.GetUserQuestions)
	questions.Get("/getquestion/:id", s.GetQuestion)
	questions.Post("/post/question/:userId", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_question"), s.PostQuestion)
	questions.Put("/update/question/:id", s.UpdateQuestion)
	questions.Delete("/delete/question/:id/user/:userId", s.DeleteQuestion)

	// Answer routes
	answers := app.Group("/answers", authRequired)
	answers.Post("/post/answer/:userId", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_answer"), s.PostAnswer)
	answers.Put("/edit/answer/:userId", s.EditAnswer)
	answers.Delete("/delete/user/:userId/answer/:answerId", s.DeleteAnswer)

	// Feedback routes
	feedback := app.Group("/feedback", authRequired)
	feedback.Post("/post/feedback/:userId", s.PostFeedback)
	feedback.Put("/update/feedback/:userId", s.UpdateFeedback)
	feedback.Delete("/delete/:userId/:feedbackId", s.DeleteFeedback)

	// Flag routes
	flag := app.Group("/flag", authRequired)
	flag.Get("/check/:userId", s.CheckFlag)
	flag.Delete("/unflag/user/:userId/:flagId", s.Unflag)
	flag.Post("/:userId", s.SubmitFlag)

	// Profile routes
	user := app.Group("/user", authRequired)
	user.Get("/profile/:userId", s.GetProfile)
	user.Put("/update/profile/:userId", s.UpdateProfile)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The cache is optional; report but do not fail readiness.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the bearer-token authentication middleware. It stores
// the authenticated user id in c.Locals("userID").
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "javaconnect-api" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "javaconnect-client" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}
		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		// Check JTI for revocation
		if jti, exists := claims["jti"].(string); exists && jti != "" && s.redis != nil {
			isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
			if err == nil && isBlacklisted > 0 {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Token has been revoked"))
			}
		}

		c.Locals("userID", uint(userID))
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// Start starts the server.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "JavaConnect API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
