// Package middleware provides logging, tracing and rate limiting middleware
// for the JavaConnect API.
package middleware

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger is the global structured logger instance used throughout the application.
var Logger *slog.Logger

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UserIDKey    contextKey = "user_id"
	TraceIDKey   contextKey = "trace_id"
)

// ctxHandler is a slog.Handler that adds request-scoped context values to
// every record.
type ctxHandler struct {
	slog.Handler
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if rid, ok := ctx.Value(RequestIDKey).(string); ok {
		r.AddAttrs(slog.String("request_id", rid))
	}
	if uid, ok := ctx.Value(UserIDKey).(uint); ok {
		r.AddAttrs(slog.Any("user_id", uid))
	}
	if tid, ok := ctx.Value(TraceIDKey).(string); ok {
		r.AddAttrs(slog.String("trace_id", tid))
	}
	return h.Handler.Handle(ctx, r)
}

func init() {
	var handler slog.Handler
	level := slog.LevelInfo

	if os.Getenv("APP_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		// Pretty text output for local development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	Logger = slog.New(&ctxHandler{handler})
}

// ContextMiddleware injects request ID, user ID and trace ID from Fiber locals
// into the request context so the context-aware logger can pick them up in
// deeper layers.
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if rid, ok := c.Locals("requestid").(string); ok {
			ctx = context.WithValue(ctx, RequestIDKey, rid)
		}
		if uid, ok := c.Locals("userID").(uint); ok {
			ctx = context.WithValue(ctx, UserIDKey, uid)
		}
		if tid, ok := c.Locals("traceID").(string); ok {
			ctx = context.WithValue(ctx, TraceIDKey, tid)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// StructuredLogger returns a Fiber middleware logging each request via slog.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []any{
			slog.Int("status", c.Response().StatusCode()),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Get("User-Agent")),
		}

		if err != nil {
			fields = append(fields, slog.String("error", err.Error()))
			Logger.ErrorContext(c.UserContext(), "request failed", fields...)
		} else {
			Logger.InfoContext(c.UserContext(), "request processed", fields...)
		}

		return err
	}
}
