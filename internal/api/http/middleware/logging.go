package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// Logging logs HTTP requests and their results.
type Logging struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewLogging creates a new Logging middleware. contextManager may be nil.
func NewLogging(contextManager model.ContextManager, logger *logger.Logger) *Logging {
	return &Logging{contextManager: contextManager, logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()
	method := c.Method()
	path := c.Path()

	l.logger.Info("HTTP request started",
		"method", method,
		"path", path,
		"start_time", start.Format(time.RFC3339))

	err := c.Next()

	duration := time.Since(start)

	status := c.Response().StatusCode()
	if err != nil {
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	attrs := []any{
		"method", method,
		"path", path,
		"duration_ms", duration.Milliseconds(),
		"status", status,
	}
	if l.contextManager != nil {
		if userID, ok := l.contextManager.GetUserIDFromContext(c.UserContext()); ok {
			attrs = append(attrs, "user_id", userID)
		}
	}

	l.logger.Info("HTTP request completed", attrs...)

	if err != nil {
		l.logger.Error("HTTP request failed",
			"method", method,
			"path", path,
			"error", err.Error(),
			"status", status)
	}

	return err
}
