package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// TokenParser resolves a bearer token to the user it was issued for.
type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, string, error)
}

// Identify attaches the caller's user ID to the request context when a
// valid bearer token is presented. Requests without one pass through.
type Identify struct {
	tokens         TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewIdentify creates a new Identify middleware instance.
func NewIdentify(tokens TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Identify {
	return &Identify{tokens: tokens, contextManager: contextManager, logger: logger}
}

func (m *Identify) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return c.Next()
	}

	userID, _, err := m.tokens.ParseAccessToken(tokenString)
	if err != nil || userID == uuid.Nil {
		m.logger.Debug("Identify middleware: ignoring invalid bearer token",
			"path", c.Path())
		return c.Next()
	}

	c.SetUserContext(m.contextManager.SetUserIDToContext(c.UserContext(), userID))

	m.logger.Debug("Identify middleware: caller identified",
		"path", c.Path(),
		"user_id", userID)

	return c.Next()
}
