package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpctx "github.com/dtroode/whiskersm-users/internal/api/http/context"
	"github.com/dtroode/whiskersm-users/internal/api/http/handler"
	"github.com/dtroode/whiskersm-users/internal/api/http/middleware"
	"github.com/dtroode/whiskersm-users/internal/logger"
)

var corsMethods = strings.Join([]string{
	fiber.MethodGet,
	fiber.MethodHead,
	fiber.MethodPut,
	fiber.MethodPatch,
	fiber.MethodPost,
	fiber.MethodDelete,
}, ",")

// Router wires HTTP handlers and middleware for the users API.
type Router struct {
	userService handler.UserService
	authService handler.AuthService
	tokens      middleware.TokenParser
	frontendURL string
	logger      *logger.Logger
}

// New creates a new Router instance.
//
// Parameters:
//   - userService: The user lifecycle service
//   - authService: The sign-in service
//   - tokens: Parser for bearer tokens presented by callers
//   - frontendURL: Origin allowed by CORS
//   - logger: The logger for request logging
func New(
	userService handler.UserService,
	authService handler.AuthService,
	tokens middleware.TokenParser,
	frontendURL string,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService: userService,
		authService: authService,
		tokens:      tokens,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Register builds the fiber application with middleware and routes.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "whiskersm-users",
		ErrorHandler:          handler.ErrorHandler,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	ctxMgr := httpctx.NewManager()
	logging := middleware.NewLogging(ctxMgr, r.logger)
	identify := middleware.NewIdentify(r.tokens, ctxMgr, r.logger)

	app.Use(recover.New())
	app.Use(logging.Handle)
	app.Use(cors.New(r.corsConfig()))
	app.Use(identify.Handle)

	r.registerUserRoutes(app)
	r.registerAuthRoutes(app)

	return app
}

func (r *Router) corsConfig() cors.Config {
	// fiber refuses credentials with a wildcard origin
	return cors.Config{
		AllowOrigins:     r.frontendURL,
		AllowMethods:     corsMethods,
		AllowCredentials: r.frontendURL != "*",
	}
}

func (r *Router) registerUserRoutes(app *fiber.App) {
	h := handler.NewUser(r.userService, r.logger)

	users := app.Group("/users")
	users.Post("/invite", h.Invite)
	users.Post("/create", h.Create)
	users.Get("", h.FindAll)
	users.Get("/email/:email", h.FindByEmail)
	users.Get("/:id", h.FindByID)
	users.Patch("/:id/activation", h.Activate)
	users.Put("/:id", h.Update)
	users.Delete("/:id", h.Delete)
}

func (r *Router) registerAuthRoutes(app *fiber.App) {
	h := handler.NewAuth(r.authService, r.logger)

	auth := app.Group("/auth")
	auth.Post("/login", h.SignIn)
}
