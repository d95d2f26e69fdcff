package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/oarkflow/xid"

	"github.com/Autsav24/EDIX12/pkg/config"
	"github.com/Autsav24/EDIX12/pkg/eligibility"
)

// Server exposes the build, parse and validate operations over HTTP.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	profiles map[string]eligibility.Profile
	counter  *ControlCounter
}

// New builds a server from the given configuration, loading the payer
// profile table up front so a bad profiles file fails at startup rather
// than on the first request.
func New(cfg *config.Config) (*Server, error) {
	profiles, err := cfg.Profiles()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	s := &Server{
		app:      app,
		cfg:      cfg,
		profiles: profiles,
		counter:  NewControlCounter(cfg.ControlFile),
	}
	s.setupRoutes()
	return s, nil
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the listener fails or is shut down.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Listen)
}

func (s *Server) setupRoutes() {
	s.app.Use(cors.New())
	s.app.Use(logger.New())
	s.app.Use(func(c *fiber.Ctx) error {
		id := xid.New().String()
		c.Locals(requestIDKey, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	})

	s.app.Get("/healthz", s.healthHandler)
	s.app.Get("/v1/profiles", s.profilesHandler)

	s.app.Post("/v1/eligibility/270", s.build270Handler)
	s.app.Post("/v1/eligibility/271/parse", s.parse271Handler)

	s.app.Post("/v1/claims/276", s.build276Handler)
	s.app.Post("/v1/claims/277/parse", s.parse277Handler)
	s.app.Post("/v1/claims/837", s.build837Handler)

	s.app.Post("/v1/remit/835", s.build835Handler)
	s.app.Post("/v1/remit/835/parse", s.parse835Handler)

	s.app.Post("/v1/validate", s.validateHandler)
}
