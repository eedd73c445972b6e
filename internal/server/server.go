// Package server exposes editing sessions and code generation over HTTP.
// Each session is an in-memory scene; nothing is persisted.
package server

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

type Server struct {
	app      *fiber.App
	sessions *Sessions
}

// New builds the fiber app and registers all routes.
func New() *Server {
	s := &Server{
		sessions: NewSessions(),
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "screenforge",
		ErrorHandler: errorHandler,
	})
	s.app.Use(recover.New())
	s.app.Use(requestLogger())

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	api := s.app.Group("/api")
	api.Post("/generate", s.Generate)

	scenes := api.Group("/scenes")
	scenes.Post("/", s.CreateScene)
	scenes.Get("/:id", s.GetScene)
	scenes.Delete("/:id", s.DeleteScene)

	scenes.Post("/:id/elements", s.AddElement)
	scenes.Patch("/:id/elements/:eid", s.UpdateElement)
	scenes.Patch("/:id/elements/:eid/style", s.UpdateElementStyle)
	scenes.Delete("/:id/elements/:eid", s.DeleteElement)

	scenes.Put("/:id/selection", s.SelectElement)
	scenes.Get("/:id/selection", s.SelectedElement)

	scenes.Get("/:id/code", s.Code)
	scenes.Get("/:id/preview.png", s.Preview)
}

// App returns the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Sessions returns the session registry.
func (s *Server) Sessions() *Sessions {
	return s.sessions
}

// Listen blocks serving on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	log.Printf("[Server] Listening on %s", addr)
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
