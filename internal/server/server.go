// Package server exposes the game manager over HTTP and websockets.
package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Server is the chessd HTTP service.
type Server struct {
	app    *fiber.App
	cfg    *config.ServerConfig
	logger *log.Logger
	h      *handler
}

// New builds the fiber app and registers all routes. A nil logger uses
// the standard logger.
func New(mgr *game.Manager, cfg *config.ServerConfig, l *log.Logger) *Server {
	if cfg == nil {
		cfg = config.NewServerConfig()
	}
	if l == nil {
		l = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		logger: l,
		h:      &handler{mgr: mgr, started: time.Now()},
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency}\n",
			Output: l.Writer(),
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	h := s.h
	app.Get("/health", h.health)

	api := app.Group("/api/v1")
	api.Use(contentTypeValidator)

	api.Post("/games", bind[CreateGameRequest](), h.createGame)
	api.Get("/games", h.listGames)
	api.Get("/games/:id", validID, h.getGame)
	api.Delete("/games/:id", validID, h.deleteGame)
	api.Get("/games/:id/moves", validID, h.legalMoves)
	api.Post("/games/:id/moves", validID, bind[MoveRequest](), h.playMove)
	api.Post("/validate", bind[ValidateRequest](), h.validateMove)

	app.Get("/ws/games/:id", validID, h.upgrade, websocket.New(s.feed))

	s.app = app
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.logger.Printf("listening on %s", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown stops accepting connections and waits up to the configured
// timeout for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout)
}
