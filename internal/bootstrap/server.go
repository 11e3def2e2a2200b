package bootstrap

import (
	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mlog"
	"github.com/gofiber/fiber/v2"
)

// Server represents the http server for the stockbook service.
type Server struct {
	app           *fiber.App
	serverAddress string
	mlog.Logger
}

// ServerAddress returns is a convenience method to return the server address.
func (s *Server) ServerAddress() string {
	return s.serverAddress
}

// NewServer creates an instance of Server.
func NewServer(cfg *Config, app *fiber.App, logger mlog.Logger) *Server {
	return &Server{
		app:           app,
		serverAddress: cfg.ServerAddress,
		Logger:        logger,
	}
}

// Run runs the server.
func (s *Server) Run(l *pkg.Launcher) error {
	defer func() {
		if err := s.Logger.Sync(); err != nil {
			s.Logger.Errorf("Failed to sync logger: %s", err)
		}
	}()

	if err := s.app.Listen(s.ServerAddress()); err != nil {
		return pkg.ValidateInternalError(err, "Server")
	}

	return nil
}
