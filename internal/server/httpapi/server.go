// Package httpapi exposes the authentication flows over HTTP:
// POST /api/auth/register and POST /api/auth/login.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/matchly/internal/logging"
	"github.com/dmitrijs2005/matchly/internal/server/users"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	users   *users.Service
	logger  logging.Logger
}

func NewServer(a string, l logging.Logger, us *users.Service) *Server {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
	}
}

// Router builds the gin engine with all routes registered. Exposed separately
// so tests can drive it with httptest without binding a socket.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/auth")
	{
		api.POST("/register", s.register)
		api.POST("/login", s.login)
	}

	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
