// Package httpapi exposes the server's REST endpoints: authentication,
// per-user task CRUD, and the best-effort chat pass-through.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/logging"
	"github.com/dmitrijs2005/taskhub/internal/server/services"
)

type HTTPServer struct {
	address     string
	logger      logging.Logger
	users       *services.UserService
	tasks       *services.TaskService
	chat        *services.ChatService
	jwtSecret   []byte
	corsOrigins []string
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, ts *services.TaskService, cs *services.ChatService, secretKey string, corsOrigins []string) (*HTTPServer, error) {
	return &HTTPServer{
		address:     a,
		logger:      l.With("module", "http_server"),
		users:       us,
		tasks:       ts,
		chat:        cs,
		jwtSecret:   []byte(secretKey),
		corsOrigins: corsOrigins,
	}, nil
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
