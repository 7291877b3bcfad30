package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"NeonSkills/internal/config"
	"NeonSkills/internal/handlers/health"
	"NeonSkills/internal/handlers/landing"
	"NeonSkills/internal/logger"
	"NeonSkills/internal/middleware"
	"NeonSkills/internal/services"
	"NeonSkills/web"
)

type Server struct {
	config   config.Config
	services *services.Services
	log      zerolog.Logger
}

func New(cfg config.Config, svc *services.Services, log zerolog.Logger) *Server {
	return &Server{
		config:   cfg,
		services: svc,
		log:      log,
	}
}

// Handler returns the full routing tree wrapped in the middleware stack.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	// Health check endpoint
	mux.Handle("GET /health", health.New(s.log))

	// The one page
	mux.Handle("GET /{$}", landing.New(s.services.Catalog, s.log))

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging(s.log),
		middleware.Recover(s.log),
	)
}

func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
		ErrorLog:     log.New(&logger.JSONLogger{Logger: s.log}, "", 0),
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer().ListenAndServe()
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := s.httpServer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run listens on the configured port and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.config.Port)
	if err != nil {
		return err
	}
	s.log.Info().Str("addr", ln.Addr().String()).Msgf("Serving on port %s...", s.config.Port)
	return s.Serve(ctx, ln)
}
