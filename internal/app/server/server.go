package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"francoggm/payment-service/internal/app/payment"
	"francoggm/payment-service/internal/app/server/handlers"
	"francoggm/payment-service/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	cfg        *config.Config
	router     *chi.Mux
	handlers   *handlers.Handlers
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(cfg *config.Config, paymentService *payment.Service, logger *slog.Logger) *Server {
	srv := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		handlers: handlers.NewHandlers(paymentService, logger),
		logger:   logger,
	}

	srv.registerRoutes()
	srv.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: srv.router,
	}

	return srv
}

func (s *Server) registerRoutes() {
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api/payments", func(r chi.Router) {
		r.Post("/process", s.handlers.ProcessPayment)
		r.Get("/status/{paymentId}", s.handlers.GetPaymentStatus)
		r.Get("/health", s.handlers.Health)
	})
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("server starting", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
