// Package server sets up the HTTP server, router, and all route
// definitions.
//
// This is the composition root: New assembles the whole dependency chain
// in one place —
//
//	sqlite.DB → AuthService/ContactService → AuthHandler/ContactHandler → routes
//
// — so nothing else in the codebase constructs its own dependencies. The
// handlers never touch the database; the services never touch HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/z1f7/832301306-contacts-backend/internal/auth"
	"github.com/z1f7/832301306-contacts-backend/internal/handler"
	"github.com/z1f7/832301306-contacts-backend/internal/middleware"
	sqliteRepo "github.com/z1f7/832301306-contacts-backend/internal/repository/sqlite"
	"github.com/z1f7/832301306-contacts-backend/internal/service"
)

// Config holds server configuration.
type Config struct {
	Port        int
	DBPath      string // path to the SQLite database file
	FrontendDir string // directory of static assets (contacts.html lives here)
}

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown so the WAL is flushed and the file lock
// released.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server: opens the database (creating the schema if
// needed), wires services and handlers, and registers all routes.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// ROUTES:
//
//	GET    /                         → contacts.html
//	GET    /frontend/*               → static assets
//	POST   /register                 → create account
//	POST   /login                    → check credentials
//	POST   /contacts                 → add contact
//	GET    /contacts/{userID}        → list owner's contacts
//	GET    /contacts/count/{userID}  → count owner's contacts
//	PUT    /contacts/{contactID}     → update contact
//	DELETE /contacts/{contactID}     → delete contact
//
// Middleware order matters — it runs in registration order: request ID,
// real IP, panic recovery, request logging, then CORS.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// The frontend may be served from any origin (file://, a dev server,
	// another host) — no allow-list.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// === Static files ===
	// GET /frontend/app.js → serves {FrontendDir}/app.js. http.FileServer
	// answers 404 for missing files on its own.
	fileServer := http.FileServer(http.Dir(s.config.FrontendDir))
	s.router.Handle("/frontend/*", http.StripPrefix("/frontend/", fileServer))

	staticHandler := handler.NewStaticHandler(s.config.FrontendDir, s.logger)
	s.router.Get("/", staticHandler.HandleIndex)

	// === API routes ===
	// The sqlite.DB value implements both repository interfaces; each
	// service only sees the interface it needs.
	authService := service.NewAuthService(s.db, auth.NewPasswordHasher(), s.logger)
	contactService := service.NewContactService(s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	contactHandler := handler.NewContactHandler(contactService, s.logger)

	s.router.Post("/register", authHandler.HandleRegister)
	s.router.Post("/login", authHandler.HandleLogin)

	s.router.Route("/contacts", func(r chi.Router) {
		r.Post("/", contactHandler.HandleAdd)
		// The literal "count" segment must be registered alongside the
		// {userID} wildcard; chi prefers static segments, so
		// /contacts/count/3 never reaches HandleList.
		r.Get("/count/{userID}", contactHandler.HandleCount)
		r.Get("/{userID}", contactHandler.HandleList)
		r.Put("/{contactID}", contactHandler.HandleUpdate)
		r.Delete("/{contactID}", contactHandler.HandleDelete)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds to finish, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
