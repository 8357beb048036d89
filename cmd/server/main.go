// Persona chat server: intent-routing demo chatbot with country lookups.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/personachat/personachat/internal/agent"
	"github.com/personachat/personachat/internal/api"
	"github.com/personachat/personachat/internal/config"
	"github.com/personachat/personachat/internal/country"
	"github.com/personachat/personachat/internal/domain"
	"github.com/personachat/personachat/internal/identity"
	"github.com/personachat/personachat/internal/middleware"
	"github.com/personachat/personachat/internal/store"
	"github.com/personachat/personachat/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "agent_mode", cfg.AgentMode, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close feedback store", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	lookup := country.NewClient(cfg.CountryAPIURL, cfg.LookupTimeout)

	// The factory decides which responder backs each session.
	var factory agent.Factory
	if cfg.AgentMode == config.AgentModeMock {
		factory = func(persona domain.Persona, style domain.Style) agent.Responder {
			return agent.NewMockModel(persona, style, lookup, cfg.MaxTurns)
		}
	} else {
		factory = func(persona domain.Persona, style domain.Style) agent.Responder {
			return agent.NewSmartAgent(persona, style, lookup, cfg.MaxTurns)
		}
	}
	registry := agent.NewRegistry(factory)

	// Initialize handlers.
	apiHandler := api.NewHandler(repo)
	agentHandler := agent.NewHandler(registry)
	wsHandler := agent.NewWebSocketHandler(registry, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(cfg.IsDevelopment()))

	apiHandler.RegisterRoutes(r)
	agentHandler.RegisterRoutes(r)

	// WebSocket chat endpoint.
	r.Get("/ws/chat", wsHandler.ServeHTTP)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // WebSocket chat connections stay open indefinitely
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
