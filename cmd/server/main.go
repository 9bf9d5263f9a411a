package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/srkarthi1982/fortune-teller/internal/config"
	"github.com/srkarthi1982/fortune-teller/internal/database"
	"github.com/srkarthi1982/fortune-teller/internal/handler"
	"github.com/srkarthi1982/fortune-teller/internal/middleware"
	"github.com/srkarthi1982/fortune-teller/internal/repository"
	"github.com/srkarthi1982/fortune-teller/internal/service"
	"github.com/srkarthi1982/fortune-teller/pkg/token"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize the token signing service
	tokenService, err := token.NewService(token.Config{
		PrivateKeyPath: cfg.Token.PrivateKeyPath,
		PublicKeyPath:  cfg.Token.PublicKeyPath,
		Issuer:         cfg.Token.Issuer,
		ExpirationMins: cfg.Token.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize token service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	drawRepo := repository.NewDrawRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: userRepo,
		Signer:   tokenService,
	})
	templateService := service.NewTemplateService(service.TemplateServiceConfig{
		Repo: templateRepo,
	})
	sessionService := service.NewSessionService(service.SessionServiceConfig{
		SessionRepo:  sessionRepo,
		DrawRepo:     drawRepo,
		TemplateRepo: templateRepo,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	templateHandler := handler.NewTemplateHandler(templateService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /v1/health", healthHandler.Check)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	authMiddleware := middleware.Auth(tokenService)
	optionalAuth := middleware.OptionalAuth(tokenService)

	// Template endpoints; listing works anonymously but sees only system templates
	mux.Handle("GET /v1/templates", optionalAuth(http.HandlerFunc(templateHandler.List)))
	mux.Handle("POST /v1/templates", authMiddleware(http.HandlerFunc(templateHandler.Create)))
	mux.Handle("PATCH /v1/templates/{templateId}", authMiddleware(http.HandlerFunc(templateHandler.Update)))
	mux.Handle("POST /v1/templates/{templateId}/archive", authMiddleware(http.HandlerFunc(templateHandler.Archive)))

	// Session endpoints
	mux.Handle("POST /v1/sessions", authMiddleware(http.HandlerFunc(sessionHandler.Create)))
	mux.Handle("GET /v1/sessions", authMiddleware(http.HandlerFunc(sessionHandler.List)))
	mux.Handle("GET /v1/sessions/{sessionId}", authMiddleware(http.HandlerFunc(sessionHandler.Get)))
	mux.Handle("POST /v1/sessions/{sessionId}/draws", authMiddleware(http.HandlerFunc(sessionHandler.AddDraw)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
