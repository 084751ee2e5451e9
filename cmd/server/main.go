package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"shotline/internal/config"
	"shotline/internal/handler"
	"shotline/internal/middleware"
	"shotline/internal/pipeline"
	"shotline/internal/repository/postgres"
	"shotline/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	shotRepo := postgres.NewShotRepository(repoConfig)
	commentRepo := postgres.NewCommentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Folder conventions for the pipeline operations
	conventions := pipeline.DefaultConventions()
	if cfg.ConventionsFile != "" {
		conventions, err = pipeline.LoadConventions(cfg.ConventionsFile)
		if err != nil {
			log.Fatalf("Failed to load conventions file: %v", err)
		}
		logger.Info("conventions loaded", "file", cfg.ConventionsFile)
	}
	deriver := pipeline.NewDeriver(conventions)

	// Create services
	userService := service.NewUserService(userRepo, logger)
	projectService := service.NewProjectService(projectRepo, logger)
	shotService := service.NewShotService(shotRepo, projectRepo, logger)
	commentService := service.NewCommentService(commentRepo, shotRepo, logger)
	importService := service.NewImportService(shotRepo, projectRepo, txManager, logger)
	pipelineService := service.NewPipelineService(shotRepo, projectRepo, deriver, logger)

	// Session store for browser clients
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.Environment == "prod",
		SameSite: http.SameSiteLaxMode,
	}

	// Create handlers
	authHandler := handler.NewAuthHandler(userService, store, cfg.TokenSecret, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	projectHandler := handler.NewProjectHandler(projectService, shotService, logger)
	shotHandler := handler.NewShotHandler(shotService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)
	importHandler := handler.NewImportHandler(importService, logger)
	pipelineHandler := handler.NewPipelineHandler(pipelineService, logger)
	mediaHandler := handler.NewMediaHandler(shotService, logger)
	healthHandler := handler.NewHealthHandler(pool)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth routes
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/session", authHandler.Session)
	mux.HandleFunc("POST /api/token", authHandler.Token)

	// User administration (admin only)
	mux.HandleFunc("GET /api/users", userHandler.ListUsers)
	mux.Handle("POST /api/users", middleware.RequireAdmin(http.HandlerFunc(userHandler.CreateUser)))
	mux.HandleFunc("GET /api/users/{id}", userHandler.GetUser)
	mux.Handle("PUT /api/users/{id}", middleware.RequireAdmin(http.HandlerFunc(userHandler.UpdateUser)))
	mux.Handle("DELETE /api/users/{id}", middleware.RequireAdmin(http.HandlerFunc(userHandler.DeleteUser)))

	// Project routes; mutation gated to admins and producers
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.Handle("POST /api/projects", middleware.RequireProjectManager(http.HandlerFunc(projectHandler.CreateProject)))
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.Handle("PUT /api/projects/{id}", middleware.RequireProjectManager(http.HandlerFunc(projectHandler.UpdateProject)))
	mux.Handle("DELETE /api/projects/{id}", middleware.RequireProjectManager(http.HandlerFunc(projectHandler.DeleteProject)))
	mux.HandleFunc("GET /api/projects/{id}/raw", projectHandler.RawProject)
	mux.HandleFunc("GET /api/projects/{id}/export_csv", projectHandler.ExportCSV)

	// Shot routes; mutation gated to admins, producers and supervisors
	mux.HandleFunc("GET /api/projects/{id}/shots", projectHandler.ListShots)
	mux.Handle("POST /api/projects/{id}/shots", middleware.RequireShotManager(http.HandlerFunc(projectHandler.CreateShot)))
	mux.Handle("POST /api/projects/{id}/import_csv", middleware.RequireShotManager(http.HandlerFunc(importHandler.ImportCSV)))
	mux.Handle("POST /api/projects/{id}/import_preview", middleware.RequireShotManager(http.HandlerFunc(importHandler.PreviewCSV)))
	mux.HandleFunc("GET /api/shots/{id}", shotHandler.GetShot)
	mux.Handle("PUT /api/shots/{id}", middleware.RequireShotManager(http.HandlerFunc(shotHandler.UpdateShot)))
	mux.Handle("DELETE /api/shots/{id}", middleware.RequireShotManager(http.HandlerFunc(shotHandler.DeleteShot)))

	// Comment routes (any authenticated user)
	mux.HandleFunc("GET /api/shots/{id}/comments", commentHandler.ListComments)
	mux.Handle("POST /api/shots/{id}/comments", middleware.RequireAuth(http.HandlerFunc(commentHandler.CreateComment)))
	mux.Handle("PUT /api/comments/{id}", middleware.RequireAuth(http.HandlerFunc(commentHandler.UpdateComment)))
	mux.Handle("DELETE /api/comments/{id}", middleware.RequireAuth(http.HandlerFunc(commentHandler.DeleteComment)))

	// Pipeline routes
	mux.HandleFunc("GET /api/shots/{id}/nuke_path", pipelineHandler.NukePath)
	mux.Handle("POST /api/shots/{id}/generate_comp", middleware.RequireShotManager(http.HandlerFunc(pipelineHandler.GenerateComp)))
	mux.Handle("POST /api/shots/{id}/generate_structure", middleware.RequireShotManager(http.HandlerFunc(pipelineHandler.GenerateStructure)))
	mux.Handle("POST /api/shots/{id}/send_to_client", middleware.RequireShotManager(http.HandlerFunc(pipelineHandler.SendToClient)))

	// Media streaming
	mux.HandleFunc("GET /api/shots/{id}/media", mediaHandler.Media)
	mux.HandleFunc("GET /api/shots/{id}/thumb", mediaHandler.Thumb)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	authenticator := middleware.NewAuthenticator(store, userRepo, cfg.TokenSecret)
	root = authenticator.Middleware(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled so large media streams are never cut off
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
