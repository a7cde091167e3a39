package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"snipvault/internal/auth"
	"snipvault/internal/config"
	"snipvault/internal/handler"
	"snipvault/internal/middleware"
	"snipvault/internal/repository/postgres"
	"snipvault/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Load embedded input limits
	limits, err := config.LoadLimits()
	if err != nil {
		log.Fatalf("Failed to load limits: %v", err)
	}

	// Create JWT verifier for Supabase authentication
	jwtVerifier, err := auth.NewJWTVerifier(cfg.SupabaseJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Run embedded goose migrations
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(ctx, cfg.SupabaseDBURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("migrations applied")
	}

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	snippetRepo := postgres.NewSnippetRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	categoryRepo := postgres.NewCategoryRepository(repoConfig)
	mediaFileRepo := postgres.NewMediaFileRepository(repoConfig)
	mediaFolderRepo := postgres.NewMediaFolderRepository(repoConfig)
	mediaCategoryRepo := postgres.NewMediaCategoryRepository(repoConfig)

	// One lifecycle store per soft-deletable table
	stores := service.LifecycleStores{
		Snippets:        postgres.NewLifecycleStore(repoConfig, tables.Snippets),
		Folders:         postgres.NewLifecycleStore(repoConfig, tables.Folders),
		Categories:      postgres.NewLifecycleStore(repoConfig, tables.Categories),
		MediaFiles:      postgres.NewLifecycleStore(repoConfig, tables.MediaFiles),
		MediaFolders:    postgres.NewLifecycleStore(repoConfig, tables.MediaFolders),
		MediaCategories: postgres.NewLifecycleStore(repoConfig, tables.MediaCategories),
	}

	// Create services
	snippetService := service.NewSnippetService(snippetRepo, limits, logger)
	folderService := service.NewFolderService(folderRepo, limits, logger)
	categoryService := service.NewCategoryService(categoryRepo, limits, logger)
	mediaService := service.NewMediaService(mediaFileRepo, mediaFolderRepo, mediaCategoryRepo, limits, logger)
	binService := service.NewRecycleBinService(
		stores,
		snippetRepo,
		folderRepo,
		categoryRepo,
		mediaFileRepo,
		mediaFolderRepo,
		mediaCategoryRepo,
		logger,
	)

	// Create handlers
	snippetHandler := handler.NewSnippetHandler(snippetService, binService, logger)
	libraryHandler := handler.NewLibraryHandler(folderService, categoryService, binService, logger)
	mediaHandler := handler.NewMediaHandler(mediaService, binService, logger)
	binHandler := handler.NewRecycleBinHandler(binService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", binHandler.HealthCheck)

	// Snippet routes
	mux.HandleFunc("POST /api/snippets", snippetHandler.CreateSnippet)
	mux.HandleFunc("GET /api/snippets", snippetHandler.ListSnippets)
	mux.HandleFunc("GET /api/snippets/{id}", snippetHandler.GetSnippet)
	mux.HandleFunc("PATCH /api/snippets/{id}", snippetHandler.UpdateSnippet)
	mux.HandleFunc("DELETE /api/snippets/{id}", snippetHandler.DeleteSnippet)

	// Folder routes
	mux.HandleFunc("POST /api/folders", libraryHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders", libraryHandler.ListFolders)
	mux.HandleFunc("DELETE /api/folders/{id}", libraryHandler.DeleteFolder)

	// Category routes
	mux.HandleFunc("POST /api/categories", libraryHandler.CreateCategory)
	mux.HandleFunc("GET /api/categories", libraryHandler.ListCategories)
	mux.HandleFunc("DELETE /api/categories/{id}", libraryHandler.DeleteCategory)

	// Media library routes
	mux.HandleFunc("POST /api/media/files", mediaHandler.CreateFile)
	mux.HandleFunc("GET /api/media/files", mediaHandler.ListFiles)
	mux.HandleFunc("GET /api/media/files/{id}", mediaHandler.GetFile)
	mux.HandleFunc("DELETE /api/media/files/{id}", mediaHandler.DeleteFile)
	mux.HandleFunc("POST /api/media/folders", mediaHandler.CreateFolder)
	mux.HandleFunc("GET /api/media/folders", mediaHandler.ListFolders)
	mux.HandleFunc("DELETE /api/media/folders/{id}", mediaHandler.DeleteFolder)
	mux.HandleFunc("POST /api/media/categories", mediaHandler.CreateCategory)
	mux.HandleFunc("GET /api/media/categories", mediaHandler.ListCategories)
	mux.HandleFunc("DELETE /api/media/categories/{id}", mediaHandler.DeleteCategory)

	// Recycle bin routes
	mux.HandleFunc("GET /api/recycle-bin", binHandler.GetRecycleBin)
	mux.HandleFunc("GET /api/media/recycle-bin", binHandler.GetMediaRecycleBin)
	mux.HandleFunc("POST /api/recycle-bin/batch", binHandler.Batch)
	mux.HandleFunc("DELETE /api/recycle-bin", binHandler.EmptyBin)
	mux.HandleFunc("DELETE /api/media/recycle-bin", binHandler.EmptyMediaBin)
	mux.HandleFunc("POST /api/recycle-bin/{kind}/{id}/restore", binHandler.RestoreEntity)
	mux.HandleFunc("DELETE /api/recycle-bin/{kind}/{id}", binHandler.PurgeEntity)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.AuthMiddleware(jwtVerifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
