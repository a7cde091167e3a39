package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"snipvault/internal/config"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/repositories"
	"snipvault/internal/domain/services"
	"snipvault/internal/repository/postgres"
	"snipvault/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	userID := flag.String("user", "00000000-0000-0000-0000-000000000001", "User ID to seed data for")
	clearData := flag.Bool("clear-data", false, "Clear the user's rows before seeding")
	schemaOnly := flag.Bool("schema-only", false, "Only run migrations, don't seed data")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *clearData {
		log.Fatalf("🚫 BLOCKED: Cannot run --clear-data in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	limits, err := config.LoadLimits()
	if err != nil {
		log.Fatalf("Failed to load limits: %v", err)
	}

	ctx := context.Background()

	// Run embedded migrations so the tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.RunMigrations(ctx, cfg.SupabaseDBURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	// Create database connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	txManager := postgres.NewTransactionManager(pool)

	if *clearData {
		log.Printf("🧹 Clearing rows for user %s...", *userID)
		if err := clearUserData(ctx, txManager, pool, tables, *userID); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared")
	}

	// Create repositories and services
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

	stores := service.LifecycleStores{
		Snippets:        postgres.NewLifecycleStore(repoConfig, tables.Snippets),
		Folders:         postgres.NewLifecycleStore(repoConfig, tables.Folders),
		Categories:      postgres.NewLifecycleStore(repoConfig, tables.Categories),
		MediaFiles:      postgres.NewLifecycleStore(repoConfig, tables.MediaFiles),
		MediaFolders:    postgres.NewLifecycleStore(repoConfig, tables.MediaFolders),
		MediaCategories: postgres.NewLifecycleStore(repoConfig, tables.MediaCategories),
	}

	snippetService := service.NewSnippetService(snippetRepo, limits, logger)
	folderService := service.NewFolderService(folderRepo, limits, logger)
	categoryService := service.NewCategoryService(categoryRepo, limits, logger)
	mediaService := service.NewMediaService(mediaFileRepo, mediaFolderRepo, mediaCategoryRepo, limits, logger)
	binService := service.NewRecycleBinService(
		stores, snippetRepo, folderRepo, categoryRepo,
		mediaFileRepo, mediaFolderRepo, mediaCategoryRepo, logger,
	)

	log.Printf("🌱 Seeding database (environment: %s, user: %s)", cfg.Environment, *userID)

	// Library fixtures
	goFolder, err := folderService.CreateFolder(ctx, &services.CreateFolderRequest{
		UserID: *userID, Name: "Go", Color: strPtr("#00ADD8"),
	})
	if err != nil {
		log.Fatalf("❌ Failed to create folder: %v", err)
	}
	scratchFolder, err := folderService.CreateFolder(ctx, &services.CreateFolderRequest{
		UserID: *userID, Name: "Scratch",
	})
	if err != nil {
		log.Fatalf("❌ Failed to create folder: %v", err)
	}

	utilCategory, err := categoryService.CreateCategory(ctx, &services.CreateCategoryRequest{
		UserID: *userID, Name: "Utilities", Color: strPtr("#6B7280"),
	})
	if err != nil {
		log.Fatalf("❌ Failed to create category: %v", err)
	}

	snippets := []*services.CreateSnippetRequest{
		{
			UserID:     *userID,
			Title:      "Retry with backoff",
			Language:   "go",
			Code:       "for i := 0; i < 3; i++ {\n\tif err = op(); err == nil {\n\t\tbreak\n\t}\n\ttime.Sleep(time.Duration(i+1) * time.Second)\n}",
			FolderID:   &goFolder.ID,
			CategoryID: &utilCategory.ID,
		},
		{
			UserID:   *userID,
			Title:    "Read file lines",
			Language: "go",
			Code:     "scanner := bufio.NewScanner(f)\nfor scanner.Scan() {\n\tlines = append(lines, scanner.Text())\n}",
			FolderID: &goFolder.ID,
		},
		{
			UserID:   *userID,
			Title:    "Debounce (js)",
			Language: "javascript",
			Code:     "const debounce = (fn, ms) => {\n  let t;\n  return (...a) => { clearTimeout(t); t = setTimeout(() => fn(...a), ms); };\n};",
			FolderID: &scratchFolder.ID,
		},
	}

	var created []*models.Snippet
	for i, req := range snippets {
		snippet, err := snippetService.CreateSnippet(ctx, req)
		if err != nil {
			log.Printf("❌ Failed to create snippet '%s': %v", req.Title, err)
			continue
		}
		created = append(created, snippet)
		log.Printf("✅ Created snippet %d/%d: %s (ID: %s)", i+1, len(snippets), snippet.Title, snippet.ID)
	}

	// Media fixtures
	screenshotFolder, err := mediaService.CreateFolder(ctx, &services.CreateMediaFolderRequest{
		UserID: *userID, Name: "Screenshots",
	})
	if err != nil {
		log.Fatalf("❌ Failed to create media folder: %v", err)
	}
	if _, err := mediaService.CreateCategory(ctx, &services.CreateMediaCategoryRequest{
		UserID: *userID, Name: "Diagrams", Color: strPtr("#F59E0B"),
	}); err != nil {
		log.Fatalf("❌ Failed to create media category: %v", err)
	}
	if _, err := mediaService.CreateFile(ctx, &services.CreateMediaFileRequest{
		UserID:        *userID,
		Name:          "editor.png",
		MimeType:      "image/png",
		SizeBytes:     48213,
		StorageKey:    "screenshots/editor.png",
		MediaFolderID: &screenshotFolder.ID,
	}); err != nil {
		log.Fatalf("❌ Failed to create media file: %v", err)
	}

	// Soft-delete one snippet and one folder so the recycle bin isn't empty
	if len(created) > 0 {
		if err := binService.SoftDelete(ctx, *userID, models.KindSnippet, created[len(created)-1].ID); err != nil {
			log.Printf("❌ Failed to soft-delete snippet: %v", err)
		} else {
			log.Printf("🗑️  Moved snippet %s to recycle bin", created[len(created)-1].ID)
		}
	}
	if err := binService.SoftDelete(ctx, *userID, models.KindFolder, scratchFolder.ID); err != nil {
		log.Printf("❌ Failed to soft-delete folder: %v", err)
	} else {
		log.Printf("🗑️  Moved folder %s to recycle bin", scratchFolder.ID)
	}

	log.Println("🎉 Seeding complete!")
}

// clearUserData deletes every row owned by the user, children first, in
// one transaction so a partial clear never leaves orphaned references.
func clearUserData(ctx context.Context, txManager repositories.TransactionManager, pool *pgxpool.Pool, tables *postgres.TableNames, userID string) error {
	order := []string{
		tables.Snippets,
		tables.MediaFiles,
		tables.Folders,
		tables.Categories,
		tables.MediaFolders,
		tables.MediaCategories,
	}
	return txManager.ExecTx(ctx, func(ctx context.Context) error {
		for _, table := range order {
			if _, err := postgres.GetExecutor(ctx, pool).Exec(ctx, "DELETE FROM "+table+" WHERE user_id = $1", userID); err != nil {
				return err
			}
		}
		return nil
	})
}

func strPtr(s string) *string {
	return &s
}
