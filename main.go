package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/brightkid/brightkid/brightkid"
	"github.com/brightkid/brightkid/brightkid/database"
	"github.com/brightkid/brightkid/brightkid/database/repositories"
	"github.com/brightkid/brightkid/brightkid/handlers"
	"github.com/brightkid/brightkid/brightkid/logger"
	"github.com/brightkid/brightkid/brightkid/migration"
	"github.com/brightkid/brightkid/brightkid/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	importLegacy := flag.Bool("import-legacy", false, "import data from the legacy MongoDB tracker and exit")
	flag.Parse()

	cfg, err := brightkid.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.AddSource)))
	logger.LogSystem("Starting BrightKid progress tracker",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	dbStartTime := time.Now()
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(-1)
	}
	logger.LogSystem("Database ready",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if *importLegacy {
		if err := runLegacyImport(ctx, cfg, db); err != nil {
			slog.Error("Legacy import failed", slog.Any("error", err))
			os.Exit(-1)
		}
		return
	}

	bunDB := db.BunDB()
	childRepo := repositories.NewChildRepository(bunDB)
	eventRepo := repositories.NewEventRepository(bunDB)
	streakRepo := repositories.NewStreakRepository(bunDB)
	difficultyRepo := repositories.NewDifficultyRepository(bunDB)
	achievementRepo := repositories.NewAchievementRepository(bunDB)
	thresholdRepo := repositories.NewThresholdRepository(bunDB)

	progressService := services.NewProgressService(
		bunDB, eventRepo, streakRepo, difficultyRepo, achievementRepo, thresholdRepo)
	dashboardService := services.NewDashboardService(
		bunDB, eventRepo, streakRepo, difficultyRepo, achievementRepo, thresholdRepo)
	catalogService := services.NewCatalogService(achievementRepo)

	var exportService *services.ExportService
	if cfg.Spaces.Enabled {
		exportService, err = services.NewExportService(
			cfg.Spaces.Key, cfg.Spaces.Secret, cfg.Spaces.Region, cfg.Spaces.Bucket,
			dashboardService)
		if err != nil {
			slog.Error("Failed to initialize snapshot export", slog.Any("error", err))
			os.Exit(-1)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "brightkid",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	webApp := &handlers.App{
		Children:  childRepo,
		Progress:  progressService,
		Dashboard: dashboardService,
		Catalog:   catalogService,
		Export:    exportService,
		Version:   version,
	}
	webApp.RegisterRoutes(app)

	addr := cfg.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}
	go func() {
		if err := app.Listen(addr); err != nil {
			slog.Error("HTTP server stopped", slog.Any("error", err))
			os.Exit(-1)
		}
	}()
	logger.LogSystem("HTTP server listening", slog.String("addr", addr))

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-s

	slog.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", slog.Any("error", err))
	}
}

func runLegacyImport(ctx context.Context, cfg *brightkid.Config, db *database.DB) error {
	client, err := migration.Connect(ctx, cfg.Legacy.URI)
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	importer := migration.NewImporter(db.BunDB(), client, cfg.Legacy.Database)
	importer.UseCopy(db.Pool())
	return importer.ImportAll(ctx)
}
