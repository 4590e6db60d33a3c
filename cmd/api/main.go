package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"staffregistry/internal/config"
	"staffregistry/internal/database"
	"staffregistry/internal/database/migration"
	handlers "staffregistry/internal/http/handler"
	"staffregistry/internal/http/middleware"
	"staffregistry/internal/otel"
	"staffregistry/internal/repository/postgres"
	"staffregistry/internal/service"
	"staffregistry/internal/storage"
)

var version = "dev"

// @title Staff Registry API
// @version 1.0
// @BasePath /
func main() {
	// .env is auto-loaded if present
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logJSON(time.UTC, "warn", "invalid_timezone", map[string]any{"timezone": cfg.Timezone, "error": err.Error()})
		loc = time.UTC
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, loc, version)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	staffRepo := postgres.NewStaffPostgres(db)
	staffSvc := service.NewStaffService(objStore, staffRepo, service.Options{
		RetirementAge:  cfg.Staff.RetirementAge,
		PhotoURLExpiry: time.Duration(cfg.Staff.PhotoURLExpirySec) * time.Second,
		PhotoMaxBytes:  cfg.Staff.PhotoMaxBytes,
		Now:            func() time.Time { return time.Now().In(loc) },
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// room for the multipart envelope around a maximum-size photo
		BodyLimit: int(cfg.Staff.PhotoMaxBytes) + 1<<20,
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db, staffSvc)

	addr := ":" + cfg.Port
	logJSON(loc, "info", "server_starting", map[string]any{"addr": addr, "version": version})

	listenErr := make(chan error, 1)
	go func() { listenErr <- app.Listen(addr) }()

	select {
	case err := <-listenErr:
		log.Fatalf("failed to start server: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logJSON(loc, "error", "http_shutdown_failed", map[string]any{"error": err.Error()})
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logJSON(loc, "error", "tracing_shutdown_failed", map[string]any{"error": err.Error()})
	}
	logJSON(loc, "info", "server_stopped", nil)
}

func logJSON(loc *time.Location, level, msg string, fields map[string]any) {
	entry := map[string]any{
		"ts":    time.Now().In(loc).Format(time.RFC3339Nano),
		"level": level,
		"msg":   msg,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
