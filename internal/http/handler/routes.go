package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "staffregistry/docs"
	"staffregistry/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; rules live in the service and the nic package.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.StaffService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	// the doc has no host, so the UI targets whatever host served it
	app.Get("/swagger/*", swagger.HandlerDefault)

	staff := app.Group("/staff")
	staff.Get("/", ListStaff(svc))
	staff.Post("/", CreateStaff(svc))
	// static segments before /:id so they are not captured as IDs
	staff.Get("/search", SearchStaff(svc))
	staff.Get("/stats", StaffStats(svc))
	staff.Get("/:id", GetStaff(svc))
	staff.Put("/:id", UpdateStaff(svc))
	staff.Delete("/:id", DeleteStaff(svc))
	staff.Post("/:id/photo", UploadPhoto(svc))
	staff.Get("/:id/photo", PhotoURL(svc))
	staff.Get("/:id/photo/raw", PhotoContent(svc))

	nicGroup := app.Group("/nic")
	nicGroup.Post("/normalize", NormalizeNIC())
	nicGroup.Post("/info", NICInfo(svc))
}

// HealthCheck pings the database.
//
//	@Summary	Readiness check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	errorPayload
//	@Router		/health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
