// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"usermapper_backend/internals/configs"
	database "usermapper_backend/internals/databases"
	userRoute "usermapper_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/ready", func(c *fiber.Ctx) error {
		if err := database.Ping(db); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "db_unavailable",
			})
		}
		return c.JSON(fiber.Map{
			"status": "ready",
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})

	configs.Log.Info("[INFO] Setting up UserRoutes...")
	api := app.Group("/api")
	userRoute.UserRoutes(api, db)
}
