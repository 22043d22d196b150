// internals/route/base_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "pegawaiku_backend/internals/helpers"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.Success(c, "Pegawaiku API", fiber.Map{
			"service": "pegawaiku_backend",
			"docs":    "/api",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "database unreachable")
		}
		return helper.Success(c, "OK", fiber.Map{"database": "up"})
	})
}
