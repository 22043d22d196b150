// internals/features/attendance/performances/route/performance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/features/attendance/performances/controller"
)

func PerformanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPerformanceController(db)

	r := api.Group("/performances")
	r.Get("/statistics", ctrl.Statistics)
	r.Get("/employee-performance", ctrl.EmployeePerformance)
	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Create)
	r.Get("/:id", ctrl.Detail)
	r.Patch("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
