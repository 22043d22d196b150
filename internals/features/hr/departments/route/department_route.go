// internals/features/hr/departments/route/department_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/features/hr/departments/controller"
)

// Semua endpoint departemen butuh auth (middleware dipasang di parent group).
func DepartmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)

	r := api.Group("/departments")
	r.Get("/statistics", ctrl.Statistics)
	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Create)
	r.Get("/:id/employees", ctrl.Employees)
	r.Get("/:id", ctrl.Detail)
	r.Patch("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
