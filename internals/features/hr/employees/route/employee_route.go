// internals/features/hr/employees/route/employee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/features/hr/employees/controller"
	authmw "pegawaiku_backend/internals/middlewares/auth"
)

// List pegawai sengaja publik; operasi lainnya butuh bearer token.
func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEmployeeController(db)

	r := api.Group("/employees")
	r.Get("/", ctrl.List) // PUBLIC

	protected := authmw.AuthMiddleware()
	r.Get("/statistics", protected, ctrl.Statistics)
	r.Get("/search", protected, ctrl.Search)
	r.Post("/", protected, ctrl.Create)
	r.Get("/:id", protected, ctrl.Detail)
	r.Patch("/:id", protected, ctrl.Update)
	r.Delete("/:id", protected, ctrl.Delete)
}
