// internals/features/attendance/attendances/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/features/attendance/attendances/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	r := api.Group("/attendances")
	r.Get("/statistics", ctrl.Statistics)
	r.Get("/employee-summary", ctrl.EmployeeSummary)
	r.Get("/today", ctrl.Today)
	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Create)
	r.Get("/:id", ctrl.Detail)
	r.Patch("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
