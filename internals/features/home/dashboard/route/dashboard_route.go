// internals/features/home/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/features/home/dashboard/controller"
)

// Chart publik untuk landing page — tanpa auth.
func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChartsController(db)

	r := api.Group("/public/charts")
	r.Get("/department-stats", ctrl.DepartmentStats)
	r.Get("/attendance-monthly", ctrl.AttendanceMonthly)
	r.Get("/dashboard-stats", ctrl.DashboardStats)
}
