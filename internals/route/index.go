// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "pegawaiku_backend/internals/features/attendance/attendances/route"
	performanceRoute "pegawaiku_backend/internals/features/attendance/performances/route"
	dashboardRoute "pegawaiku_backend/internals/features/home/dashboard/route"
	departmentRoute "pegawaiku_backend/internals/features/hr/departments/route"
	employeeRoute "pegawaiku_backend/internals/features/hr/employees/route"
	authRoute "pegawaiku_backend/internals/features/users/auth/route"
	authmw "pegawaiku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===== PUBLIC =====
	authRoute.AuthRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
	employeeRoute.EmployeeRoutes(api, db) // list publik, sisanya per-route auth

	// ===== PROTECTED =====
	protected := api.Group("", authmw.AuthMiddleware())
	departmentRoute.DepartmentRoutes(protected, db)
	attendanceRoute.AttendanceRoutes(protected, db)
	performanceRoute.PerformanceRoutes(protected, db)
}
