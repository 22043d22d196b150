// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pegawaiku_backend/internals/features/users/auth/controller"
	"pegawaiku_backend/internals/middlewares"
	authmw "pegawaiku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	r := api.Group("/auth")
	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/refresh-token", ctrl.Refresh)
	r.Post("/logout", ctrl.Logout)
	r.Get("/me", authmw.AuthMiddleware(), ctrl.Me)
}
