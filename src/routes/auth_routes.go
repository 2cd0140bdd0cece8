package routes

import (
	"Backend-Sentinel/src/controllers"
	"Backend-Sentinel/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (register/login/logout)
func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", controllers.RegisterUser) // claim pre-registration
	auth.Post("/login", controllers.LoginUser)       // 🔐 login
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
	auth.Get("/google", controllers.GoogleLogin)
	auth.Get("/google/callback", controllers.GoogleCallback)
}
