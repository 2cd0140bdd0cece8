package routes

import (
	"Backend-Sentinel/src/controllers"
	"Backend-Sentinel/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func chatRoutes(app *fiber.App) {
	app.Post("/chat", middleware.AuthJWT, controllers.Chat)
}
