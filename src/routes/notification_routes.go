package routes

import (
	"Backend-Sentinel/src/controllers"
	"Backend-Sentinel/src/middleware"
	"Backend-Sentinel/src/models"

	"github.com/gofiber/fiber/v2"
)

func notificationRoutes(app *fiber.App) {
	group := app.Group("/notifications")
	group.Use(middleware.AuthJWT)
	group.Use(middleware.RequireRole(models.RoleCounselor))

	group.Post("/email", controllers.SendEmail)      // ส่งทันที ไม่ retry
	group.Post("/retrain", controllers.TriggerRetrain)
}
