package routes

import (
	"Backend-Sentinel/src/controllers"
	"Backend-Sentinel/src/middleware"
	"Backend-Sentinel/src/models"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes กำหนดเส้นทางสำหรับ Student API
func studentRoutes(app *fiber.App) {
	studentGroup := app.Group("/students")
	studentGroup.Use(middleware.AuthJWT)

	studentGroup.Get("/me", controllers.GetMyProfile)    // โปรไฟล์ + risk ของตัวเอง
	studentGroup.Put("/me", controllers.UpdateMyProfile) // แก้ field ที่อนุญาต
	studentGroup.Post("/",
		middleware.RequireRole(models.RoleCounselor),
		controllers.EnrollStudent) // counselor ลงทะเบียนนิสิตใหม่
}
