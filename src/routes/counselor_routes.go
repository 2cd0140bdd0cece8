package routes

import (
	"Backend-Sentinel/src/controllers"
	"Backend-Sentinel/src/middleware"
	"Backend-Sentinel/src/models"

	"github.com/gofiber/fiber/v2"
)

// counselorRoutes - ranked list, deep dive และ email actions
func counselorRoutes(app *fiber.App) {
	group := app.Group("/counselor")
	group.Use(middleware.AuthJWT)
	group.Use(middleware.RequireRole(models.RoleCounselor))

	group.Get("/students", controllers.GetRankedStudents)                  // เรียงตาม heuristic
	group.Get("/students/:id/assessment", controllers.GetStudentAssessment) // ดึง score จริง (lazy)
	group.Post("/students/:id/alert", controllers.SendAlertEmail)
	group.Post("/students/:id/meeting", controllers.SendMeetingEmail)
}
