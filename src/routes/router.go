package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	studentRoutes(app)
	counselorRoutes(app)
	forumRoutes(app)
	chatRoutes(app)
	notificationRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ Sentinel API is running...")
	})
}
