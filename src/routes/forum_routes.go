package routes

import (
	"Backend-Sentinel/src/controllers"
	"Backend-Sentinel/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func forumRoutes(app *fiber.App) {
	forumGroup := app.Group("/forum")
	forumGroup.Use(middleware.AuthJWT)

	forumGroup.Get("/", controllers.GetForumPosts)
	forumGroup.Post("/", controllers.CreateForumPost)
}
