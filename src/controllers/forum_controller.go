package controllers

import (
	"net/http"

	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/forum"
	"Backend-Sentinel/src/services/profiles"
	"Backend-Sentinel/src/utils"

	"github.com/gofiber/fiber/v2"
)

var forumService = forum.NewService()

// GetForumPosts - โพสต์ทั้งหมด เรียงใหม่สุดก่อน
func GetForumPosts(c *fiber.Ctx) error {
	posts, err := forumService.ListPosts(c.Context())
	if err != nil {
		return utils.HandleErrorCode(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Forum unavailable")
	}
	if posts == nil {
		posts = []models.ForumPost{}
	}
	return c.JSON(posts)
}

// CreateForumPost - append โพสต์ใหม่ (ไม่มีแก้ไข/ลบ)
func CreateForumPost(c *fiber.Ctx) error {
	type PostRequest struct {
		Content string `json:"content"`
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil || req.Content == "" {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "MISSING_CONTENT", "Post content is required")
	}

	uid, _ := c.Locals("uid").(string)
	email, _ := c.Locals("email").(string)

	// Author name comes from the resolved profile; students posting before
	// their record resolves show up as "Student"
	author := "Student"
	if profile, err := profileResolver.Resolve(c.Context(), uid, email); err == nil && profile.Name != profiles.NotAvailable {
		author = profile.Name
	}

	post := models.ForumPost{
		Author:    author,
		Content:   req.Content,
		StudentID: uid,
	}
	if err := forumService.CreatePost(c.Context(), &post); err != nil {
		return utils.HandleErrorCode(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Failed to create post")
	}

	return c.Status(http.StatusCreated).JSON(post)
}
