package controllers

import (
	"net/http"

	"Backend-Sentinel/src/services/chat"
	"Backend-Sentinel/src/utils"

	"github.com/gofiber/fiber/v2"
)

var chatClient = chat.NewClient()

// Chat - proxy ไปหา Groq พร้อม context ของนิสิต
// Upstream failures degrade to a fixed error body; the dashboard shows it
// as a bot message instead of crashing the chat panel.
func Chat(c *fiber.Ctx) error {
	type ChatRequest struct {
		Prompt  string                 `json:"prompt"`
		Student map[string]interface{} `json:"student"`
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request format")
	}

	if req.Prompt == "" {
		return utils.HandleError(c, http.StatusBadRequest, "Prompt is missing")
	}

	text, err := chatClient.Reply(c.Context(), req.Prompt, req.Student)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "AI service unavailable")
	}

	return c.JSON(fiber.Map{
		"generated_text": text,
	})
}
