// error_utils.go
package utils

import (
	"Backend-Sentinel/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleErrorCode ใช้เมื่อ frontend ต้องแยก error ตาม code
func HandleErrorCode(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
		Code:    code,
	})
}
