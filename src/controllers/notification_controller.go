package controllers

import (
	"net/http"

	"Backend-Sentinel/src/database"
	"Backend-Sentinel/src/services/notify"
	"Backend-Sentinel/src/services/risk"
	"Backend-Sentinel/src/utils"

	"github.com/gofiber/fiber/v2"
)

var mailSender notify.MailSender

// SetMailSender wires the SMTP sender at boot. Stays nil when SMTP env is
// missing; the endpoints then answer EMAIL_SEND_FAILED.
func SetMailSender(s notify.MailSender) {
	mailSender = s
}

// SendEmail - ส่งอีเมล raw จาก counselor (subject/message กำหนดเอง)
// Synchronous on purpose: the counselor is watching the result and failures
// must surface immediately. Nothing is retried.
func SendEmail(c *fiber.Ctx) error {
	type SendEmailRequest struct {
		StudentEmail string `json:"student_email"`
		Subject      string `json:"subject"`
		Message      string `json:"message"`
	}

	var req SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	}

	if req.StudentEmail == "" {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "MISSING_EMAIL", "Student email is missing")
	}

	if mailSender == nil {
		return utils.HandleErrorCode(c, http.StatusBadGateway, "EMAIL_SEND_FAILED", "Email service not configured")
	}

	if err := mailSender.Send(req.StudentEmail, req.Subject, req.Message); err != nil {
		return utils.HandleErrorCode(c, http.StatusBadGateway, "EMAIL_SEND_FAILED", "Failed to send email.")
	}

	return c.JSON(fiber.Map{
		"status": "success",
	})
}

// TriggerRetrain - สั่ง retrain โมเดลทันที (ปกติรันตาม schedule กลางคืน)
func TriggerRetrain(c *fiber.Ctx) error {
	if database.AsynqClient != nil {
		if _, err := database.AsynqClient.Enqueue(risk.NewRetrainTask()); err == nil {
			return c.JSON(fiber.Map{
				"status": "Retraining queued",
			})
		}
	}

	// No queue available, call the prediction service inline
	if err := risk.NewClient().Retrain(c.Context()); err != nil {
		return utils.HandleErrorCode(c, http.StatusBadGateway, "RISK_API_UNAVAILABLE", "Retrain failed")
	}
	return c.JSON(fiber.Map{
		"status": "Retraining complete",
	})
}
