package controllers

import (
	"errors"
	"log"
	"net/http"

	"Backend-Sentinel/src/database"
	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/notify"
	"Backend-Sentinel/src/services/profiles"
	"Backend-Sentinel/src/services/risk"
	"Backend-Sentinel/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRankedStudents godoc
// @Summary Ranked student list
// @Description Students ordered by the local heuristic score, highest risk first. The authoritative score is fetched per student from the assessment endpoint.
// @Tags counselor
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /counselor/students [get]
func GetRankedStudents(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil || params.Page < 1 || params.Limit < 1 {
		params = models.DefaultPagination()
	}

	ranked, err := risk.RankStudents(c.Context())
	if err != nil {
		return utils.HandleErrorCode(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Student list unavailable")
	}

	total := int64(len(ranked))
	start := params.GetSkip()
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + params.Limit
	if end > len(ranked) {
		end = len(ranked)
	}

	return c.JSON(models.NewPaginatedResponse(ranked[start:end], total, params))
}

// GetStudentAssessment godoc
// @Summary Deep dive risk assessment
// @Description Authoritative risk score and LIME explanation for one student
// @Tags counselor
// @Produce json
// @Param id path string true "Student record key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /counselor/students/{id}/assessment [get]
func GetStudentAssessment(c *fiber.Ctx) error {
	key := c.Params("id")

	profile, err := profileResolver.Resolve(c.Context(), key, "")
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleErrorCode(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "Student not found")
		}
		return utils.HandleErrorCode(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Profile lookup failed")
	}

	assessment, sentiment := riskService.AssessStudent(c.Context(), profile, "")

	return c.JSON(fiber.Map{
		"profile":   profile,
		"risk":      assessment,
		"sentiment": sentiment,
	})
}

// SendAlertEmail - ส่งอีเมลเตือน risk score ให้นิสิต
func SendAlertEmail(c *fiber.Ctx) error {
	return sendTemplatedEmail(c, func(p *models.StudentProfile) (string, string, error) {
		subject, body := notify.BuildAlertEmail(p.Name)
		return subject, body, nil
	})
}

// SendMeetingEmail - นัดหมาย counseling meeting
func SendMeetingEmail(c *fiber.Ctx) error {
	type MeetingRequest struct {
		MeetingTime string `json:"meetingTime"`
	}
	var req MeetingRequest
	if err := c.BodyParser(&req); err != nil || req.MeetingTime == "" {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "MISSING_MEETING_TIME", "Meeting time is required")
	}

	return sendTemplatedEmail(c, func(p *models.StudentProfile) (string, string, error) {
		subject, body := notify.BuildMeetingEmail(p.Name, req.MeetingTime)
		return subject, body, nil
	})
}

func sendTemplatedEmail(c *fiber.Ctx, build func(*models.StudentProfile) (string, string, error)) error {
	key := c.Params("id")

	profile, err := profileResolver.Resolve(c.Context(), key, "")
	if err != nil {
		return utils.HandleErrorCode(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "Student not found")
	}

	if profile.Email == "" || profile.Email == profiles.NotAvailable {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "MISSING_EMAIL", "Student email is missing or invalid.")
	}

	subject, body, err := build(profile)
	if err != nil {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "TEMPLATE_ERROR", err.Error())
	}

	// Queue when the worker is up, otherwise send inline
	if database.AsynqClient != nil {
		task, err := notify.NewSendEmailTask(profile.Email, subject, body)
		if err == nil {
			if _, err := database.AsynqClient.Enqueue(task); err == nil {
				return c.JSON(fiber.Map{
					"message": "Email queued for " + profile.Email,
					"queued":  true,
				})
			}
			log.Println("⚠️ Enqueue failed, sending inline")
		}
	}

	if mailSender == nil {
		return utils.HandleErrorCode(c, http.StatusBadGateway, "EMAIL_SEND_FAILED", "Email service not configured")
	}
	if err := mailSender.Send(profile.Email, subject, body); err != nil {
		return utils.HandleErrorCode(c, http.StatusBadGateway, "EMAIL_SEND_FAILED", "Failed to send email.")
	}

	return c.JSON(fiber.Map{
		"message": "Email sent successfully to " + profile.Email,
		"queued":  false,
	})
}
