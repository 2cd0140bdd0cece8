package controllers

import (
	"errors"
	"net/http"

	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/profiles"
	"Backend-Sentinel/src/services/risk"
	"Backend-Sentinel/src/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	profileResolver = profiles.NewResolver()
	riskService     = risk.NewService()
)

// chatbotRiskCutoff: the dashboard hides the chatbot for students the model
// already flags as high risk. They get routed to a counselor instead of a bot.
const chatbotRiskCutoff = 70

// GetMyProfile godoc
// @Summary Get own profile with risk assessment
// @Description Resolves the signed-in student's profile (with email fallback) and fetches the risk assessment
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /students/me [get]
func GetMyProfile(c *fiber.Ctx) error {
	uid, _ := c.Locals("uid").(string)
	email, _ := c.Locals("email").(string)

	profile, err := profileResolver.Resolve(c.Context(), uid, email)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleErrorCode(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "No student profile found. Please contact admin.")
		}
		return utils.HandleErrorCode(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Profile lookup failed")
	}

	// Risk enrichment degrades to zero, never blocks the profile render.
	// The uid goes along so posts written before a fallback-resolved record
	// migrates still count toward sentiment.
	assessment, sentiment := riskService.AssessStudent(c.Context(), profile, uid)

	return c.JSON(fiber.Map{
		"profile":        profile,
		"risk":           assessment,
		"sentiment":      sentiment,
		"chatbotEnabled": assessment.RiskScore < chatbotRiskCutoff,
	})
}

// UpdateMyProfile - patch แก้ไขเฉพาะ field ที่นิสิตแก้เองได้
func UpdateMyProfile(c *fiber.Ctx) error {
	uid, _ := c.Locals("uid").(string)

	var fields map[string]string
	if err := c.BodyParser(&fields); err != nil {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input format")
	}

	if err := profiles.PatchProfile(c.Context(), uid, fields); err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleErrorCode(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "No student profile found. Please contact admin.")
		}
		return utils.HandleErrorCode(c, http.StatusBadRequest, "UPDATE_FAILED", err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}

// EnrollStudent godoc
// @Summary Enroll a new student
// @Description Counselor creates a pre-registration the student can claim by signing up
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.EnrollStudentRequest true "Student to enroll"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /students [post]
func EnrollStudent(c *fiber.Ctx) error {
	var req models.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleErrorCode(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed: "+err.Error())
	}

	key, err := profiles.Enroll(c.Context(), req)
	if err != nil {
		return utils.HandleErrorCode(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Enrollment failed")
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"key":     key,
		"message": "Student enrolled! They can now sign up.",
	})
}
