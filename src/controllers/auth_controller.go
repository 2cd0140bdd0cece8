package controllers

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/auth"
	"Backend-Sentinel/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
)

var (
	authService = auth.NewService()
	validate    = validator.New()
)

// RegisterUser - สมัครโดย claim pre-registration ที่ admin สร้างไว้
func RegisterUser(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required,oneof=student counselor"`
	}

	// 1. Input validation
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleErrorCode(c, fiber.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleErrorCode(c, fiber.StatusBadRequest, "MISSING_FIELDS", "Email, password and role are required")
	}

	// 2. Reconcile: existence check, credential, migration (in that order)
	user, err := authService.Register(c.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotPreRegistered):
			msg := "You are not pre-registered in the system. Please contact your college."
			if req.Role == models.RoleCounselor {
				msg = "You are not pre-registered as a Counselor."
			}
			return utils.HandleErrorCode(c, fiber.StatusForbidden, "NOT_PRE_REGISTERED", msg)
		case errors.Is(err, auth.ErrCredentialConflict):
			return utils.HandleErrorCode(c, fiber.StatusConflict, "CREDENTIAL_CONFLICT", "Email already registered. Please Login.")
		default:
			return utils.HandleErrorCode(c, fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Registration failed: "+err.Error())
		}
	}

	// 3. Auto login after successful registration
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return utils.HandleErrorCode(c, fiber.StatusInternalServerError, "TOKEN_ERROR", "Token generation failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":   token,
		"user":    user,
		"message": "Registration Successful! Welcome to Sentinel.",
	})
}

// LoginUser - สำหรับ login ทั้ง student และ counselor
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// 1. Input validation
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleErrorCode(c, fiber.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	}

	// 2. Validate required fields
	if req.Email == "" || req.Password == "" {
		return utils.HandleErrorCode(c, fiber.StatusBadRequest, "MISSING_CREDENTIALS", "Email and password are required")
	}

	// 3. Rate limiting
	if utils.IsRateLimited(req.Email) {
		remainingTime := utils.GetRemainingCooldownTime(req.Email)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remainingTime.Minutes()),
				int(remainingTime.Seconds())%60),
			"code":          "RATE_LIMITED",
			"remainingTime": int(remainingTime.Seconds()),
		})
	}

	// 4. Authenticate user
	user, err := authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		utils.RecordLoginAttempt(req.Email, false)

		return utils.HandleErrorCode(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	}

	// 5. Generate token
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return utils.HandleErrorCode(c, fiber.StatusInternalServerError, "TOKEN_ERROR", "Token generation failed")
	}

	utils.RecordLoginAttempt(req.Email, true)

	// 6. Set security headers
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return c.JSON(fiber.Map{
		"token":     token,
		"expiresIn": 86400,
		"user": fiber.Map{
			"uid":       user.ID,
			"email":     user.Email,
			"role":      user.Role,
			"lastLogin": time.Now(),
		},
		"message": "Login successful",
	})
}

// LogoutUser - ยกเลิก token ปัจจุบัน
func LogoutUser(c *fiber.Ctx) error {
	uid, _ := c.Locals("uid").(string)
	if uid == "" {
		return utils.HandleErrorCode(c, fiber.StatusUnauthorized, "NOT_AUTHENTICATED", "User not authenticated")
	}

	token := c.Get("Authorization")
	if token != "" {
		token = strings.TrimPrefix(token, "Bearer ")
		// Blacklist for the max token lifetime; Redis expiry cleans it up
		if err := utils.BlacklistToken(token, 24*time.Hour); err != nil {
			return utils.HandleErrorCode(c, fiber.StatusInternalServerError, "LOGOUT_ERROR", "Logout failed")
		}
	}

	return c.JSON(fiber.Map{
		"message":      "Logout successful",
		"success":      true,
		"timestamp":    time.Now(),
		"sessionEnded": true,
	})
}

// GoogleLogin - เริ่มต้น Google OAuth flow (counselor)
func GoogleLogin(c *fiber.Ctx) error {
	config := auth.GetGoogleOAuthConfig()

	state := utils.GenerateRandomString(32)
	url := config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	return c.JSON(fiber.Map{
		"url": url,
	})
}

// GoogleCallback - handle Google OAuth callback
func GoogleCallback(c *fiber.Ctx) error {
	frontendURL := os.Getenv("FRONTEND_URL")

	if errorParam := c.Query("error"); errorParam != "" {
		return c.Redirect(fmt.Sprintf("%s/auth/callback?error=%s", frontendURL, errorParam))
	}

	code := c.Query("code")
	if code == "" {
		return c.Redirect(fmt.Sprintf("%s/auth/callback?error=missing_code", frontendURL))
	}

	user, err := authService.ProcessGoogleLogin(c.Context(), code)
	if err != nil {
		return c.Redirect(fmt.Sprintf("%s/auth/callback?error=%s", frontendURL, err.Error()))
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.Redirect(fmt.Sprintf("%s/auth/callback?error=token_generation_failed", frontendURL))
	}

	utils.RecordLoginAttempt(user.Email, true)

	return c.Redirect(fmt.Sprintf("%s/auth/callback?token=%s", frontendURL, token))
}
