package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/utils"
	"Backend-Sentinel/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorHelpers(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Error Helper Tests")
	defer suiteResult.PrintSummary()

	// Test HandleErrorCode wire shape: status, error, code
	t.Run("TestHandleErrorCode", func(t *testing.T) {
		timer := test.NewTestTimer("Handle Error Code")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Handle Error Code",
				Duration: duration,
				Passed:   true,
			})
		}()

		app := fiber.New()
		app.Get("/err", func(c *fiber.Ctx) error {
			return utils.HandleErrorCode(c, fiber.StatusForbidden, "NOT_PRE_REGISTERED",
				"You are not pre-registered in the system. Please contact your college.")
		})

		res, err := app.Test(httptest.NewRequest("GET", "/err", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

		var body models.ErrorResponse
		assert.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, fiber.StatusForbidden, body.Status)
		assert.Equal(t, "NOT_PRE_REGISTERED", body.Code)
		assert.Contains(t, body.Message, "not pre-registered")
	})

	// Test the message field marshals under the "error" key
	t.Run("TestMessageMarshalsAsError", func(t *testing.T) {
		timer := test.NewTestTimer("Message Marshals As Error")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Message Marshals As Error",
				Duration: duration,
				Passed:   true,
			})
		}()

		app := fiber.New()
		app.Get("/err", func(c *fiber.Ctx) error {
			return utils.HandleError(c, fiber.StatusBadRequest, "Prompt is missing")
		})

		res, err := app.Test(httptest.NewRequest("GET", "/err", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

		var raw map[string]interface{}
		assert.NoError(t, json.NewDecoder(res.Body).Decode(&raw))
		assert.Equal(t, "Prompt is missing", raw["error"])
		_, hasCode := raw["code"]
		assert.False(t, hasCode)
	})
}
