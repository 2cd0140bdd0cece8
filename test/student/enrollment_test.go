package student

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/profiles"
	"Backend-Sentinel/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestGenerateStudentID(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Student ID Tests")
	defer suiteResult.PrintSummary()

	// Test generated ID format
	t.Run("TestStudentIDFormat", func(t *testing.T) {
		timer := test.NewTestTimer("Student ID Format")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Student ID Format",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Student ID Format", duration, 1*time.Millisecond)
		}()

		pattern := regexp.MustCompile(`^STU_(\d{4})_(\d{1,3})$`)
		year := strconv.Itoa(time.Now().Year())

		for i := 0; i < 50; i++ {
			id := profiles.GenerateStudentID()
			m := pattern.FindStringSubmatch(id)
			assert.NotNil(t, m, "unexpected id %q", id)
			assert.Equal(t, year, m[1])

			n, err := strconv.Atoi(m[2])
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 1000)
		}
	})
}

func TestEnrollValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Enroll Validation Tests")
	defer suiteResult.PrintSummary()

	validate := validator.New()

	// Test a valid enrollment request
	t.Run("TestValidEnrollRequest", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Enroll Request")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Valid Enroll Request",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := models.EnrollStudentRequest{
			Name:     "Somchai Jaidee",
			Email:    "somchai@example.com",
			Mobile:   "0812345678",
			Age:      19,
			Course:   "Software Engineering",
			GradYear: 2028,
			GPA:      6.5,
		}
		assert.NoError(t, validate.Struct(req))
	})

	// Test missing required fields
	t.Run("TestMissingRequiredFields", func(t *testing.T) {
		timer := test.NewTestTimer("Missing Required Fields")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Missing Required Fields",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := models.EnrollStudentRequest{
			Email: "no-name@example.com",
		}
		assert.Error(t, validate.Struct(req))
	})

	// Test invalid email and out-of-range GPA
	t.Run("TestInvalidValues", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Values")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Invalid Values",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := models.EnrollStudentRequest{
			Name:     "Bad Email",
			Email:    "not-an-email",
			Mobile:   "0812345678",
			Course:   "Physics",
			GradYear: 2028,
			GPA:      11.0,
		}
		err := validate.Struct(req)
		assert.Error(t, err)
	})
}
