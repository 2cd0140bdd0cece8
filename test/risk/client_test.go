package risk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/risk"
	"Backend-Sentinel/test"

	"github.com/stretchr/testify/assert"
)

func TestPredictRisk(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Risk Client Tests")
	defer suiteResult.PrintSummary()

	ctx := context.Background()

	profile := &models.StudentProfile{
		Name:         "Somchai",
		GPA:          4.2,
		Attendance:   60,
		PastFailures: 1,
		FeesDue:      "Due",
	}

	// Test a healthy prediction round trip
	t.Run("TestSuccessfulPrediction", func(t *testing.T) {
		timer := test.NewTestTimer("Successful Prediction")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Successful Prediction",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Successful Prediction", duration, 500*time.Millisecond)
		}()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict_risk", r.URL.Path)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Somchai", body["name"])
			assert.Equal(t, 4.2, body["gpa"])
			assert.Equal(t, 60.0, body["attendance_percentage"])

			json.NewEncoder(w).Encode(models.RiskAssessment{
				RiskScore: 72.5,
				Explanation: []models.RiskFactor{
					{Name: "gpa", Condition: "gpa <= 4.50", Impact: models.ImpactRisk, Weight: 0.31},
				},
			})
		}))
		defer srv.Close()

		client := risk.NewClientWithBase(srv.URL)
		out, err := client.PredictRisk(ctx, profile, -2)

		assert.NoError(t, err)
		assert.Equal(t, 72.5, out.RiskScore)
		assert.Len(t, out.Explanation, 1)
		assert.Equal(t, models.ImpactRisk, out.Explanation[0].Impact)
	})

	// Test missing explanation decodes to an empty slice, not nil
	t.Run("TestNilExplanationNormalized", func(t *testing.T) {
		timer := test.NewTestTimer("Nil Explanation Normalized")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Nil Explanation Normalized",
				Duration: duration,
				Passed:   true,
			})
		}()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"risk_score": 10}`))
		}))
		defer srv.Close()

		client := risk.NewClientWithBase(srv.URL)
		out, err := client.PredictRisk(ctx, profile, 0)

		assert.NoError(t, err)
		assert.NotNil(t, out.Explanation)
		assert.Empty(t, out.Explanation)
	})

	// Test impact labels outside the known pair normalize to Safe
	t.Run("TestUnknownImpactNormalized", func(t *testing.T) {
		timer := test.NewTestTimer("Unknown Impact Normalized")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Unknown Impact Normalized",
				Duration: duration,
				Passed:   true,
			})
		}()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"risk_score": 30, "explanation": [
				{"name": "gpa", "condition": "gpa <= 4.50", "impact": "+Risk", "weight": 0.3},
				{"name": "fees_due", "condition": "fees_due = Paid", "impact": "safe-ish", "weight": 0.1}
			]}`))
		}))
		defer srv.Close()

		client := risk.NewClientWithBase(srv.URL)
		out, err := client.PredictRisk(ctx, profile, 0)

		assert.NoError(t, err)
		assert.Equal(t, models.ImpactRisk, out.Explanation[0].Impact)
		assert.Equal(t, models.ImpactSafe, out.Explanation[1].Impact)
	})

	// Test non-200 surfaces as an error from the client
	t.Run("TestServerErrorReturnsError", func(t *testing.T) {
		timer := test.NewTestTimer("Server Error Returns Error")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Server Error Returns Error",
				Duration: duration,
				Passed:   true,
			})
		}()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not trained", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := risk.NewClientWithBase(srv.URL)
		out, err := client.PredictRisk(ctx, profile, 0)

		assert.Error(t, err)
		assert.Nil(t, out)
	})
}

func TestAssessFallback(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Assess Fallback Tests")
	defer suiteResult.PrintSummary()

	ctx := context.Background()
	profile := &models.StudentProfile{Name: "Somchai"}

	// Test service failure degrades to zero score, never an error
	t.Run("TestFallbackOnServerError", func(t *testing.T) {
		timer := test.NewTestTimer("Fallback On Server Error")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Fallback On Server Error",
				Duration: duration,
				Passed:   true,
			})
		}()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		service := risk.NewServiceWithClient(risk.NewClientWithBase(srv.URL))
		out := service.Assess(ctx, profile, 0)

		assert.NotNil(t, out)
		assert.Equal(t, 0.0, out.RiskScore)
		assert.NotNil(t, out.Explanation)
		assert.Empty(t, out.Explanation)
	})

	// Test unreachable host also degrades
	t.Run("TestFallbackOnUnreachableHost", func(t *testing.T) {
		timer := test.NewTestTimer("Fallback On Unreachable Host")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Fallback On Unreachable Host",
				Duration: duration,
				Passed:   true,
			})
		}()

		service := risk.NewServiceWithClient(risk.NewClientWithBase("http://127.0.0.1:1"))
		out := service.Assess(ctx, profile, -3)

		assert.Equal(t, 0.0, out.RiskScore)
		assert.Empty(t, out.Explanation)
	})

	// Test healthy response passes through untouched
	t.Run("TestPassThrough", func(t *testing.T) {
		timer := test.NewTestTimer("Pass Through")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Pass Through",
				Duration: duration,
				Passed:   true,
			})
		}()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"risk_score": 55, "explanation": []}`))
		}))
		defer srv.Close()

		service := risk.NewServiceWithClient(risk.NewClientWithBase(srv.URL))
		out := service.Assess(ctx, profile, 0)

		assert.Equal(t, 55.0, out.RiskScore)
	})
}
