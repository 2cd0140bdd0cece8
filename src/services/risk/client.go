package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"Backend-Sentinel/src/models"
)

// Client talks to the Python prediction service (XGBoost + LIME).
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("RISK_API_URL")
	if base == "" {
		base = "http://localhost:5000"
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 20 * time.Second},
	}
}

// NewClientWithBase ใช้ใน test
func NewClientWithBase(base string) *Client {
	return &Client{baseURL: base, http: &http.Client{Timeout: 5 * time.Second}}
}

// PredictRisk posts the profile snapshot plus the sentiment number and
// returns the model's score and LIME explanation. Callers that must never
// fail go through Service.Assess which wraps this with the zero fallback.
func (c *Client) PredictRisk(ctx context.Context, p *models.StudentProfile, sentiment int) (*models.RiskAssessment, error) {
	payload := map[string]interface{}{
		"name":                  p.Name,
		"gpa":                   p.GPA,
		"attendance_percentage": p.Attendance,
		"past_failures":         p.PastFailures,
		"fees_due":              p.FeesDue,
		"sentiment_score":       sentiment,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/predict_risk", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.New("risk api /predict_risk returned status " + res.Status)
	}

	var out models.RiskAssessment
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Explanation == nil {
		out.Explanation = []models.RiskFactor{}
	}
	// The model only ever emits the two impact labels; anything else is
	// drift from a retrain and renders as the harmless one.
	for i := range out.Explanation {
		if out.Explanation[i].Impact != models.ImpactRisk {
			out.Explanation[i].Impact = models.ImpactSafe
		}
	}
	return &out, nil
}

// Retrain triggers a model rebuild on the prediction service.
func (c *Client) Retrain(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/retrain", nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.New("risk api /retrain returned status " + res.Status)
	}
	return nil
}
