package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	defaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel  = "llama-3.3-70b-versatile"
)

// Client talks to the Groq chat completion API (OpenAI wire format).
type Client struct {
	apiURL string
	apiKey string
	model  string
	http   *http.Client
}

func NewClient() *Client {
	apiURL := os.Getenv("GROQ_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiURL: apiURL,
		apiKey: os.Getenv("GROQ_API_KEY"),
		model:  model,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithURL ใช้ใน test
func NewClientWithURL(apiURL string) *Client {
	return &Client{apiURL: apiURL, model: defaultModel, http: &http.Client{Timeout: 5 * time.Second}}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// SystemPrompt builds the assistant persona from the student context the
// dashboard sends along with the prompt.
func SystemPrompt(student map[string]interface{}) string {
	name := "Student"
	if n, ok := student["name"].(string); ok && n != "" {
		name = n
	}
	var gpa interface{} = 0
	if g, ok := student["gpa"]; ok && g != nil {
		gpa = g
	}
	return fmt.Sprintf(
		"You are Sentinel Assistant. The student is %s, GPA: %v. Keep response under 50 words. Be helpful and encouraging.",
		name, gpa,
	)
}

// Reply sends the prompt with the student context and returns the generated
// text. Errors bubble up; the controller maps them to the "AI service
// unavailable" response.
func (c *Client) Reply(ctx context.Context, prompt string, student map[string]interface{}) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt(student)},
			{Role: "user", Content: prompt},
		},
		Stream: false,
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errors.New("groq api returned status " + res.Status)
	}

	var out chatResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("groq api returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
