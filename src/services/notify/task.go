package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/hibiken/asynq"
)

const TypeSendEmail = "notify:send-email"

type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (p *SendEmailPayload) Normalize() {
	p.To = strings.TrimSpace(p.To)
	p.Subject = strings.TrimSpace(p.Subject)
}

func NewSendEmailTask(to, subject, message string) (*asynq.Task, error) {
	payload := SendEmailPayload{
		To:      to,
		Subject: subject,
		Message: message,
	}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b, asynq.MaxRetry(3)), nil
}

// HandleSendEmail processes queued alert/meeting mails. Queued dispatch gets
// asynq's retries; the synchronous /send_email endpoint does not retry.
func HandleSendEmail(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SendEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		if sender == nil {
			return errors.New("no mail sender configured")
		}

		if err := sender.Send(p.To, p.Subject, p.Message); err != nil {
			log.Printf("❌ send mail failed to %s: %v", p.To, err)
			return err
		}
		log.Printf("✅ Email sent to %s", p.To)
		return nil
	}
}
