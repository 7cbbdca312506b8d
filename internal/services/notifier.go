package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Notifier is the fire-and-forget notification channel. The engine surfaces a
// returned error but never retries.
type Notifier interface {
	Send(ctx context.Context, recipientID, subject, body string) error
}

type logNotifier struct{}

// NewLogNotifier writes notifications to the service log. Used when no
// webhook is configured.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Send(ctx context.Context, recipientID, subject, body string) error {
	log.Printf("✉️  Notify %s: %s | %s\n", recipientID, subject, body)
	return nil
}

type webhookNotifier struct {
	url     string
	timeout time.Duration
}

type notificationPayload struct {
	RecipientID string    `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	SentAt      time.Time `json:"sent_at"`
}

// NewWebhookNotifier posts each notification as JSON to url.
func NewWebhookNotifier(url string, timeout time.Duration) Notifier {
	return &webhookNotifier{url: url, timeout: timeout}
}

func (w *webhookNotifier) Send(ctx context.Context, recipientID, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.Post(w.url)
	agent.Timeout(w.timeout)
	agent.JSON(notificationPayload{
		RecipientID: recipientID,
		Subject:     subject,
		Body:        body,
		SentAt:      time.Now(),
	})

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("failed to deliver notification: %w", errs[0])
	}
	if code >= fiber.StatusBadRequest {
		return fmt.Errorf("failed to deliver notification: webhook answered %d", code)
	}
	return nil
}
