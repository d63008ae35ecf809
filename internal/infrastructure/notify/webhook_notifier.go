package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"
)

// WebhookNotifier delivers notifications by POSTing them to the messaging
// relay configured in NOTIFY_WEBHOOK_URL (the relay fans out to push, email
// or WhatsApp — this service does not care which). When no URL is configured
// delivery degrades to a log line, which keeps local development quiet but
// honest.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, userID string, notification entities.Notification) error {
	if n.url == "" {
		log.Printf("[notify][webhook] no relay configured, logging only user_id=%s message=%q", userID, notification.Message)
		return nil
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification relay returned status %d", resp.StatusCode)
	}
	return nil
}
