package interfaces

import (
	"context"

	"atelier_crm/internal/domain/entities"
)

// INotifier abstracts the outbound delivery channel (push, email, WhatsApp —
// the engine does not care which). Delivery is best effort: a failure is
// logged by the caller and never rolls back the transition that produced the
// notification.

type INotifier interface {
	Notify(ctx context.Context, userID string, n entities.Notification) error
}
