package interfaces

import (
	"context"

	"atelier_crm/internal/domain/entities"
)

// INotificationRepository abstracts notification persistence.

type INotificationRepository interface {
	// CreateOnce inserts n unless a notification with the same idempotency
	// key already exists. created is false when the key was taken, which is
	// how a retried transition skips duplicate delivery.
	CreateOnce(ctx context.Context, n entities.Notification) (created bool, err error)
}
