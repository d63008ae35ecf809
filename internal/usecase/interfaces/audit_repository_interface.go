package interfaces

import (
	"context"

	"atelier_crm/internal/domain/entities"
)

// IAuditRepository abstracts the append-only project timeline. Entries are
// never updated or deleted.

type IAuditRepository interface {
	Append(ctx context.Context, e entities.AuditEntry) (entities.AuditEntry, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.AuditEntry, error)
}
