package interfaces

import (
	"context"

	"atelier_crm/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Status updates are conditional on the expected current status so the
// "decided exactly once" rule holds under concurrent editors; a failed
// condition comes back as a zero-value quote with a nil error.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status, expected entities.QuoteStatus) (entities.Quote, error)
	SettleInvoiceByID(ctx context.Context, id string) (entities.Quote, error)
}
