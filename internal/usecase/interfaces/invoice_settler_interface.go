package interfaces

import (
	"context"

	"atelier_crm/internal/domain/entities"
)

// IInvoiceSettler marks an accepted quote's invoice as settled. Implemented
// by the quote usecase; the payment webhook path depends on this narrow seam
// instead of the full quote API.

type IInvoiceSettler interface {
	SettleInvoice(ctx context.Context, quoteID, actor string) (entities.Quote, error)
}
