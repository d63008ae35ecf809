package response

import (
	"time"

	"atelier_crm/internal/domain/entities"
)

type QuoteResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	InvoiceSettled bool      `json:"invoice_settled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		ProjectID:      q.ProjectID,
		Amount:         q.Amount,
		Status:         string(q.Status),
		InvoiceSettled: q.InvoiceSettled,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
