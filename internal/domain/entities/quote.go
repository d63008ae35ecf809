package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (devis).
//
// Domain notes:
//   - A quote is created pending and moves to accepted or refused exactly once.
//   - InvoiceSettled flips independently after acceptance (payment webhook or
//     manual settlement), never before.

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "en-attente"
	QuoteStatusAccepted QuoteStatus = "accepte"
	QuoteStatusRefused  QuoteStatus = "refuse"
)

// Quote is a priced proposal (devis) attached to one project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Quotes are owned by the project and deleted with it.
type Quote struct {
	ID             string      `json:"id"`
	ProjectID      string      `json:"project_id"`
	Amount         float64     `json:"amount"`
	Status         QuoteStatus `json:"status"`
	InvoiceSettled bool        `json:"invoice_settled"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Decided reports whether the quote already left the pending state.
func (q Quote) Decided() bool {
	return q.Status == QuoteStatusAccepted || q.Status == QuoteStatusRefused
}
