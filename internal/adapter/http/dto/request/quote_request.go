package request

import "strings"

// CreateQuoteRequest is the payload for registering a new quote (devis) on a
// project. Quotes always start pending; acceptance and refusal are separate
// actions.
type CreateQuoteRequest struct {
	ProjectID string  `json:"project_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}

func (r CreateQuoteRequest) ResolveProjectID() string {
	return strings.TrimSpace(r.ProjectID)
}
