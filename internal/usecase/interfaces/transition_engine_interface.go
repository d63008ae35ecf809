package interfaces

import (
	"context"

	"atelier_crm/internal/domain/entities"
)

// ITransitionEngine recomputes a project's pipeline stage after a quote
// mutation and applies every transition side effect (ledger, audit,
// notifications, feed). transitioned is false when the quotes derived no
// candidate or the progression guard rejected it.

type ITransitionEngine interface {
	ApplyQuoteChange(ctx context.Context, projectID, actor string) (project entities.Project, transitioned bool, err error)
}
