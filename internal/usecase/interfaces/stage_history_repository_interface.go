package interfaces

import (
	"context"
	"time"

	"atelier_crm/internal/domain/entities"
)

// IStageHistoryRepository abstracts the append-only stage interval ledger.
//
// CloseAndOpen is the one operation that must be atomic: closing the stale
// open intervals and inserting the next one happen in a single DynamoDB
// transaction so a crash can never observe the close without the open.

type IStageHistoryRepository interface {
	ListByProjectID(ctx context.Context, projectID string) ([]entities.StageInterval, error)
	ListOpenByProjectID(ctx context.Context, projectID string) ([]entities.StageInterval, error)
	CloseAndOpen(ctx context.Context, closing []entities.StageInterval, opening entities.StageInterval, at time.Time) error
}
