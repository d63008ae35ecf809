package entities

import (
	"fmt"
	"time"
)

// Actor identities for engine-driven transitions.
const (
	ActorSystem = "system"
)

// AuditEntry is one immutable timeline row per accepted stage transition.
// Entries are append-only and never edited or deleted by the engine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type AuditEntry struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	FromStatus  ProjectStatus `json:"from_status"`
	ToStatus    ProjectStatus `json:"to_status"`
	Actor       string        `json:"actor"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TransitionDescription builds the human-readable timeline text shown in the
// project history view.
func TransitionDescription(from, to ProjectStatus) string {
	return fmt.Sprintf("Étape mise à jour : %s → %s", from.Label(), to.Label())
}
