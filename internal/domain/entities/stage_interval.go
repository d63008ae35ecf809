package entities

import "time"

// StageInterval is one append-only ledger row recording the time a project
// spent in one stage.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Invariant: at most one interval per project has a nil EndedAt (the current
// stage). A crash between close and open can leave more; the next ledger
// write repairs that by closing every stray open interval.
type StageInterval struct {
	ID        string        `json:"id"`
	ProjectID string        `json:"project_id"`
	Stage     ProjectStatus `json:"stage"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   *time.Time    `json:"ended_at,omitempty"`
}

// Open reports whether the interval is still running.
func (i StageInterval) Open() bool {
	return i.EndedAt == nil
}

// Duration returns the time spent in the interval, measuring open intervals
// up to now.
func (i StageInterval) Duration(now time.Time) time.Duration {
	end := now
	if i.EndedAt != nil {
		end = *i.EndedAt
	}
	return end.Sub(i.StartedAt)
}
