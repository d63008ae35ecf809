package entities

import "time"

// Notification is one stage-change alert for one stakeholder.
//
// Storage model (DynamoDB):
//   - PK: id = NotificationKey(user, project, status)
//
// Using the idempotency key as the primary key makes "at most one
// notification per transition per stakeholder" a conditional put: a retried
// or concurrently recomputed transition hits the same key and is skipped.
type Notification struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	ProjectID string        `json:"project_id"`
	Status    ProjectStatus `json:"status"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}

// NotificationKey derives the idempotency key for one (stakeholder, project,
// new status) triple.
func NotificationKey(userID, projectID string, status ProjectStatus) string {
	return userID + "#" + projectID + "#" + string(status)
}
