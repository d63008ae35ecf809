package entities

// Logical table names used as change-feed channels.
const (
	TableQuotes         = "quotes"
	TableProjects       = "projects"
	TableStageIntervals = "stage_intervals"
	TableAuditEntries   = "audit_entries"
)

// FeedEventType classifies a record mutation on the change feed.
type FeedEventType string

const (
	FeedEventInsert FeedEventType = "insert"
	FeedEventUpdate FeedEventType = "update"
	FeedEventDelete FeedEventType = "delete"
)

// FeedEvent is one record-level mutation broadcast to subscribers. Record
// holds the full entity after the mutation (Quote, Project, StageInterval or
// AuditEntry depending on Table).
//
// Delivery contract: at least once, ordered per table, no ordering across
// tables, no replay of events missed while disconnected.
type FeedEvent struct {
	Table  string        `json:"table"`
	Type   FeedEventType `json:"type"`
	Record any           `json:"record"`
}
