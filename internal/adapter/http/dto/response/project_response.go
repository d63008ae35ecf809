package response

import (
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase"
)

type ProjectResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	AssignedTo    string    `json:"assigned_to,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Status:        string(p.Status),
		StatusLabel:   p.Status.Label(),
		AssignedTo:    p.AssignedTo,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

type HistoryEntryResponse struct {
	ID          string    `json:"id"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Actor       string    `json:"actor"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromHistory(entries []entities.AuditEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			ID:          e.ID,
			FromStatus:  string(e.FromStatus),
			ToStatus:    string(e.ToStatus),
			Actor:       e.Actor,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}

type StageDurationResponse struct {
	Stage      string  `json:"stage"`
	StageLabel string  `json:"stage_label"`
	Seconds    float64 `json:"seconds"`
}

func FromStageDurations(durations []usecase.StageDuration) []StageDurationResponse {
	out := make([]StageDurationResponse, 0, len(durations))
	for _, d := range durations {
		out = append(out, StageDurationResponse{
			Stage:      string(d.Stage),
			StageLabel: d.Stage.Label(),
			Seconds:    d.Duration.Seconds(),
		})
	}
	return out
}
