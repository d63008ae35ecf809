package request

import "strings"

// CreateProjectRequest is the payload for opening a new opportunity.
// AssignedTo is the staff member who receives stage-change notifications;
// it may be empty for unassigned leads.
type CreateProjectRequest struct {
	Name       string `json:"name" binding:"required"`
	AssignedTo string `json:"assigned_to"`
}

func (r CreateProjectRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r CreateProjectRequest) ResolveAssignedTo() string {
	return strings.TrimSpace(r.AssignedTo)
}
