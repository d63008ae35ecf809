package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidProjectName = errors.New("invalid project name")

// StageDuration is one row of the per-stage duration analytics: total time a
// project spent in one stage, accumulated across revisits.
type StageDuration struct {
	Stage    entities.ProjectStatus
	Duration time.Duration
}

// IProjectUseCase exposes project/opportunity operations: creation, reads,
// the audit timeline and the stage-duration analytics built on the interval
// ledger.

type IProjectUseCase interface {
	CreateProject(ctx context.Context, name, assignedTo string) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	History(ctx context.Context, projectID string) ([]entities.AuditEntry, error)
	StageDurations(ctx context.Context, projectID string) ([]StageDuration, error)
	DurationInStage(ctx context.Context, projectID string, stage entities.ProjectStatus) (time.Duration, error)
}

type ProjectUseCase struct {
	repo      interfaces.IProjectRepository
	stageRepo interfaces.IStageHistoryRepository
	auditRepo interfaces.IAuditRepository
	feed      interfaces.IFeedPublisher

	// now is swapped in tests to pin open-interval measurements.
	now func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, stageRepo interfaces.IStageHistoryRepository, auditRepo interfaces.IAuditRepository, feed interfaces.IFeedPublisher) *ProjectUseCase {
	return &ProjectUseCase{
		repo:      repo,
		stageRepo: stageRepo,
		auditRepo: auditRepo,
		feed:      feed,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateProject registers a new opportunity at the start of the chain and
// opens its first stage interval. The derivation engine never initializes a
// status itself (a project with zero quotes is left untouched), so creation
// is the only place the initial stage is stamped.
func (u *ProjectUseCase) CreateProject(ctx context.Context, name, assignedTo string) (entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	now := u.now()
	p := entities.Project{
		ID:            uuid.NewString(),
		Name:          name,
		Status:        entities.StatusQualification,
		AssignedTo:    strings.TrimSpace(assignedTo),
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	opening := entities.StageInterval{
		ID:        uuid.NewString(),
		ProjectID: created.ID,
		Stage:     created.Status,
		StartedAt: now,
	}
	if err := u.stageRepo.CloseAndOpen(ctx, nil, opening, now); err != nil {
		return entities.Project{}, err
	}

	u.feed.Publish(entities.TableProjects, entities.FeedEvent{
		Table:  entities.TableProjects,
		Type:   entities.FeedEventInsert,
		Record: created,
	})
	u.feed.Publish(entities.TableStageIntervals, entities.FeedEvent{
		Table:  entities.TableStageIntervals,
		Type:   entities.FeedEventInsert,
		Record: opening,
	})
	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) History(ctx context.Context, projectID string) ([]entities.AuditEntry, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.auditRepo.ListByProjectID(ctx, projectID)
}

// StageDurations accumulates time per stage across all intervals of the
// project. A stage revisited after a detour counts every visit; the open
// interval is measured up to now.
func (u *ProjectUseCase) StageDurations(ctx context.Context, projectID string) ([]StageDuration, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	intervals, err := u.stageRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	totals := map[entities.ProjectStatus]time.Duration{}
	var order []entities.ProjectStatus
	for _, iv := range intervals {
		if _, seen := totals[iv.Stage]; !seen {
			order = append(order, iv.Stage)
		}
		totals[iv.Stage] += iv.Duration(now)
	}

	out := make([]StageDuration, 0, len(order))
	for _, stage := range order {
		out = append(out, StageDuration{Stage: stage, Duration: totals[stage]})
	}
	return out, nil
}

func (u *ProjectUseCase) DurationInStage(ctx context.Context, projectID string, stage entities.ProjectStatus) (time.Duration, error) {
	durations, err := u.StageDurations(ctx, projectID)
	if err != nil {
		return 0, err
	}
	for _, d := range durations {
		if d.Stage == stage {
			return d.Duration, nil
		}
	}
	return 0, nil
}
