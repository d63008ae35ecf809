package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/domain/pipeline"
	"atelier_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// TransitionUseCase drives the pipeline after a quote mutation:
// derive a candidate stage, run the progression guard, and when the guard
// admits, persist the new status and fan out the side effects (stage ledger,
// audit timeline, notifications, change feed).
//
// Per project the whole recomputation runs under a mutex: the close-then-open
// ledger write is the one spot where two writers racing on the same project
// can corrupt state (two open intervals). Different projects never contend.
//
// Everything downstream of the status write is best effort. A failed ledger,
// audit, or notification write is logged and the committed transition stands.

type TransitionUseCase struct {
	projectRepo interfaces.IProjectRepository
	quoteRepo   interfaces.IQuoteRepository
	stageRepo   interfaces.IStageHistoryRepository
	auditRepo   interfaces.IAuditRepository
	notifRepo   interfaces.INotificationRepository
	notifier    interfaces.INotifier
	feed        interfaces.IFeedPublisher

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ interfaces.ITransitionEngine = (*TransitionUseCase)(nil)

func NewTransitionUseCase(
	projectRepo interfaces.IProjectRepository,
	quoteRepo interfaces.IQuoteRepository,
	stageRepo interfaces.IStageHistoryRepository,
	auditRepo interfaces.IAuditRepository,
	notifRepo interfaces.INotificationRepository,
	notifier interfaces.INotifier,
	feed interfaces.IFeedPublisher,
) *TransitionUseCase {
	return &TransitionUseCase{
		projectRepo: projectRepo,
		quoteRepo:   quoteRepo,
		stageRepo:   stageRepo,
		auditRepo:   auditRepo,
		notifRepo:   notifRepo,
		notifier:    notifier,
		feed:        feed,
		locks:       map[string]*sync.Mutex{},
	}
}

func (u *TransitionUseCase) lockFor(projectID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.locks[projectID]
	if !ok {
		l = &sync.Mutex{}
		u.locks[projectID] = l
	}
	return l
}

// ApplyQuoteChange recomputes the project stage from its full quote set.
// transitioned is false for the no-op outcomes (no candidate, guard
// rejection, concurrent writer won); none of those produce side effects.
func (u *TransitionUseCase) ApplyQuoteChange(ctx context.Context, projectID, actor string) (entities.Project, bool, error) {
	if projectID == "" {
		return entities.Project{}, false, ErrInvalidProjectID
	}

	l := u.lockFor(projectID)
	l.Lock()
	defer l.Unlock()

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, false, err
	}
	if project.ID == "" {
		return entities.Project{}, false, ErrProjectNotFound
	}

	quotes, err := u.quoteRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.Project{}, false, err
	}

	candidate, ok := pipeline.Derive(project.Status, quotes)
	if !ok {
		return project, false, nil
	}
	if !pipeline.Admit(project.Status, candidate, pipeline.HasAccepted(quotes)) {
		log.Printf("[pipeline][transition] guard rejected project_id=%s current=%s candidate=%s", projectID, project.Status, candidate)
		return project, false, nil
	}

	now := time.Now().UTC()
	updated, err := u.projectRepo.UpdateStatus(ctx, projectID, candidate, now)
	if err != nil {
		return entities.Project{}, false, err
	}
	if updated.ID == "" {
		// Conditional write lost against a concurrent writer; their
		// recomputation covers this mutation.
		log.Printf("[pipeline][transition] status write conflict project_id=%s candidate=%s", projectID, candidate)
		return project, false, nil
	}
	log.Printf("[pipeline][transition] project_id=%s %s -> %s actor=%s", projectID, project.Status, candidate, actor)
	u.feed.Publish(entities.TableProjects, entities.FeedEvent{
		Table:  entities.TableProjects,
		Type:   entities.FeedEventUpdate,
		Record: updated,
	})

	u.recordInterval(ctx, projectID, candidate, now)
	u.recordAudit(ctx, project.Status, updated, actor, now)
	u.dispatchNotifications(ctx, project.Status, updated, now)

	return updated, true, nil
}

// recordInterval closes every open interval for the project and opens the
// next one in a single transaction. Finding more than one open interval means
// an earlier close-then-open was interrupted; closing them all here is the
// opportunistic repair.
func (u *TransitionUseCase) recordInterval(ctx context.Context, projectID string, stage entities.ProjectStatus, at time.Time) {
	open, err := u.stageRepo.ListOpenByProjectID(ctx, projectID)
	if err != nil {
		log.Printf("[pipeline][ledger] listing open intervals failed project_id=%s err=%v", projectID, err)
		return
	}
	if len(open) > 1 {
		log.Printf("[pipeline][ledger] repairing %d open intervals project_id=%s", len(open), projectID)
	}

	opening := entities.StageInterval{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Stage:     stage,
		StartedAt: at,
	}
	if err := u.stageRepo.CloseAndOpen(ctx, open, opening, at); err != nil {
		log.Printf("[pipeline][ledger] close-and-open failed project_id=%s stage=%s err=%v", projectID, stage, err)
		return
	}

	ended := at
	for _, iv := range open {
		iv.EndedAt = &ended
		u.feed.Publish(entities.TableStageIntervals, entities.FeedEvent{
			Table:  entities.TableStageIntervals,
			Type:   entities.FeedEventUpdate,
			Record: iv,
		})
	}
	u.feed.Publish(entities.TableStageIntervals, entities.FeedEvent{
		Table:  entities.TableStageIntervals,
		Type:   entities.FeedEventInsert,
		Record: opening,
	})
}

func (u *TransitionUseCase) recordAudit(ctx context.Context, from entities.ProjectStatus, project entities.Project, actor string, at time.Time) {
	entry := entities.AuditEntry{
		ID:          uuid.NewString(),
		ProjectID:   project.ID,
		FromStatus:  from,
		ToStatus:    project.Status,
		Actor:       actor,
		Description: entities.TransitionDescription(from, project.Status),
		CreatedAt:   at,
	}
	if _, err := u.auditRepo.Append(ctx, entry); err != nil {
		log.Printf("[pipeline][audit] append failed project_id=%s err=%v", project.ID, err)
		return
	}
	u.feed.Publish(entities.TableAuditEntries, entities.FeedEvent{
		Table:  entities.TableAuditEntries,
		Type:   entities.FeedEventInsert,
		Record: entry,
	})
}

// dispatchNotifications emits at most one notification per stakeholder per
// transition. The conditional insert on the idempotency key is what absorbs
// retries and equivalent concurrent recomputations.
func (u *TransitionUseCase) dispatchNotifications(ctx context.Context, from entities.ProjectStatus, project entities.Project, at time.Time) {
	if project.AssignedTo == "" {
		return
	}

	n := entities.Notification{
		ID:        entities.NotificationKey(project.AssignedTo, project.ID, project.Status),
		UserID:    project.AssignedTo,
		ProjectID: project.ID,
		Status:    project.Status,
		Message:   entities.TransitionDescription(from, project.Status),
		CreatedAt: at,
	}

	created, err := u.notifRepo.CreateOnce(ctx, n)
	if err != nil {
		log.Printf("[pipeline][notify] create failed project_id=%s user_id=%s err=%v", project.ID, project.AssignedTo, err)
		return
	}
	if !created {
		log.Printf("[pipeline][notify] duplicate suppressed project_id=%s user_id=%s status=%s", project.ID, project.AssignedTo, project.Status)
		return
	}
	if err := u.notifier.Notify(ctx, project.AssignedTo, n); err != nil {
		log.Printf("[pipeline][notify] delivery failed project_id=%s user_id=%s err=%v", project.ID, project.AssignedTo, err)
	}
}
