package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidQuoteAmount  = errors.New("invalid quote amount")
	ErrQuoteAlreadyDecided = errors.New("quote already decided")
	ErrQuoteNotAccepted    = errors.New("quote not accepted")
	ErrQuoteAlreadySettled = errors.New("quote invoice already settled")
	ErrQuoteWriteConflict  = errors.New("quote update conflict")
)

// IQuoteUseCase exposes quote (devis) operations.
//
// Accept/refuse/settle are the pipeline triggers: after the quote write
// commits, the transition engine re-derives the project stage. Only the
// quote write itself surfaces errors to the caller — a failing downstream
// transition is logged and retried by the next mutation.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, projectID string, amount float64) (entities.Quote, error)
	AcceptQuote(ctx context.Context, id, actor string) (entities.Quote, error)
	RefuseQuote(ctx context.Context, id, actor string) (entities.Quote, error)
	SettleInvoice(ctx context.Context, id, actor string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	projectRepo interfaces.IProjectRepository
	engine      interfaces.ITransitionEngine
	feed        interfaces.IFeedPublisher
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)
var _ interfaces.IInvoiceSettler = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, projectRepo interfaces.IProjectRepository, engine interfaces.ITransitionEngine, feed interfaces.IFeedPublisher) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, projectRepo: projectRepo, engine: engine, feed: feed}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, projectID string, amount float64) (entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quote{}, ErrInvalidProjectID
	}
	if amount <= 0 {
		return entities.Quote{}, ErrInvalidQuoteAmount
	}

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if project.ID == "" {
		return entities.Quote{}, ErrProjectNotFound
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Amount:    amount,
		Status:    entities.QuoteStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	u.feed.Publish(entities.TableQuotes, entities.FeedEvent{
		Table:  entities.TableQuotes,
		Type:   entities.FeedEventInsert,
		Record: created,
	})
	return created, nil
}

func (u *QuoteUseCase) AcceptQuote(ctx context.Context, id, actor string) (entities.Quote, error) {
	return u.decide(ctx, id, actor, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) RefuseQuote(ctx context.Context, id, actor string) (entities.Quote, error) {
	return u.decide(ctx, id, actor, entities.QuoteStatusRefused)
}

// decide moves a pending quote to its one allowed terminal status. The write
// is conditional on the quote still being pending, so two editors deciding
// the same quote cannot both win.
func (u *QuoteUseCase) decide(ctx context.Context, id, actor string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Decided() {
		return entities.Quote{}, ErrQuoteAlreadyDecided
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status, entities.QuoteStatusPending)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteWriteConflict
	}

	u.afterWrite(ctx, updated, actor)
	return updated, nil
}

func (u *QuoteUseCase) SettleInvoice(ctx context.Context, id, actor string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.Quote{}, ErrQuoteNotAccepted
	}
	if q.InvoiceSettled {
		return entities.Quote{}, ErrQuoteAlreadySettled
	}

	updated, err := u.repo.SettleInvoiceByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteWriteConflict
	}

	u.afterWrite(ctx, updated, actor)
	return updated, nil
}

// afterWrite broadcasts the committed quote mutation and hands the project to
// the transition engine. Both are downstream of the user's write: an engine
// failure here degrades to stale stage data, it does not undo the quote.
func (u *QuoteUseCase) afterWrite(ctx context.Context, q entities.Quote, actor string) {
	u.feed.Publish(entities.TableQuotes, entities.FeedEvent{
		Table:  entities.TableQuotes,
		Type:   entities.FeedEventUpdate,
		Record: q,
	})
	if _, _, err := u.engine.ApplyQuoteChange(ctx, q.ProjectID, actor); err != nil {
		log.Printf("[quote][usecase] transition failed project_id=%s quote_id=%s err=%v", q.ProjectID, q.ID, err)
	}
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}
