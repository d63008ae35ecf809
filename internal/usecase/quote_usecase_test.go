package usecase

import (
	"context"
	"errors"
	"testing"

	"atelier_crm/internal/domain/entities"
	mock_interfaces "atelier_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	repo        *mock_interfaces.MockIQuoteRepository
	projectRepo *mock_interfaces.MockIProjectRepository
	engine      *mock_interfaces.MockITransitionEngine
	feed        *mock_interfaces.MockIFeedPublisher
}

func newQuoteMocks(ctrl *gomock.Controller) (*QuoteUseCase, quoteMocks) {
	m := quoteMocks{
		repo:        mock_interfaces.NewMockIQuoteRepository(ctrl),
		projectRepo: mock_interfaces.NewMockIProjectRepository(ctrl),
		engine:      mock_interfaces.NewMockITransitionEngine(ctrl),
		feed:        mock_interfaces.NewMockIFeedPublisher(ctrl),
	}
	return NewQuoteUseCase(m.repo, m.projectRepo, m.engine, m.feed), m
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.CreateQuote(context.Background(), "   ", 100)
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.CreateQuote(context.Background(), "p-1", 0)
		if !errors.Is(err, ErrInvalidQuoteAmount) {
			t.Fatalf("expected ErrInvalidQuoteAmount, got %v", err)
		}
	})

	t.Run("project must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteMocks(ctrl)

		m.projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.CreateQuote(context.Background(), "p-1", 100)
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("create success publishes insert, no transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteMocks(ctrl)

		m.projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.ProjectID != "p-1" || q.Amount != 2450.5 || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)
		m.feed.EXPECT().Publish(entities.TableQuotes, gomock.Any())

		res, err := uc.CreateQuote(context.Background(), " p-1 ", 2450.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestQuoteUseCase_DecideFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, id, actor string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "accept", call: (*QuoteUseCase).AcceptQuote, status: entities.QuoteStatusAccepted},
		{name: "refuse", call: (*QuoteUseCase).RefuseQuote, status: entities.QuoteStatusRefused},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewQuoteUseCase(nil, nil, nil, nil)
			_, err := tc.call(uc, context.Background(), "", "alice")
			if !errors.Is(err, ErrInvalidQuoteID) {
				t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newQuoteMocks(ctrl)

			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "q-1", "alice")
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" already decided", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newQuoteMocks(ctrl)

			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusRefused}, nil)

			_, err := tc.call(uc, context.Background(), "q-1", "alice")
			if !errors.Is(err, ErrQuoteAlreadyDecided) {
				t.Fatalf("expected ErrQuoteAlreadyDecided, got %v", err)
			}
		})

		t.Run(tc.name+" loses conditional write", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newQuoteMocks(ctrl)

			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)
			m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", tc.status, entities.QuoteStatusPending).Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "q-1", "alice")
			if !errors.Is(err, ErrQuoteWriteConflict) {
				t.Fatalf("expected ErrQuoteWriteConflict, got %v", err)
			}
		})

		t.Run(tc.name+" success triggers the engine", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newQuoteMocks(ctrl)

			decided := entities.Quote{ID: "q-1", ProjectID: "p-1", Status: tc.status}
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusPending}, nil)
			m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", tc.status, entities.QuoteStatusPending).Return(decided, nil)
			m.feed.EXPECT().Publish(entities.TableQuotes, gomock.Any())
			m.engine.EXPECT().ApplyQuoteChange(gomock.Any(), "p-1", "alice").Return(entities.Project{}, true, nil)

			res, err := tc.call(uc, context.Background(), "q-1", "alice")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, res.Status)
			}
		})

		t.Run(tc.name+" engine failure does not surface", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newQuoteMocks(ctrl)

			decided := entities.Quote{ID: "q-1", ProjectID: "p-1", Status: tc.status}
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusPending}, nil)
			m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", tc.status, entities.QuoteStatusPending).Return(decided, nil)
			m.feed.EXPECT().Publish(entities.TableQuotes, gomock.Any())
			m.engine.EXPECT().ApplyQuoteChange(gomock.Any(), "p-1", "alice").Return(entities.Project{}, false, errors.New("dynamo down"))

			if _, err := tc.call(uc, context.Background(), "q-1", "alice"); err != nil {
				t.Fatalf("quote write succeeded, engine error must not surface: %v", err)
			}
		})
	}
}

func TestQuoteUseCase_SettleInvoice(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.SettleInvoice(context.Background(), "", "alice")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)

		_, err := uc.SettleInvoice(context.Background(), "q-1", "alice")
		if !errors.Is(err, ErrQuoteNotAccepted) {
			t.Fatalf("expected ErrQuoteNotAccepted, got %v", err)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted, InvoiceSettled: true}, nil)

		_, err := uc.SettleInvoice(context.Background(), "q-1", "alice")
		if !errors.Is(err, ErrQuoteAlreadySettled) {
			t.Fatalf("expected ErrQuoteAlreadySettled, got %v", err)
		}
	})

	t.Run("success triggers the engine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteMocks(ctrl)

		settled := entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusAccepted, InvoiceSettled: true}
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusAccepted}, nil)
		m.repo.EXPECT().SettleInvoiceByID(gomock.Any(), "q-1").Return(settled, nil)
		m.feed.EXPECT().Publish(entities.TableQuotes, gomock.Any())
		m.engine.EXPECT().ApplyQuoteChange(gomock.Any(), "p-1", entities.ActorSystem).Return(entities.Project{}, true, nil)

		res, err := uc.SettleInvoice(context.Background(), "q-1", entities.ActorSystem)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.InvoiceSettled {
			t.Fatalf("expected settled invoice")
		}
	})
}
