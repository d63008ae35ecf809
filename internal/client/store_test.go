package client

import (
	"sync"
	"testing"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/infrastructure/feed"
)

// memoryCache keeps the snapshot in memory so store tests never touch disk.
type memoryCache struct {
	mu    sync.Mutex
	snap  Snapshot
	saves int
}

func (c *memoryCache) LoadSnapshot() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap, nil
}

func (c *memoryCache) SaveSnapshot(snap Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
	c.saves++
	return nil
}

func (c *memoryCache) saveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached in time")
}

func TestStore_WarmStartFromSnapshot(t *testing.T) {
	cache := &memoryCache{snap: Snapshot{
		Projects: []entities.Project{{ID: "p-1", Name: "Cuisine Dupont", Status: entities.StatusQuoteSent}},
		Quotes:   []entities.Quote{{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusPending}},
	}}

	s, err := NewStore(cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	p, state, ok := s.Project("p-1")
	if !ok || p.Name != "Cuisine Dupont" || state != StateLoaded {
		t.Fatalf("unexpected project (%+v, %s, %v)", p, state, ok)
	}
	q, state, ok := s.Quote("q-1")
	if !ok || q.Status != entities.QuoteStatusPending || state != StateLoaded {
		t.Fatalf("unexpected quote (%+v, %s, %v)", q, state, ok)
	}
	if _, _, ok := s.Project("p-missing"); ok {
		t.Fatalf("unexpected hit for unknown project")
	}
}

func TestStore_OptimisticMutationRederivesStage(t *testing.T) {
	cache := &memoryCache{snap: Snapshot{
		Projects: []entities.Project{{ID: "p-1", Status: entities.StatusQuoteSent}},
		Quotes:   []entities.Quote{{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusPending}},
	}}

	s, err := NewStore(cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	saves := cache.saveCount()
	s.MutateQuoteLocal(entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusAccepted})

	q, state, ok := s.Quote("q-1")
	if !ok || q.Status != entities.QuoteStatusAccepted || state != StateOptimistic {
		t.Fatalf("unexpected quote (%+v, %s, %v)", q, state, ok)
	}
	if q.UpdatedAt.IsZero() {
		t.Fatalf("expected stamped timestamp")
	}

	// Same derivation the server runs: the stage moves before any round trip.
	p, state, _ := s.Project("p-1")
	if p.Status != entities.StatusQuoteAccepted || state != StateOptimistic {
		t.Fatalf("expected optimistic devis-accepte, got (%s, %s)", p.Status, state)
	}
	if cache.saveCount() <= saves {
		t.Fatalf("expected the mutation to be persisted")
	}
}

func TestStore_MergeIsLastWriteWins(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := &memoryCache{snap: Snapshot{
		Projects: []entities.Project{{ID: "p-1", Status: entities.StatusQuoteSent}},
		Quotes:   []entities.Quote{{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusAccepted, UpdatedAt: now}},
	}}

	s, err := NewStore(cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	// Stale event: older timestamp loses against what the store holds.
	s.doWait(func() {
		s.mergeEvent(entities.FeedEvent{
			Table:  entities.TableQuotes,
			Type:   entities.FeedEventUpdate,
			Record: entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusPending, UpdatedAt: now.Add(-time.Minute)},
		})
	})
	q, _, _ := s.Quote("q-1")
	if q.Status != entities.QuoteStatusAccepted {
		t.Fatalf("stale event must not win, got %s", q.Status)
	}

	// Fresh event wins and lands reconciled.
	s.doWait(func() {
		s.mergeEvent(entities.FeedEvent{
			Table:  entities.TableQuotes,
			Type:   entities.FeedEventUpdate,
			Record: entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusAccepted, InvoiceSettled: true, UpdatedAt: now.Add(time.Minute)},
		})
	})
	q, state, _ := s.Quote("q-1")
	if !q.InvoiceSettled || state != StateReconciled {
		t.Fatalf("fresh event must win, got (%+v, %s)", q, state)
	}

	// Replaying the same event is a no-op, not a corruption.
	s.doWait(func() {
		s.mergeEvent(entities.FeedEvent{
			Table:  entities.TableQuotes,
			Type:   entities.FeedEventUpdate,
			Record: entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusAccepted, InvoiceSettled: true, UpdatedAt: now.Add(time.Minute)},
		})
	})
	q, _, _ = s.Quote("q-1")
	if !q.InvoiceSettled || q.Status != entities.QuoteStatusAccepted {
		t.Fatalf("duplicate event corrupted the record: %+v", q)
	}
}

func TestStore_MergeDelete(t *testing.T) {
	cache := &memoryCache{snap: Snapshot{
		Quotes: []entities.Quote{{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusPending}},
	}}

	s, err := NewStore(cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	s.doWait(func() {
		s.mergeEvent(entities.FeedEvent{
			Table:  entities.TableQuotes,
			Type:   entities.FeedEventDelete,
			Record: entities.Quote{ID: "q-1"},
		})
	})
	if _, _, ok := s.Quote("q-1"); ok {
		t.Fatalf("expected quote to be removed")
	}
}

func TestStore_ConvergesThroughFeed(t *testing.T) {
	cache := &memoryCache{snap: Snapshot{
		Projects: []entities.Project{{ID: "p-1", Status: entities.StatusQuoteSent}},
		Quotes:   []entities.Quote{{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusPending}},
	}}

	s, err := NewStore(cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	b := feed.NewBroker()
	defer b.Close()
	s.AttachFeed(b, func() (Snapshot, error) { return Snapshot{}, nil })

	// The server's quote event arrives first; the local re-derivation moves
	// the stage before the projects event lands.
	b.Publish(entities.TableQuotes, entities.FeedEvent{
		Table:  entities.TableQuotes,
		Type:   entities.FeedEventUpdate,
		Record: entities.Quote{ID: "q-1", ProjectID: "p-1", Status: entities.QuoteStatusAccepted, UpdatedAt: time.Now().UTC()},
	})
	waitFor(t, func() bool {
		p, _, _ := s.Project("p-1")
		return p.Status == entities.StatusQuoteAccepted
	})

	// The authoritative projects event then confirms the same stage.
	b.Publish(entities.TableProjects, entities.FeedEvent{
		Table:  entities.TableProjects,
		Type:   entities.FeedEventUpdate,
		Record: entities.Project{ID: "p-1", Status: entities.StatusQuoteAccepted, LastUpdatedAt: time.Now().UTC()},
	})
	waitFor(t, func() bool {
		_, state, _ := s.Project("p-1")
		return state == StateReconciled
	})
}

func TestStore_ResyncsWhenFeedCloses(t *testing.T) {
	cache := &memoryCache{}
	s, err := NewStore(cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	b := feed.NewBroker()
	s.AttachFeed(b, func() (Snapshot, error) {
		return Snapshot{
			Projects: []entities.Project{{ID: "p-9", Name: "Terrasse Martin", Status: entities.StatusDesign}},
		}, nil
	})

	// Broker shutdown closes the subscriber channels; the store must treat the
	// silence as unknown state and pull the authoritative snapshot.
	b.Close()
	waitFor(t, func() bool {
		p, state, ok := s.Project("p-9")
		return ok && p.Status == entities.StatusDesign && state == StateLoaded
	})
}
