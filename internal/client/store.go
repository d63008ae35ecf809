package client

import (
	"log"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/domain/pipeline"
	"atelier_crm/internal/usecase/interfaces"
)

// EntityState tracks where one entity sits in the optimistic-write cycle.
type EntityState int

const (
	// StateUnloaded: the store knows the id but has no data for it.
	StateUnloaded EntityState = iota
	// StateLoaded: populated from an authoritative fetch or the snapshot.
	StateLoaded
	// StateOptimistic: carries a local mutation the server has not confirmed.
	StateOptimistic
	// StateReconciled: the last applied write came from the change feed.
	StateReconciled
)

func (s EntityState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateOptimistic:
		return "optimistic"
	case StateReconciled:
		return "reconciled"
	default:
		return "unloaded"
	}
}

type trackedProject struct {
	project entities.Project
	state   EntityState
}

type trackedQuote struct {
	quote entities.Quote
	state EntityState
}

// Store is the client-side reconciliation store: the canonical in-memory
// copy of tracked projects and quotes on one connected client.
//
// All state lives behind a single event-loop goroutine; local mutations and
// inbound feed events are serialized onto the same ops channel, so a merge
// is never interleaved with anything. Local writes apply immediately
// (optimistic) and are persisted to the snapshot cache; feed events merge
// last-write-wins by timestamp; whenever a project's quotes change, the same
// derivation engine the server runs recomputes the stage locally so the UI
// converges before the server's own project event lands.
//
// LWW-by-timestamp means concurrent field-level edits are not merged. That
// is a deliberate fit for a handful of editors, not a CRDT.
type Store struct {
	ops  chan func()
	done chan struct{}

	cache    Cache
	projects map[string]*trackedProject
	quotes   map[string]*trackedQuote

	refetch func() (Snapshot, error)
	cancels []func()
}

// NewStore warm-starts the store from the cache snapshot and starts the
// event loop. A missing or empty snapshot just means a cold start.
func NewStore(cache Cache) (*Store, error) {
	snap, err := cache.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	s := &Store{
		ops:      make(chan func(), 64),
		done:     make(chan struct{}),
		cache:    cache,
		projects: map[string]*trackedProject{},
		quotes:   map[string]*trackedQuote{},
	}
	s.applySnapshot(snap, StateLoaded)

	go s.loop()
	return s, nil
}

func (s *Store) loop() {
	for {
		select {
		case op := <-s.ops:
			op()
		case <-s.done:
			return
		}
	}
}

// do posts an op onto the event loop without waiting.
func (s *Store) do(op func()) {
	select {
	case s.ops <- op:
	case <-s.done:
	}
}

// doWait posts an op and blocks until the loop ran it.
func (s *Store) doWait(op func()) {
	ran := make(chan struct{})
	s.do(func() {
		op()
		close(ran)
	})
	select {
	case <-ran:
	case <-s.done:
	}
}

// Close tears down feed subscriptions and stops the event loop.
func (s *Store) Close() {
	s.doWait(func() {
		for _, cancel := range s.cancels {
			cancel()
		}
		s.cancels = nil
	})
	close(s.done)
}

// AttachFeed subscribes to the quote and project channels and pumps their
// events into the store. A closed channel means the feed disconnected or cut
// us off as a slow consumer; silence after that is unknown state, so the
// store re-fetches authoritative data through refetch rather than assuming
// nothing changed.
func (s *Store) AttachFeed(sub interfaces.IFeedSubscriber, refetch func() (Snapshot, error)) {
	s.doWait(func() {
		s.refetch = refetch
	})
	for _, table := range []string{entities.TableQuotes, entities.TableProjects} {
		ch, cancel := sub.Subscribe(table)
		s.doWait(func() {
			s.cancels = append(s.cancels, cancel)
		})
		go s.pump(ch)
	}
}

func (s *Store) pump(ch <-chan entities.FeedEvent) {
	for evt := range ch {
		evt := evt
		s.doWait(func() {
			s.mergeEvent(evt)
		})
	}
	s.do(func() {
		s.resync()
	})
}

// Load replaces the store contents with an authoritative fetch result.
func (s *Store) Load(snap Snapshot) {
	s.doWait(func() {
		s.applySnapshot(snap, StateLoaded)
		s.persist()
	})
}

// MutateQuoteLocal applies a local quote edit optimistically: the in-memory
// copy and the cache update immediately with a fresh timestamp, the stage is
// re-derived locally, and nothing waits for the server round trip.
func (s *Store) MutateQuoteLocal(q entities.Quote) {
	s.doWait(func() {
		now := time.Now().UTC()
		q.UpdatedAt = now
		s.quotes[q.ID] = &trackedQuote{quote: q, state: StateOptimistic}
		s.rederive(q.ProjectID, now, StateOptimistic)
		s.persist()
	})
}

// Project returns the tracked project and its lifecycle state.
func (s *Store) Project(id string) (entities.Project, EntityState, bool) {
	var (
		p     entities.Project
		state EntityState
		found bool
	)
	s.doWait(func() {
		if tp, ok := s.projects[id]; ok {
			p, state, found = tp.project, tp.state, true
		}
	})
	return p, state, found
}

// Quote returns the tracked quote and its lifecycle state.
func (s *Store) Quote(id string) (entities.Quote, EntityState, bool) {
	var (
		q     entities.Quote
		state EntityState
		found bool
	)
	s.doWait(func() {
		if tq, ok := s.quotes[id]; ok {
			q, state, found = tq.quote, tq.state, true
		}
	})
	return q, state, found
}

// everything below runs on the event loop goroutine

func (s *Store) applySnapshot(snap Snapshot, state EntityState) {
	s.projects = make(map[string]*trackedProject, len(snap.Projects))
	for _, p := range snap.Projects {
		s.projects[p.ID] = &trackedProject{project: p, state: state}
	}
	s.quotes = make(map[string]*trackedQuote, len(snap.Quotes))
	for _, q := range snap.Quotes {
		s.quotes[q.ID] = &trackedQuote{quote: q, state: state}
	}
}

// mergeEvent folds one feed event into the store. Merges are idempotent by
// record id and last-write-wins by timestamp, which also absorbs the feed's
// at-least-once duplicates.
func (s *Store) mergeEvent(evt entities.FeedEvent) {
	switch rec := evt.Record.(type) {
	case entities.Quote:
		if evt.Type == entities.FeedEventDelete {
			delete(s.quotes, rec.ID)
			s.persist()
			return
		}
		if existing, ok := s.quotes[rec.ID]; ok && rec.UpdatedAt.Before(existing.quote.UpdatedAt) {
			return
		}
		s.quotes[rec.ID] = &trackedQuote{quote: rec, state: StateReconciled}
		s.rederive(rec.ProjectID, rec.UpdatedAt, StateReconciled)
		s.persist()
	case entities.Project:
		if evt.Type == entities.FeedEventDelete {
			delete(s.projects, rec.ID)
			s.persist()
			return
		}
		if existing, ok := s.projects[rec.ID]; ok && rec.LastUpdatedAt.Before(existing.project.LastUpdatedAt) {
			return
		}
		s.projects[rec.ID] = &trackedProject{project: rec, state: StateReconciled}
		s.persist()
	}
}

// rederive reruns the derivation engine and the progression guard over the
// locally tracked quote set so the visible stage is consistent before the
// server's own project event arrives.
func (s *Store) rederive(projectID string, at time.Time, state EntityState) {
	tp, ok := s.projects[projectID]
	if !ok {
		return
	}

	var quotes []entities.Quote
	for _, tq := range s.quotes {
		if tq.quote.ProjectID == projectID {
			quotes = append(quotes, tq.quote)
		}
	}

	candidate, ok := pipeline.Derive(tp.project.Status, quotes)
	if !ok {
		return
	}
	if !pipeline.Admit(tp.project.Status, candidate, pipeline.HasAccepted(quotes)) {
		return
	}
	tp.project.Status = candidate
	tp.project.LastUpdatedAt = at
	tp.state = state
}

// resync re-fetches authoritative state after the feed dropped us.
func (s *Store) resync() {
	if s.refetch == nil {
		return
	}
	snap, err := s.refetch()
	if err != nil {
		log.Printf("[client][store] resync failed err=%v", err)
		return
	}
	s.applySnapshot(snap, StateLoaded)
	s.persist()
}

func (s *Store) persist() {
	snap := Snapshot{
		Projects: make([]entities.Project, 0, len(s.projects)),
		Quotes:   make([]entities.Quote, 0, len(s.quotes)),
	}
	for _, tp := range s.projects {
		snap.Projects = append(snap.Projects, tp.project)
	}
	for _, tq := range s.quotes {
		snap.Quotes = append(snap.Quotes, tq.quote)
	}
	if err := s.cache.SaveSnapshot(snap); err != nil {
		log.Printf("[client][store] snapshot save failed err=%v", err)
	}
}
