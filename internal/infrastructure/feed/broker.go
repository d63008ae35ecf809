package feed

import (
	"log"
	"sync"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"
)

// subscriberBuffer is how far one subscriber may lag before it is cut off.
const subscriberBuffer = 256

// Broker is the in-process change feed: one fan-out channel per logical
// table. Publish preserves per-table order (subscribers receive events in
// publish order); nothing orders events across tables.
//
// A subscriber that stops draining eventually fills its buffer and gets its
// channel closed. Closure is the "you missed something" signal: the consumer
// must re-fetch authoritative state before subscribing again, the broker
// keeps no backlog to replay.
type Broker struct {
	mu     sync.Mutex
	subs   map[string]map[int]chan entities.FeedEvent
	nextID int
	closed bool
}

var _ interfaces.IFeedPublisher = (*Broker)(nil)
var _ interfaces.IFeedSubscriber = (*Broker)(nil)

func NewBroker() *Broker {
	return &Broker{subs: map[string]map[int]chan entities.FeedEvent{}}
}

func (b *Broker) Subscribe(table string) (<-chan entities.FeedEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan entities.FeedEvent, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	if b.subs[table] == nil {
		b.subs[table] = map[int]chan entities.FeedEvent{}
	}
	b.subs[table][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[table][id]; ok {
			delete(b.subs[table], id)
			close(sub)
		}
	}
	return ch, cancel
}

func (b *Broker) Publish(table string, evt entities.FeedEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	for id, ch := range b.subs[table] {
		select {
		case ch <- evt:
		default:
			// Subscriber fell subscriberBuffer events behind. Cutting it off
			// beats blocking every writer; it will refetch on reconnect.
			log.Printf("[feed][broker] dropping slow subscriber table=%s", table)
			delete(b.subs[table], id)
			close(ch)
		}
	}
}

// Close tears down every subscription. Later publishes are discarded.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, subs := range b.subs {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
	}
}
