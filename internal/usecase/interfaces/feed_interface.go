package interfaces

import "atelier_crm/internal/domain/entities"

// IFeedPublisher broadcasts record mutations on a per-table channel.
// Delivery is at least once and ordered within one table; nothing is ordered
// across tables and nothing is replayed to late subscribers.

type IFeedPublisher interface {
	Publish(table string, evt entities.FeedEvent)
}

// IFeedSubscriber hands out one receive channel per subscription. The
// returned cancel func tears the subscription down; the channel is closed on
// cancel, on broker shutdown, or when the subscriber falls too far behind
// (the consumer must then re-fetch authoritative state before resubscribing).

type IFeedSubscriber interface {
	Subscribe(table string) (<-chan entities.FeedEvent, func())
}
