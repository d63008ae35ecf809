package handlers

import (
	"io"
	"net/http"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"
	"atelier_crm/pkg"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

var feedTables = map[string]bool{
	entities.TableQuotes:         true,
	entities.TableProjects:       true,
	entities.TableStageIntervals: true,
	entities.TableAuditEntries:   true,
}

// FeedHandler streams change-feed events to connected clients over SSE, one
// subscription per request. The stream carries no backlog: a client that
// reconnects must re-fetch authoritative state first, the feed only covers
// what happens while it is attached.

type FeedHandler struct {
	sub interfaces.IFeedSubscriber
}

func NewFeedHandler(sub interfaces.IFeedSubscriber) *FeedHandler {
	return &FeedHandler{sub: sub}
}

// Stream subscribes the caller to one table channel and forwards events
// until the client disconnects or the broker cuts the subscription off.
func (h *FeedHandler) Stream(c *gin.Context) {
	table := c.Param("table")
	if !feedTables[table] {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_FEED_TABLE", "Unknown feed table", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ch, cancel := h.sub.Subscribe(table)
	defer cancel()

	c.Writer.Header().Set("Content-Type", sse.ContentType)
	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case evt, ok := <-ch:
			if !ok {
				// Broker dropped us (shutdown or slow consumer); ending the
				// stream tells the client to refetch and reconnect.
				return false
			}
			_ = sse.Encode(w, sse.Event{
				Event: string(evt.Type),
				Data:  evt,
			})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
