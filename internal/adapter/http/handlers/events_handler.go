package handlers

import (
	"gemstore/internal/usecase/interfaces"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultHeartbeat = 25 * time.Second

// EventsHandler streams snapshot change notifications as Server-Sent Events.
// Clients re-read whatever snapshot the event names.

type EventsHandler struct {
	feed      interfaces.IChangeFeed
	heartbeat time.Duration
	logger    *zap.Logger
}

func NewEventsHandler(feed interfaces.IChangeFeed, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{feed: feed, heartbeat: defaultHeartbeat, logger: logger.Named("events")}
}

type changeEventMessage struct {
	Key     string    `json:"key"`
	Removed bool      `json:"removed"`
	At      time.Time `json:"at"`
}

// @Summary      Stream snapshot changes
// @Tags         events
// @Produce      text/event-stream
// @Success      200 {string} string "text/event-stream"
// @Failure      500 {object} pkg.HTTPError
// @Router       /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	events, err := h.feed.Subscribe(ctx)
	if err != nil {
		h.logger.Warn("subscribe failed", zap.Error(err))
		writeError(c, mapStoreError(err))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("change", changeEventMessage{Key: ev.Key, Removed: ev.Removed, At: ev.At})
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			c.Writer.Flush()
		}
	}
}
