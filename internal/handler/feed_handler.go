package handler

import (
	"net/http"
	"time"

	"github.com/farmlink/internal/middleware"
	"github.com/farmlink/internal/service"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

const (
	feedPingInterval = 30 * time.Second
	feedWriteTimeout = 10 * time.Second
)

// FeedHandler streams a user's incoming messages over a websocket, fed by
// the redis channel the message service publishes on.
type FeedHandler struct {
	rdb      *redis.Client
	upgrader websocket.Upgrader
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(rdb *redis.Client) *FeedHandler {
	return &FeedHandler{
		rdb: rdb,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// MessageFeed handles the live inbox feed
// GET /ws/messages
func (h *FeedHandler) MessageFeed(c *gin.Context) {
	user := middleware.GetUser(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.BadRequest(c, "websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.rdb.Subscribe(ctx, service.MessageChannel(user.ID))
	defer pubsub.Close()

	// Drain client frames so close handshakes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(feedPingInterval)
	defer pingTicker.Stop()

	ch := pubsub.Channel()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// RegisterRoutes registers the feed route
func (h *FeedHandler) RegisterRoutes(r gin.IRouter, authMiddleware gin.HandlerFunc) {
	r.GET("/ws/messages", authMiddleware, h.MessageFeed)
}
