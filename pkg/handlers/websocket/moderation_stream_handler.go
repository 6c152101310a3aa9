package websocket

import (
	"time"

	infraWebsocket "github.com/PolyglAI/PolyglAI/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPongWait   = 45 * time.Second
	DefaultPingPeriod = 30 * time.Second
	writeWait         = 10 * time.Second
)

type StreamConfig struct {
	PongWait   time.Duration
	PingPeriod time.Duration
}

type moderationStreamHandler struct {
	logger     *logrus.Logger
	hub        *infraWebsocket.Hub
	semaphore  *infraWebsocket.Semaphore
	pongWait   time.Duration
	pingPeriod time.Duration
}

// NewModerationStreamHandler pushes every new usage record to connected
// admin clients. The connection slot taken by the stream middleware is
// released when the client goes away.
func NewModerationStreamHandler(
	logger *logrus.Logger,
	hub *infraWebsocket.Hub,
	semaphore *infraWebsocket.Semaphore,
	cfg StreamConfig,
) Handler {
	if cfg.PongWait <= 0 {
		cfg.PongWait = DefaultPongWait
	}
	if cfg.PingPeriod <= 0 || cfg.PingPeriod >= cfg.PongWait {
		cfg.PingPeriod = cfg.PongWait * 2 / 3
	}
	return &moderationStreamHandler{
		logger:     logger,
		hub:        hub,
		semaphore:  semaphore,
		pongWait:   cfg.PongWait,
		pingPeriod: cfg.PingPeriod,
	}
}

func (h *moderationStreamHandler) Handle(c *websocket.Conn) {
	if h.semaphore != nil {
		defer h.semaphore.Release()
	}

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	logger := h.logger.WithFields(logrus.Fields{
		"subscriber": sub.ID,
		"remote":     c.RemoteAddr().String(),
	})
	logger.Info("moderation stream client connected")
	defer logger.Info("moderation stream client disconnected")

	if err := c.SetReadDeadline(time.Now().Add(h.pongWait)); err != nil {
		logger.WithError(err).Error("failed to set read deadline")
		return
	}
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	// admin clients never send data; reading only surfaces pongs and close frames
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.WithError(err).Debug("moderation stream read failed")
				}
				return
			}
		}
	}()

	if err := h.write(c, infraWebsocket.Message{
		Type:   infraWebsocket.MessageTypeHello,
		SentAt: time.Now().UTC(),
	}); err != nil {
		logger.WithError(err).Error("failed to send hello message")
		return
	}

	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case msg, ok := <-sub.C:
			if !ok {
				_ = c.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscriber too slow"),
					time.Now().Add(writeWait),
				)
				return
			}
			if err := h.write(c, msg); err != nil {
				logger.WithError(err).Warn("failed to write usage record to stream")
				return
			}
		case <-ticker.C:
			if err := c.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logger.WithError(err).Debug("failed to send ping")
				return
			}
		}
	}
}

func (h *moderationStreamHandler) write(c *websocket.Conn, msg infraWebsocket.Message) error {
	if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.WriteJSON(msg)
}
