package ws

import (
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nanoshift/nanogo/internal/metrics"
	"github.com/nanoshift/nanogo/nanoerr"
)

// Client is a single full-duplex websocket connection to a node's event
// stream. It is single-owner: Receive and Subscribe/Unsubscribe must be
// serialized by the caller, per §5. Close is safe to call concurrently
// with itself and is idempotent.
type Client struct {
	conn   *websocket.Conn
	closed atomic.Bool
	mu     sync.Mutex // guards writes
	logger *zap.Logger
}

// Dial opens a websocket connection to url (e.g. "ws://localhost:7078").
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, nanoerr.Wrap(nanoerr.WebSocketConnectionFailed, err)
	}
	metrics.WebSocketConnectionsActive.Inc()
	return &Client{conn: conn, logger: zap.NewNop()}, nil
}

// SetLogger attaches logger for connection/message logging.
func (c *Client) SetLogger(logger *zap.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Subscribe sends a subscribe frame for topic with the given options
// (options may be nil).
func (c *Client) Subscribe(topic string, opts *SubscribeOptions) error {
	return c.send(subscribeEnvelope{Action: "subscribe", Topic: topic, Options: opts})
}

// Unsubscribe sends an unsubscribe frame for topic.
func (c *Client) Unsubscribe(topic string) error {
	return c.send(subscribeEnvelope{Action: "unsubscribe", Topic: topic})
}

func (c *Client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(v); err != nil {
		return nanoerr.Wrap(nanoerr.WebSocketSubscriptionFailed, err)
	}
	return nil
}

// Receive reads the next frame. Acknowledgement frames are consumed
// internally and never returned; Receive keeps reading until a topic
// frame arrives. It returns (nil, nil) on orderly close and a
// WebSocketConnectionFailed error on transport failure; after either,
// further calls are the caller's responsibility (per §5, Receive does not
// auto-reconnect).
func (c *Client) Receive() (*Event, error) {
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info("websocket closed by peer")
				return nil, nil
			}
			c.logger.Warn("websocket read failed", zap.Error(err))
			return nil, nanoerr.Wrap(nanoerr.WebSocketConnectionFailed, err)
		}

		event, isAck, err := parseInbound(raw)
		if err != nil {
			c.logger.Warn("invalid websocket message", zap.Error(err))
			return nil, nanoerr.Wrap(nanoerr.WebSocketInvalidMessage, err)
		}
		if isAck {
			continue
		}

		label := event.RawTopic
		if label == "" {
			label = "unknown"
		}
		metrics.WebSocketMessagesReceived.WithLabelValues(label).Inc()
		return event, nil
	}
}

// Close closes the underlying connection. Safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	metrics.WebSocketConnectionsActive.Dec()
	return c.conn.Close()
}
