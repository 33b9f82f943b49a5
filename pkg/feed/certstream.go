package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/gorilla/websocket"
)

// defaultReconnectDelay is the fixed backoff between reconnect attempts.
// There is no retry cap: the stream is cheap and the policy is always-on,
// a permanently unreachable endpoint keeps retrying at this period.
const defaultReconnectDelay = 5 * time.Second

// CertStream consumes a certstream-compatible websocket and delivers parsed
// certificate records to the handler. It holds no state beyond the
// connection itself; pausing and filtering decisions belong to the consumer.
type CertStream struct {
	url            string
	reconnectDelay time.Duration
	onRecord       func(rec Record)
	onStatus       func(connected bool)
}

// CertStreamParams configures the stream client
type CertStreamParams struct {
	URL            string
	ReconnectDelay time.Duration        // defaults to 5s
	OnRecord       func(rec Record)     // called per valid certificate update
	OnStatus       func(connected bool) // called on connect/disconnect transitions
}

// NewCertStream creates a stream client
func NewCertStream(params CertStreamParams) *CertStream {
	if params.ReconnectDelay == 0 {
		params.ReconnectDelay = defaultReconnectDelay
	}
	return &CertStream{
		url:            params.URL,
		reconnectDelay: params.ReconnectDelay,
		onRecord:       params.OnRecord,
		onStatus:       params.OnStatus,
	}
}

// Run connects and reads until the context is canceled, reconnecting after
// the fixed delay on any error or close. Blocks for the lifetime of ctx.
func (c *CertStream) Run(ctx context.Context) {
	for {
		if err := c.connectAndRead(ctx); err != nil {
			lgr.Printf("[WARN] certstream connection lost: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.reconnectDelay):
		}
	}
}

// connectAndRead runs a single connection lifecycle
func (c *CertStream) connectAndRead(ctx context.Context) error {
	lgr.Printf("[INFO] connecting to certstream at %s", c.url)

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	lgr.Printf("[INFO] connected to certstream")
	c.onStatus(true)
	defer c.onStatus(false)

	// close the connection when ctx is canceled to unblock ReadMessage
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		var rec Record
		if err := json.Unmarshal(msg, &rec); err != nil {
			continue // malformed records are dropped, not connection errors
		}
		if !rec.Valid() {
			continue
		}

		c.onRecord(rec)
	}
}
