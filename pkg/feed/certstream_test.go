package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const certUpdateMsg = `{
	"message_type": "certificate_update",
	"data": {
		"update_type": "X509LogEntry",
		"leaf_cert": {
			"subject": {"CN": "paypa1.com"},
			"all_domains": ["paypa1.com", "*.paypa1.com"],
			"issuer": {"CN": "Let's Encrypt"},
			"serial_number": "abc123"
		}
	}
}`

// wsTestServer serves one websocket connection per request, sending the
// provided messages then closing.
func wsTestServer(t *testing.T, messages []string, connCount *int, mu *sync.Mutex) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		mu.Lock()
		*connCount++
		mu.Unlock()

		for _, msg := range messages {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
		}
	}))
}

func TestCertStream_DeliversValidRecords(t *testing.T) {
	var mu sync.Mutex
	var conns int
	srv := wsTestServer(t, []string{
		`{"message_type": "heartbeat"}`,       // wrong type, dropped
		`this is not json`,                    // malformed, dropped silently
		`{"message_type": "certificate_update", "data": {}}`, // missing leaf_cert, dropped
		certUpdateMsg,
	}, &conns, &mu)
	defer srv.Close()

	records := make(chan Record, 10)
	cs := NewCertStream(CertStreamParams{
		URL:            "ws" + strings.TrimPrefix(srv.URL, "http"),
		ReconnectDelay: 50 * time.Millisecond,
		OnRecord:       func(rec Record) { records <- rec },
		OnStatus:       func(bool) {},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cs.Run(ctx)

	select {
	case rec := <-records:
		assert.Equal(t, []string{"paypa1.com", "*.paypa1.com"}, rec.Data.LeafCert.AllDomains)
		assert.Equal(t, "Let's Encrypt", rec.Data.LeafCert.IssuerCN())
	case <-time.After(3 * time.Second):
		t.Fatal("no record received")
	}

	// only the one valid record should have been delivered from this batch
	select {
	case rec := <-records:
		// a reconnect can replay the batch, the record must still be the valid one
		assert.Equal(t, "certificate_update", rec.MessageType)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCertStream_ReconnectsAfterClose(t *testing.T) {
	var mu sync.Mutex
	var conns int
	srv := wsTestServer(t, []string{certUpdateMsg}, &conns, &mu)
	defer srv.Close()

	var statusMu sync.Mutex
	var transitions []bool
	cs := NewCertStream(CertStreamParams{
		URL:            "ws" + strings.TrimPrefix(srv.URL, "http"),
		ReconnectDelay: 20 * time.Millisecond,
		OnRecord:       func(Record) {},
		OnStatus: func(connected bool) {
			statusMu.Lock()
			transitions = append(transitions, connected)
			statusMu.Unlock()
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	go cs.Run(ctx)

	// wait until the server has seen at least two connections
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return conns >= 2
	}, 3*time.Second, 10*time.Millisecond, "client must reconnect after server close")

	cancel()

	statusMu.Lock()
	defer statusMu.Unlock()
	assert.GreaterOrEqual(t, len(transitions), 2)
	assert.True(t, transitions[0], "first transition is connect")
}

func TestCertStream_StopsOnCancel(t *testing.T) {
	var mu sync.Mutex
	var conns int
	srv := wsTestServer(t, nil, &conns, &mu)
	defer srv.Close()

	cs := NewCertStream(CertStreamParams{
		URL:            "ws" + strings.TrimPrefix(srv.URL, "http"),
		ReconnectDelay: 10 * time.Millisecond,
		OnRecord:       func(Record) {},
		OnStatus:       func(bool) {},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cs.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRecord_Valid(t *testing.T) {
	assert.False(t, (&Record{MessageType: "heartbeat"}).Valid())
	assert.False(t, (&Record{MessageType: "certificate_update"}).Valid())
	assert.True(t, (&Record{
		MessageType: "certificate_update",
		Data:        Data{LeafCert: &LeafCert{Subject: map[string]string{"CN": "x"}}},
	}).Valid())
}

func TestLeafCert_IssuerCN(t *testing.T) {
	assert.Equal(t, "Unknown", (&LeafCert{}).IssuerCN())
	assert.Equal(t, "Unknown", (&LeafCert{Issuer: map[string]string{"CN": ""}}).IssuerCN())
	assert.Equal(t, "DigiCert", (&LeafCert{Issuer: map[string]string{"CN": "DigiCert"}}).IssuerCN())
}
