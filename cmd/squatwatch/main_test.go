package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squatwatch/squatwatch/pkg/config"
)

func TestRun_ServerStartStop(t *testing.T) {
	tmpDir := t.TempDir()

	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	configContent := fmt.Sprintf(`
server:
  listen: "127.0.0.1:%d"

database:
  dsn: "file:%s?cache=shared&mode=rwc"

certstream:
  url: ws://127.0.0.1:1/ws

lookup:
  api_url: https://lookup.invalid/v1/domains
`, port, filepath.Join(tmpDir, "test.db"))

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, cfg, false)
	}()

	// wait for the server to come up
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestSetupLog(t *testing.T) {
	// exercises both modes, panics would fail the test
	setupLog(false)
	setupLog(true, "secret-key")
}
