package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"hello-devsecops/internal/shared/configs"
	"hello-devsecops/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *configs.Config {
	return &configs.Config{
		Server: configs.ServerConfig{
			Port:              3000,
			ReadHeaderTimeout: 5,
			ReadTimeout:       10,
			WriteTimeout:      10,
			IdleTimeout:       60,
		},
		Log: configs.LogConfig{Level: "info"},
		Metrics: configs.MetricsConfig{
			ProcessCollectors: true,
		},
	}
}

func quietLogger(t *testing.T) loggers.Logger {
	t.Helper()

	logger, err := loggers.NewWithWriter("info", io.Discard)
	require.NoError(t, err)
	return logger
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Log.Level = "loud"

	application, err := New(cfg)
	assert.Nil(t, application)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize logger")
}

func TestNew_ServerSettings(t *testing.T) {
	t.Parallel()

	application, err := New(testConfig(), WithLogger(quietLogger(t)))
	require.NoError(t, err)

	assert.Equal(t, ":3000", application.server.Addr)
	assert.Equal(t, 5*time.Second, application.server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, application.server.ReadTimeout)
	assert.Equal(t, 10*time.Second, application.server.WriteTimeout)
	assert.Equal(t, 60*time.Second, application.server.IdleTimeout)
}

func TestApp_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	application, err := New(testConfig(), WithLogger(quietLogger(t)), WithStdout(&stdout))
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port

	served := make(chan error, 1)
	go func() {
		served <- application.Serve(listener)
	}()

	baseURL := fmt.Sprintf("http://%s", listener.Addr().String())

	resp, err := http.Get(baseURL + "/health")
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "ok"}, body)

	resp, err = http.Get(baseURL + "/metrics")
	require.NoError(t, err)
	metricsBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, application.registry.ContentType(), resp.Header.Get("Content-Type"))
	assert.Contains(t, string(metricsBody), `http_requests_total{method="GET",route="/health",status="200"} 1`)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, application.Shutdown(ctx))
	assert.ErrorIs(t, <-served, http.ErrServerClosed)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Equal(t, []string{
		fmt.Sprintf("App started on port %d", port),
		fmt.Sprintf("→ http://localhost:%d/", port),
		fmt.Sprintf("→ http://localhost:%d/health", port),
		fmt.Sprintf("→ http://localhost:%d/metrics", port),
	}, lines)
}

func TestApp_StartFailsWhenPortTaken(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	cfg := testConfig()
	cfg.Server.Port = listener.Addr().(*net.TCPAddr).Port

	var stdout bytes.Buffer
	application, err := New(cfg, WithLogger(quietLogger(t)), WithStdout(&stdout))
	require.NoError(t, err)

	err = application.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
	assert.Empty(t, stdout.String(), "banner is printed only after a successful bind")
}
