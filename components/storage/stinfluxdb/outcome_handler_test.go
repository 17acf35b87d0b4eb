package stinfluxdb

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/cast-hub/components/cast"
	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/device"
)

type testWriteServer struct {
	mu     sync.Mutex
	lines  []string
	org    string
	bucket string
	code   int
}

func (s *testWriteServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, string(body))
	s.org = r.URL.Query().Get("org")
	s.bucket = r.URL.Query().Get("bucket")

	if s.code != 0 {
		http.Error(w, `{"code":"internal error","message":"unavailable"}`, s.code)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func TestOutcomeHandlerWrite(t *testing.T) {
	writeServer := &testWriteServer{}

	mux := http.NewServeMux()
	mux.Handle("/api/v2/write", writeServer)

	server := httptest.NewServer(mux)
	defer server.Close()

	closer := &core.FanoutCloser{}
	defer closer.Close()

	handler := NewOutcomeHandler(context.Background(), closer, DBParams{
		URL:    server.URL,
		Org:    "home",
		Token:  "token",
		Bucket: "cast",
	})

	d := device.Device{Address: "192.168.1.5", FriendlyName: "Living Room"}

	require.Nil(t, handler.HandleOutcome("batch-1",
		cast.NewCastIntent("https://example.com"), cast.NewOkOutcome(d)))

	writeServer.mu.Lock()
	defer writeServer.mu.Unlock()

	require.Equal(t, "home", writeServer.org)
	require.Equal(t, "cast", writeServer.bucket)
	require.Len(t, writeServer.lines, 1)

	line := writeServer.lines[0]
	require.Contains(t, line, "cast_outcome,device=192.168.1.5,intent=cast ")
	require.Contains(t, line, `batch_id="batch-1"`)
	require.Contains(t, line, `message="ok"`)
	require.Contains(t, line, "ok=true")
	require.Contains(t, line, `url="https://example.com"`)
}

func TestOutcomeHandlerWriteStop(t *testing.T) {
	writeServer := &testWriteServer{}

	server := httptest.NewServer(writeServer)
	defer server.Close()

	closer := &core.FanoutCloser{}
	defer closer.Close()

	handler := NewOutcomeHandler(context.Background(), closer, DBParams{
		URL:    server.URL,
		Org:    "home",
		Bucket: "cast",
	})

	d := device.Device{Address: "192.168.1.6"}

	require.Nil(t, handler.HandleOutcome("batch-2",
		cast.NewStopIntent(), cast.NewFailedOutcome(d, "Error: Device not found.")))

	writeServer.mu.Lock()
	defer writeServer.mu.Unlock()

	require.Len(t, writeServer.lines, 1)

	line := writeServer.lines[0]
	require.Contains(t, line, "cast_outcome,device=192.168.1.6,intent=stop ")
	require.Contains(t, line, "ok=false")
	require.NotContains(t, line, "url=")
}

func TestOutcomeHandlerWriteFailed(t *testing.T) {
	writeServer := &testWriteServer{code: http.StatusInternalServerError}

	server := httptest.NewServer(writeServer)
	defer server.Close()

	closer := &core.FanoutCloser{}
	defer closer.Close()

	handler := NewOutcomeHandler(context.Background(), closer, DBParams{
		URL:    server.URL,
		Org:    "home",
		Bucket: "cast",
	})

	err := handler.HandleOutcome("batch-3", cast.NewStopIntent(),
		cast.NewOkOutcome(device.Device{Address: "192.168.1.5"}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "influxdb-outcome-handler: failed to write to DB")
}
