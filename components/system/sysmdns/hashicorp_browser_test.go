package sysmdns

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/require"
)

type testServiceHandler struct {
	mu       sync.Mutex
	services []Service
	err      error
}

func (h *testServiceHandler) HandleService(service Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.services = append(h.services, service)

	return h.err
}

func (h *testServiceHandler) get() []Service {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Service(nil), h.services...)
}

func TestHashicorpBrowserRun(t *testing.T) {
	handler := &testServiceHandler{}

	browser := NewHashicorpBrowser(context.Background(), handler, BrowserParams{
		Service: ServiceName(ServiceTypeGooglecast, ProtoTCP),
		Domain:  "local",
		Timeout: time.Millisecond * 100,
	})

	var queried *mdns.QueryParam

	browser.query = func(params *mdns.QueryParam) error {
		queried = params

		params.Entries <- &mdns.ServiceEntry{
			Name:       `Living\ Room\ TV._googlecast._tcp.local.`,
			Host:       "5a1c0f.local.",
			AddrV4:     net.IPv4(192, 168, 1, 5),
			Port:       8009,
			InfoFields: []string{"id=5a1c0f", "fn=Living Room"},
		}
		params.Entries <- &mdns.ServiceEntry{
			Name:   "printer._ipp._tcp.local.",
			Host:   "printer.local.",
			AddrV4: net.IPv4(192, 168, 1, 9),
			Port:   631,
		}
		params.Entries <- &mdns.ServiceEntry{
			Name: "no-addr._googlecast._tcp.local.",
			Host: "no-addr.local.",
			Port: 8009,
		}

		return nil
	}

	require.Nil(t, browser.Run())

	require.NotNil(t, queried)
	require.Equal(t, "_googlecast._tcp", queried.Service)
	require.Equal(t, "local", queried.Domain)
	require.Equal(t, time.Millisecond*100, queried.Timeout)

	services := handler.get()
	require.Len(t, services, 1)

	svc := services[0]
	require.Equal(t, "Living Room TV", svc.Instance())
	require.Equal(t, "_googlecast._tcp", svc.Name())
	require.Equal(t, "local", svc.Domain())
	require.Equal(t, "5a1c0f.local", svc.Hostname())
	require.Equal(t, 8009, svc.Port())
	require.Equal(t, []string{"id=5a1c0f", "fn=Living Room"}, svc.TxtRecords())
	require.Len(t, svc.Addrs(), 1)
	require.True(t, svc.Addrs()[0].Equal(net.IPv4(192, 168, 1, 5)))
}

func TestHashicorpBrowserRunQueryFailed(t *testing.T) {
	handler := &testServiceHandler{}

	browser := NewHashicorpBrowser(context.Background(), handler, BrowserParams{
		Service: "_googlecast._tcp",
		Domain:  "local",
		Timeout: time.Millisecond * 100,
	})

	queryErr := errors.New("no multicast interface")
	browser.query = func(*mdns.QueryParam) error {
		return queryErr
	}

	require.Equal(t, queryErr, browser.Run())
	require.Empty(t, handler.get())
}

func TestHashicorpBrowserRunContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	browser := NewHashicorpBrowser(ctx, &testServiceHandler{}, BrowserParams{
		Service: "_googlecast._tcp",
		Domain:  "local",
		Timeout: time.Millisecond * 100,
	})

	browser.query = func(*mdns.QueryParam) error {
		t.Fatal("query shouldn't be called")

		return nil
	}

	require.Nil(t, browser.Run())
}
