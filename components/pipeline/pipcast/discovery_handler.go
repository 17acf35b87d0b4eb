package pipcast

import (
	"net/http"

	"github.com/open-control-systems/cast-hub/components/device"
	"github.com/open-control-systems/cast-hub/components/http/htcore"
)

// DiscoveryFeed provides the devices found on the local network.
type DiscoveryFeed interface {
	// Snapshot returns a copy of the currently known devices.
	Snapshot() []device.DiscoveredDevice
}

// DiscoveryHandler exposes the discovered devices over HTTP API.
type DiscoveryHandler struct {
	feed DiscoveryFeed
}

// NewDiscoveryHandler is an initialization of DiscoveryHandler.
func NewDiscoveryHandler(feed DiscoveryFeed) *DiscoveryHandler {
	return &DiscoveryHandler{feed: feed}
}

// HandleList returns all discovered devices.
func (h *DiscoveryHandler) HandleList(w http.ResponseWriter, _ *http.Request) {
	htcore.WriteJSON(w, h.feed.Snapshot())
}
