package devdiscover

import (
	"sync"

	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/device"
)

// Feed holds the latest observation of every media receiver seen on the network.
//
// Remarks:
//   - Devices are keyed by ID. A later observation replaces the earlier one in place.
//   - Devices are never removed.
type Feed struct {
	mu      sync.RWMutex
	devices []device.DiscoveredDevice
	index   map[string]int
}

// NewFeed is an initialization of Feed.
func NewFeed() *Feed {
	return &Feed{
		index: make(map[string]int),
	}
}

// HandleDiscovered adds the device seen for the first time, or replaces
// the previous record with the same ID.
func (f *Feed) HandleDiscovered(d device.DiscoveredDevice) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if pos, ok := f.index[d.ID]; ok {
		f.devices[pos] = d.Clone()

		return
	}

	f.index[d.ID] = len(f.devices)
	f.devices = append(f.devices, d.Clone())

	core.LogInf.Printf("discovery-feed: device online: id=%s name=%s addrs=%v\n",
		d.ID, d.FriendlyName, d.Addresses)
}

// Snapshot returns a copy of the known devices in the order they were first seen.
func (f *Feed) Snapshot() []device.DiscoveredDevice {
	f.mu.RLock()
	defer f.mu.RUnlock()

	devices := make([]device.DiscoveredDevice, 0, len(f.devices))
	for _, d := range f.devices {
		devices = append(devices, d.Clone())
	}

	return devices
}
