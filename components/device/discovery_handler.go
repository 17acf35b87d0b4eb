package device

// DiscoveryHandler handles media receivers observed on the local network.
type DiscoveryHandler interface {
	// HandleDiscovered handles the latest observation of the device.
	HandleDiscovered(device DiscoveredDevice)
}
