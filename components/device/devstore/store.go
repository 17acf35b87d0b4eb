package devstore

import (
	"encoding/json"

	"github.com/open-control-systems/cast-hub/components/device"
)

// Store persists the user curated list of devices.
//
// Remarks:
//   - Save overwrites the whole list, concurrent writers race and the last
//     writer wins.
type Store interface {
	// Load returns the persisted devices.
	//
	// Remarks:
	//   - Missing or corrupted storage is reported as an error.
	Load() ([]device.Device, error)

	// Save replaces the persisted devices with the provided ones.
	Save(devices []device.Device) error
}

func encodeDevices(devices []device.Device) ([]byte, error) {
	if devices == nil {
		devices = []device.Device{}
	}

	return json.Marshal(devices)
}

func decodeDevices(buf []byte) ([]device.Device, error) {
	var devices []device.Device

	if err := json.Unmarshal(buf, &devices); err != nil {
		return nil, err
	}

	if devices == nil {
		devices = []device.Device{}
	}

	return devices, nil
}
