package devstore

import (
	"fmt"
	"os"
	"sync"

	"github.com/open-control-systems/cast-hub/components/device"
)

// FileStore keeps devices as a JSON array in a single file.
type FileStore struct {
	path string

	mu sync.Mutex
}

// NewFileStore is an initialization of FileStore.
//
// Parameters:
//   - path - JSON file path, the file is created on the first Save() call.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the devices file.
func (s *FileStore) Load() ([]device.Device, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	devices, err := decodeDevices(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode devices: path=%s err=%w", s.path, err)
	}

	return devices, nil
}

// Save overwrites the devices file.
//
// Remarks:
//   - Saves from the same process are serialized, other writers aren't guarded.
func (s *FileStore) Save(devices []device.Device) error {
	buf, err := encodeDevices(devices)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return os.WriteFile(s.path, buf, 0644)
}
