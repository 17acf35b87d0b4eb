package devstore

import (
	"fmt"
	"sync"

	"github.com/open-control-systems/cast-hub/components/device"
	"github.com/open-control-systems/cast-hub/components/storage/stcore"
)

// DBStore keeps devices as a single JSON document in the key-value database.
type DBStore struct {
	db  stcore.DB
	key string

	mu sync.Mutex
}

// NewDBStore is an initialization of DBStore.
//
// Parameters:
//   - db to persist the devices document.
//   - key under which the document is stored.
func NewDBStore(db stcore.DB, key string) *DBStore {
	return &DBStore{
		db:  db,
		key: key,
	}
}

// Load reads the devices document.
//
// Remarks:
//   - status.StatusNoData is returned if the document was never saved.
func (s *DBStore) Load() ([]device.Device, error) {
	blob, err := s.db.Read(s.key)
	if err != nil {
		return nil, err
	}

	devices, err := decodeDevices(blob.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode devices: key=%s err=%w", s.key, err)
	}

	return devices, nil
}

// Save overwrites the devices document.
func (s *DBStore) Save(devices []device.Device) error {
	buf, err := encodeDevices(devices)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Write(s.key, stcore.Blob{Data: buf}); err != nil {
		return fmt.Errorf("failed to persist devices: key=%s err=%w", s.key, err)
	}

	return nil
}
