package pipstore

import (
	"fmt"

	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/device/devstore"
	"github.com/open-control-systems/cast-hub/components/status"
	"github.com/open-control-systems/cast-hub/components/storage/stcore"
)

const (
	// StorageFile keeps devices in a JSON file.
	StorageFile = "file"

	// StorageBbolt keeps devices in a bbolt database.
	StorageBbolt = "bbolt"

	bucketRegistry = "registry"
	keyDevices     = "devices"
)

// PipelineParams represents various configuration options for the device registry.
type PipelineParams struct {
	// Storage is one of StorageFile, StorageBbolt.
	Storage string

	// ConfigPath is a JSON file path, used with StorageFile.
	ConfigPath string

	// DBPath is a bbolt database path, used with StorageBbolt.
	DBPath string
}

// NewStore creates the device registry.
//
// Parameters:
//   - closer - to register the underlying database for deallocation.
//   - params - various registry configuration parameters.
func NewStore(closer *core.FanoutCloser, params PipelineParams) (devstore.Store, error) {
	switch params.Storage {
	case StorageFile:
		core.LogInf.Printf("store-pipeline: using file storage: path=%s\n", params.ConfigPath)

		return devstore.NewFileStore(params.ConfigPath), nil

	case StorageBbolt:
		db, err := stcore.NewBboltDB(params.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open bbolt DB: path=%s err=%w", params.DBPath, err)
		}
		closer.Add("bbolt-db", db)

		core.LogInf.Printf("store-pipeline: using bbolt storage: path=%s\n", params.DBPath)

		return devstore.NewDBStore(stcore.NewBboltDBBucket(db, bucketRegistry), keyDevices), nil

	default:
		return nil, fmt.Errorf("unknown storage: %s: %w", params.Storage, status.StatusInvalidArg)
	}
}
