package devstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/cast-hub/components/device"
)

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "config.json"))

	devices, err := store.Load()
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
	require.Nil(t, devices)
}

func TestFileStoreLoadCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.Nil(t, os.WriteFile(path, []byte(`[{"address":`), 0644))

	store := NewFileStore(path)

	devices, err := store.Load()
	require.Error(t, err)
	require.Nil(t, devices)
}

func TestFileStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewFileStore(path)

	saved := []device.Device{
		{Address: "192.168.1.5", FriendlyName: "Living Room"},
		{Address: "192.168.1.6", FriendlyName: "Kitchen"},
	}
	require.Nil(t, store.Save(saved))

	loaded, err := store.Load()
	require.Nil(t, err)
	require.Equal(t, saved, loaded)

	buf, err := os.ReadFile(path)
	require.Nil(t, err)
	require.JSONEq(t, `[
		{"address":"192.168.1.5","friendlyName":"Living Room"},
		{"address":"192.168.1.6","friendlyName":"Kitchen"}
	]`, string(buf))
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "config.json"))

	require.Nil(t, store.Save([]device.Device{
		{Address: "192.168.1.5", FriendlyName: "Living Room"},
		{Address: "192.168.1.6", FriendlyName: "Kitchen"},
	}))

	last := []device.Device{{Address: "192.168.1.7", FriendlyName: "Office"}}
	require.Nil(t, store.Save(last))

	loaded, err := store.Load()
	require.Nil(t, err)
	require.Equal(t, last, loaded)
}

func TestFileStoreSaveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewFileStore(path)

	require.Nil(t, store.Save(nil))

	buf, err := os.ReadFile(path)
	require.Nil(t, err)
	require.Equal(t, "[]", string(buf))

	loaded, err := store.Load()
	require.Nil(t, err)
	require.Empty(t, loaded)
	require.NotNil(t, loaded)
}

func TestFileStoreSaveInvalidPath(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing", "config.json"))

	require.Error(t, store.Save([]device.Device{{Address: "192.168.1.5"}}))
}
