package pipcast

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/device"
	"github.com/open-control-systems/cast-hub/components/device/devstore"
	"github.com/open-control-systems/cast-hub/components/http/htcore"
)

// DeviceHandler allows to read and overwrite the device registry over HTTP API.
type DeviceHandler struct {
	store devstore.Store
}

// NewDeviceHandler is an initialization of DeviceHandler.
//
// Parameters:
//   - store to persist devices.
func NewDeviceHandler(store devstore.Store) *DeviceHandler {
	return &DeviceHandler{store: store}
}

// HandleList returns all registered devices.
func (h *DeviceHandler) HandleList(w http.ResponseWriter, _ *http.Request) {
	devices, err := h.store.Load()
	if err != nil {
		core.LogErr.Printf("device-handler: failed to load devices: %v\n", err)

		htcore.WriteError(w, err)

		return
	}

	htcore.WriteJSON(w, devices)
}

// HandleSave replaces all registered devices with the ones from the request body.
func (h *DeviceHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var devices []device.Device

	if err := json.NewDecoder(r.Body).Decode(&devices); err != nil {
		htcore.WriteError(w, fmt.Errorf("invalid devices: %w", err))

		return
	}

	if err := h.store.Save(devices); err != nil {
		core.LogErr.Printf("device-handler: failed to save devices: %v\n", err)

		htcore.WriteError(w, err)

		return
	}

	core.LogInf.Printf("device-handler: devices saved: count=%d\n", len(devices))

	htcore.WriteText(w, "ok")
}
