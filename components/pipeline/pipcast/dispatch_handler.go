package pipcast

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/open-control-systems/cast-hub/components/cast"
	"github.com/open-control-systems/cast-hub/components/cast/castdisp"
	"github.com/open-control-systems/cast-hub/components/device"
	"github.com/open-control-systems/cast-hub/components/http/htcore"
)

// Dispatcher applies the same intent to many devices.
type Dispatcher interface {
	// Dispatch applies the intent to the devices and waits for all outcomes.
	Dispatch(intent cast.Intent, devices []device.Device) castdisp.Result
}

// DispatchHandler applies an intent to many devices over HTTP API.
type DispatchHandler struct {
	dispatcher Dispatcher
}

type dispatchRequest struct {
	URL     string          `json:"url"`
	Devices []device.Device `json:"devices"`
}

// NewDispatchHandler is an initialization of DispatchHandler.
func NewDispatchHandler(dispatcher Dispatcher) *DispatchHandler {
	return &DispatchHandler{dispatcher: dispatcher}
}

// HandleCast casts the site on all devices from the request body.
func (h *DispatchHandler) HandleCast(w http.ResponseWriter, r *http.Request) {
	req, err := decodeDispatchRequest(r)
	if err != nil {
		htcore.WriteError(w, err)

		return
	}

	htcore.WriteJSON(w, h.dispatcher.Dispatch(cast.NewCastIntent(req.URL), req.Devices))
}

// HandleStop stops playing on all devices from the request body.
func (h *DispatchHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	req, err := decodeDispatchRequest(r)
	if err != nil {
		htcore.WriteError(w, err)

		return
	}

	htcore.WriteJSON(w, h.dispatcher.Dispatch(cast.NewStopIntent(), req.Devices))
}

func decodeDispatchRequest(r *http.Request) (dispatchRequest, error) {
	var req dispatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return dispatchRequest{}, fmt.Errorf("invalid dispatch request: %w", err)
	}

	return req, nil
}
