package pipcast

import (
	"net/http"

	"github.com/open-control-systems/cast-hub/components/cast"
	"github.com/open-control-systems/cast-hub/components/device"
	"github.com/open-control-systems/cast-hub/components/http/htcore"
)

// CastHandler applies an intent to a single device over HTTP API.
//
// Remarks:
//   - Failures of the device are reported with HTTP 200 and the failure message.
type CastHandler struct {
	runner cast.Runner
}

// NewCastHandler is an initialization of CastHandler.
//
// Parameters:
//   - runner to apply the intent to the device.
func NewCastHandler(runner cast.Runner) *CastHandler {
	return &CastHandler{runner: runner}
}

// HandleCast casts the site from the `url` query parameter on the `host` device.
func (h *CastHandler) HandleCast(w http.ResponseWriter, r *http.Request) {
	d := device.Device{Address: r.PathValue("host")}

	outcome := h.runner.Run(d, cast.NewCastIntent(r.URL.Query().Get("url")))

	htcore.WriteText(w, outcome.Message)
}

// HandleStop stops playing on the `host` device.
func (h *CastHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	d := device.Device{Address: r.PathValue("host")}

	outcome := h.runner.Run(d, cast.NewStopIntent())

	htcore.WriteText(w, outcome.Message)
}
