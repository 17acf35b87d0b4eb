package cast

import (
	"github.com/open-control-systems/cast-hub/components/device"
)

// OutcomeOK is the message of every successful outcome.
const OutcomeOK = "ok"

// Outcome is the normalized result of an intent applied to a single device.
type Outcome struct {
	Device  device.Device `json:"device"`
	OK      bool          `json:"ok"`
	Message string        `json:"message"`
}

// NewOkOutcome returns the successful outcome for the device.
func NewOkOutcome(d device.Device) Outcome {
	return Outcome{Device: d, OK: true, Message: OutcomeOK}
}

// NewFailedOutcome returns the failed outcome for the device.
//
// Remarks:
//   - message can be empty, if the tool failed silently.
func NewFailedOutcome(d device.Device, message string) Outcome {
	return Outcome{Device: d, OK: false, Message: message}
}
