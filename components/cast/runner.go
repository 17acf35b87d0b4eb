package cast

import (
	"github.com/open-control-systems/cast-hub/components/device"
)

// Runner applies the intent to a single device.
type Runner interface {
	// Run applies the intent to the device and returns the outcome.
	//
	// Remarks:
	//   - Run never returns a raw error, failures are reported in the outcome.
	Run(d device.Device, intent Intent) Outcome
}
