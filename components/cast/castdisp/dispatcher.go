package castdisp

import (
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/open-control-systems/cast-hub/components/cast"
	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/device"
)

// Result is the aggregated outcome of a single dispatch.
type Result struct {
	// ID is the unique dispatch identifier.
	ID string `json:"id"`

	// Outcomes are in the same order as the dispatched devices.
	Outcomes []cast.Outcome `json:"outcomes"`
}

// DispatcherParams provides various configuration options for Dispatcher.
type DispatcherParams struct {
	// Limit is the maximum number of devices handled at once, 0 means no limit.
	Limit int
}

// Dispatcher applies the same intent to many devices at once.
type Dispatcher struct {
	runner  cast.Runner
	handler cast.OutcomeHandler
	limit   int
}

// NewDispatcher is an initialization of Dispatcher.
//
// Parameters:
//   - runner - to apply the intent to a single device.
//   - handler - to handle every outcome, optional.
//   - params - various dispatcher configuration parameters.
func NewDispatcher(
	runner cast.Runner,
	handler cast.OutcomeHandler,
	params DispatcherParams,
) *Dispatcher {
	return &Dispatcher{
		runner:  runner,
		handler: handler,
		limit:   params.Limit,
	}
}

// Dispatch applies the intent to all devices and waits for all outcomes.
//
// Remarks:
//   - A failed device never prevents the intent from being applied to the others.
//   - Empty devices list results in empty outcomes, the runner isn't called.
func (d *Dispatcher) Dispatch(intent cast.Intent, devices []device.Device) Result {
	result := Result{
		ID:       uuid.NewString(),
		Outcomes: make([]cast.Outcome, len(devices)),
	}

	if len(devices) == 0 {
		return result
	}

	core.LogInf.Printf("cast-dispatcher: dispatching: id=%s intent=%s devices=%d\n",
		result.ID, intent.Kind, len(devices))

	var group errgroup.Group
	if d.limit > 0 {
		group.SetLimit(d.limit)
	}

	for pos, dev := range devices {
		group.Go(func() error {
			result.Outcomes[pos] = d.runner.Run(dev, intent)

			return nil
		})
	}

	_ = group.Wait()

	failed := 0

	for _, outcome := range result.Outcomes {
		if !outcome.OK {
			failed++
		}

		if d.handler != nil {
			if err := d.handler.HandleOutcome(result.ID, intent, outcome); err != nil {
				core.LogErr.Printf("cast-dispatcher: failed to handle outcome: id=%s"+
					" device=%s err=%v\n", result.ID, outcome.Device.Address, err)
			}
		}
	}

	core.LogInf.Printf("cast-dispatcher: dispatched: id=%s intent=%s devices=%d failed=%d\n",
		result.ID, intent.Kind, len(devices), failed)

	return result
}
