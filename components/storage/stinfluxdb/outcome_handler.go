package stinfluxdb

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/open-control-systems/cast-hub/components/cast"
	"github.com/open-control-systems/cast-hub/components/core"
)

// OutcomeHandler stores dispatch outcomes in influxDB.
//
// References:
//   - https://docs.influxdata.com/influxdb/cloud/get-started
//   - https://docs.influxdata.com/influxdb/cloud/api-guide/client-libraries/go/
type OutcomeHandler struct {
	ctx         context.Context
	dbClient    influxdb2.Client
	writeClient api.WriteAPIBlocking
}

// NewOutcomeHandler initializes influxDB handler.
//
// Parameters:
//   - ctx - parent context.
//   - closer - to register the handler for the underlying resource deallocation.
//   - params - various influxDB configuration parameters.
func NewOutcomeHandler(
	ctx context.Context,
	closer *core.FanoutCloser,
	params DBParams,
) *OutcomeHandler {
	dbClient := influxdb2.NewClient(params.URL, params.Token)
	writeClient := dbClient.WriteAPIBlocking(params.Org, params.Bucket)

	handler := &OutcomeHandler{
		ctx:         ctx,
		dbClient:    dbClient,
		writeClient: writeClient,
	}

	closer.Add("influxdb-outcome-handler", handler)

	core.LogInf.Printf("influxdb-outcome-handler: started: url=%s org=%s bucket=%s\n",
		params.URL, params.Org, params.Bucket)

	return handler
}

// HandleOutcome stores the outcome as a single point.
func (h *OutcomeHandler) HandleOutcome(
	batchID string,
	intent cast.Intent,
	outcome cast.Outcome,
) error {
	fields := map[string]interface{}{
		"batch_id": batchID,
		"ok":       outcome.OK,
		"message":  outcome.Message,
	}
	if intent.Kind == cast.IntentCast {
		fields["url"] = intent.URL
	}

	point := influxdb2.NewPoint(MeasurementOutcome,
		map[string]string{
			"device": outcome.Device.Address,
			"intent": intent.Kind.String(),
		},
		fields,
		time.Now())

	if err := h.writeClient.WritePoint(h.ctx, point); err != nil {
		return fmt.Errorf("influxdb-outcome-handler: failed to write to DB: %w", err)
	}

	return nil
}

// Close stops writing data to the DB.
func (h *OutcomeHandler) Close() error {
	h.dbClient.Close()

	return nil
}
