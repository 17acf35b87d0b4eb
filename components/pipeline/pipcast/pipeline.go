package pipcast

import (
	"context"
	"net/http"

	"github.com/open-control-systems/cast-hub/components/cast"
	"github.com/open-control-systems/cast-hub/components/cast/castcmd"
	"github.com/open-control-systems/cast-hub/components/cast/castdisp"
	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/device/devstore"
)

// PipelineParams represents various configuration options for the cast pipeline.
type PipelineParams struct {
	// CattPath is the path to the casting tool executable.
	CattPath string

	// DispatchLimit is the maximum number of devices handled at once, 0 means no limit.
	DispatchLimit int
}

// Pipeline contains various building blocks to control media receivers over HTTP API.
type Pipeline struct {
	dispatcher *castdisp.Dispatcher
}

// NewPipeline initializes all components associated with casting.
//
// Parameters:
//   - ctx - parent context, cancels running casting processes when done.
//   - mux - to register HTTP endpoints.
//   - store - to persist the user curated devices.
//   - feed - to get the devices found on the local network.
//   - handler - to handle every dispatched outcome, optional.
//   - params - various pipeline configuration parameters.
func NewPipeline(
	ctx context.Context,
	mux *http.ServeMux,
	store devstore.Store,
	feed DiscoveryFeed,
	handler cast.OutcomeHandler,
	params PipelineParams,
) *Pipeline {
	runner := castcmd.NewRunner(ctx, castcmd.ProcessExecutor{}, castcmd.RunnerParams{
		Path: params.CattPath,
	})

	dispatcher := castdisp.NewDispatcher(runner, handler, castdisp.DispatcherParams{
		Limit: params.DispatchLimit,
	})

	registerHandlers(mux, store, feed, runner, dispatcher)

	core.LogInf.Printf("cast-pipeline: initialized: catt=%s limit=%d\n",
		params.CattPath, params.DispatchLimit)

	return &Pipeline{
		dispatcher: dispatcher,
	}
}

// GetDispatcher returns the component to apply an intent to many devices.
func (p *Pipeline) GetDispatcher() *castdisp.Dispatcher {
	return p.dispatcher
}

func registerHandlers(
	mux *http.ServeMux,
	store devstore.Store,
	feed DiscoveryFeed,
	runner cast.Runner,
	dispatcher Dispatcher,
) {
	deviceHandler := NewDeviceHandler(store)
	mux.HandleFunc("GET /devices", deviceHandler.HandleList)
	mux.HandleFunc("POST /devices", deviceHandler.HandleSave)

	discoveryHandler := NewDiscoveryHandler(feed)
	mux.HandleFunc("GET /discovered", discoveryHandler.HandleList)

	castHandler := NewCastHandler(runner)
	mux.HandleFunc("GET /cast/{host}", castHandler.HandleCast)
	mux.HandleFunc("GET /stop/{host}", castHandler.HandleStop)

	dispatchHandler := NewDispatchHandler(dispatcher)
	mux.HandleFunc("POST /dispatch/cast", dispatchHandler.HandleCast)
	mux.HandleFunc("POST /dispatch/stop", dispatchHandler.HandleStop)
}
