package pipdiscover

import (
	"context"
	"fmt"
	"time"

	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/device/devdiscover"
	"github.com/open-control-systems/cast-hub/components/status"
	"github.com/open-control-systems/cast-hub/components/system/sysmdns"
	"github.com/open-control-systems/cast-hub/components/system/syssched"
)

const (
	// BrowserZeroconf browses with the zeroconf library.
	BrowserZeroconf = "zeroconf"

	// BrowserMdns browses with the hashicorp mdns library.
	BrowserMdns = "mdns"

	// BrowserNone disables the discovery.
	BrowserNone = "none"
)

// PipelineParams represents various configuration options for the discovery pipeline.
type PipelineParams struct {
	// Browser is one of BrowserZeroconf, BrowserMdns, BrowserNone.
	Browser string

	// Interval is how often to browse the local network.
	Interval time.Duration

	// Timeout is how long a single browsing lasts.
	Timeout time.Duration
}

// Pipeline continuously discovers Google Cast receivers on the local network.
type Pipeline struct {
	feed   *devdiscover.Feed
	runner *syssched.AsyncTaskRunner
}

type browser interface {
	syssched.Task
	core.ErrorHandler
	core.Closer
}

// NewPipeline initializes all components associated with the device discovery.
//
// Parameters:
//   - ctx - parent context, browsing is stopped when the context is done.
//   - closer - to register all resources that should be closed.
//   - params - various pipeline configuration parameters.
func NewPipeline(
	ctx context.Context,
	closer *core.FanoutCloser,
	params PipelineParams,
) (*Pipeline, error) {
	feed := devdiscover.NewFeed()

	if params.Browser == BrowserNone {
		core.LogInf.Println("discovery-pipeline: discovery is disabled")

		return &Pipeline{feed: feed}, nil
	}

	serviceHandler := &sysmdns.FanoutServiceHandler{}
	serviceHandler.Add(devdiscover.NewServiceHandler(feed))

	browserParams := sysmdns.BrowserParams{
		Service: sysmdns.ServiceName(sysmdns.ServiceTypeGooglecast, sysmdns.ProtoTCP),
		Domain:  "local",
		Timeout: params.Timeout,
	}

	var b browser

	switch params.Browser {
	case BrowserZeroconf:
		zeroconfBrowser, err := sysmdns.NewZeroconfBrowser(ctx, serviceHandler, browserParams)
		if err != nil {
			return nil, err
		}

		b = zeroconfBrowser

	case BrowserMdns:
		b = sysmdns.NewHashicorpBrowser(ctx, serviceHandler, browserParams)

	default:
		return nil, fmt.Errorf("unknown browser: %s: %w", params.Browser, status.StatusInvalidArg)
	}

	closer.Add("discovery-browser", b)

	runner := syssched.NewAsyncTaskRunner(ctx, b, b, params.Interval)
	closer.Add("discovery-task-runner", runner)

	core.LogInf.Printf("discovery-pipeline: initialized: browser=%s service=%s"+
		" interval=%s timeout=%s\n",
		params.Browser, browserParams.Service, params.Interval, params.Timeout)

	return &Pipeline{
		feed:   feed,
		runner: runner,
	}, nil
}

// GetFeed returns the discovered devices.
func (p *Pipeline) GetFeed() *devdiscover.Feed {
	return p.feed
}

// Start begins browsing the local network.
func (p *Pipeline) Start() {
	if p.runner != nil {
		p.runner.Start()
	}
}
