package piphttp

import (
	"net/http"
	"os"

	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/http/htcore"
)

// ServerPipelineParams represents various configuration options for the HTTP server.
type ServerPipelineParams struct {
	// Server provides network configuration.
	Server htcore.ServerParams

	// StaticDir is a directory with the web UI files, served on all unmatched paths.
	//
	// Remarks:
	//   - Empty or missing directory disables the web UI.
	StaticDir string
}

// ServerPipeline contains various building blocks for HTTP API.
type ServerPipeline struct {
	server *htcore.Server
	mux    *http.ServeMux
}

// NewServerPipeline initializes all components associated with the HTTP server.
//
// Parameters:
//   - closer - to register handlers for the underlying resource deallocation.
//   - params - various HTTP server configuration parameters.
func NewServerPipeline(
	closer *core.FanoutCloser,
	params ServerPipelineParams,
) (*ServerPipeline, error) {
	mux := http.NewServeMux()

	if params.StaticDir != "" {
		if info, err := os.Stat(params.StaticDir); err != nil || !info.IsDir() {
			core.LogWrn.Printf("http-server-pipeline: web UI disabled: dir=%s err=%v\n",
				params.StaticDir, err)
		} else {
			mux.Handle("GET /", http.FileServer(http.Dir(params.StaticDir)))
		}
	}

	server, err := htcore.NewServer(mux, params.Server)
	if err != nil {
		return nil, err
	}
	closer.Add("http-server", server)

	core.LogInf.Printf("http-server-pipeline: starting HTTP server: URL=%s\n",
		server.URL())

	return &ServerPipeline{
		server: server,
		mux:    mux,
	}, nil
}

// GetServeMux returns the component to register HTTP endpoints.
func (p *ServerPipeline) GetServeMux() *http.ServeMux {
	return p.mux
}

// Start starts serving HTTP requests.
func (p *ServerPipeline) Start() {
	p.server.Start()
}
