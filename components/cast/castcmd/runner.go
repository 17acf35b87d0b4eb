package castcmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/open-control-systems/cast-hub/components/cast"
	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/device"
	"github.com/open-control-systems/cast-hub/components/status"
)

// DefaultPath is the casting tool looked up in PATH.
const DefaultPath = "catt"

// RunnerParams provides various configuration options for Runner.
type RunnerParams struct {
	// Path to the casting tool executable.
	Path string
}

// Runner applies intents to devices with the catt command line tool.
//
// References:
//   - https://github.com/skorokithakis/catt
type Runner struct {
	ctx      context.Context
	executor Executor
	path     string
}

// NewRunner is an initialization of Runner.
//
// Parameters:
//   - ctx - parent context, cancels all running processes when done.
//   - executor - to run the casting tool.
//   - params - various runner configuration parameters.
//
// Remarks:
//   - If params.Path is empty, DefaultPath is used.
func NewRunner(ctx context.Context, executor Executor, params RunnerParams) *Runner {
	if params.Path == "" {
		params.Path = DefaultPath
	}

	return &Runner{
		ctx:      ctx,
		executor: executor,
		path:     params.Path,
	}
}

// Run applies the intent to the device.
func (r *Runner) Run(d device.Device, intent cast.Intent) cast.Outcome {
	var outcome cast.Outcome

	switch intent.Kind {
	case cast.IntentCast:
		outcome = r.cast(d, intent.URL)
	case cast.IntentStop:
		outcome = r.stop(d)
	default:
		outcome = cast.NewFailedOutcome(d, fmt.Sprintf("unsupported intent: %v", intent.Kind))
	}

	if outcome.OK {
		core.LogInf.Printf("cast-runner: intent applied: intent=%s device=%s\n",
			intent.Kind, d.Address)
	} else {
		core.LogErr.Printf("cast-runner: intent failed: intent=%s device=%s err=%s\n",
			intent.Kind, d.Address, outcome.Message)
	}

	return outcome
}

func (r *Runner) cast(d device.Device, rawURL string) cast.Outcome {
	siteURL, err := rewriteURL(rawURL)
	if err != nil {
		return cast.NewFailedOutcome(d, err.Error())
	}

	var stdout, stderr strings.Builder

	for _, args := range [][]string{
		{"-d", d.Address, "stop"},
		{"-d", d.Address, "cast_site", siteURL},
	} {
		res, err := r.executor.Execute(r.ctx, r.path, args...)
		if err != nil {
			return cast.NewFailedOutcome(d, err.Error())
		}

		stdout.WriteString(res.Stdout)
		stderr.WriteString(res.Stderr)
	}

	if strings.TrimSpace(stdout.String()) != "" {
		return cast.NewOkOutcome(d)
	}

	return cast.NewFailedOutcome(d, strings.TrimSpace(stderr.String()))
}

func (r *Runner) stop(d device.Device) cast.Outcome {
	res, err := r.executor.Execute(r.ctx, r.path, "-d", d.Address, "stop")
	if err != nil {
		return cast.NewFailedOutcome(d, err.Error())
	}

	if msg := strings.TrimSpace(res.Stderr); msg != "" {
		return cast.NewFailedOutcome(d, msg)
	}

	return cast.NewOkOutcome(d)
}

// rewriteURL decodes the URL and converts a published Google Slides
// presentation into its embeddable form.
func rewriteURL(rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("invalid URL: %w", status.StatusInvalidArg)
	}

	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	if strings.Contains(decoded, "docs.google.com/presentation") {
		decoded = strings.Replace(decoded, "/pub", "/embed", 1)
	}

	return decoded, nil
}
