package castcmd

import (
	"context"
)

// Result is the captured output of a finished process.
type Result struct {
	Stdout string
	Stderr string
}

// Executor runs an external process to completion.
type Executor interface {
	// Execute runs the process with the arguments and waits until it exits.
	//
	// Remarks:
	//   - Non-zero exit status and spawn failures are returned as error.
	//   - Output is returned even if the process has failed.
	Execute(ctx context.Context, name string, args ...string) (Result, error)
}
