package castcmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

var execCommand = exec.CommandContext

// ProcessExecutor runs the OS process directly, without a shell.
type ProcessExecutor struct{}

// Execute runs the process and captures its stdout and stderr.
func (ProcessExecutor) Execute(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := execCommand(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		cmdline := strings.Join(append([]string{name}, args...), " ")

		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			return res, fmt.Errorf("command failed: %s: %w: %s", cmdline, err, msg)
		}

		return res, fmt.Errorf("command failed: %s: %w", cmdline, err)
	}

	return res, nil
}
