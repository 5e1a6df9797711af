package network

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/wificonnect/internal/logging"
)

const waitDelay = 500 * time.Millisecond

// Result is the captured outcome of one command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes external commands.
type Runner interface {
	// Run executes name with args and waits for it. A non-zero exit is
	// reported as a *CommandError alongside the captured Result.
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	timeout time.Duration
	logger  *zap.Logger
}

// NewExecRunner returns a runner that kills commands after timeout.
// A zero timeout means no limit beyond ctx.
func NewExecRunner(timeout time.Duration, logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{timeout: timeout, logger: logger}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	// Children that inherit the output pipes must not hold Run open past a kill.
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			// Command failed to start
			res.ExitCode = -1
		}

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &TimeoutError{Command: name, Timeout: r.timeout.String()}
		} else {
			err = &CommandError{
				Command:  name,
				Args:     args,
				ExitCode: res.ExitCode,
				Stderr:   res.Stderr,
				Err:      err,
			}
		}
	}

	logging.LogCommand(r.logger, name, args, res.ExitCode, res.Duration, err)
	return res, err
}
