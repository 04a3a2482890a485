package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"phspbench/internal/telemetry"
)

// Runner defines the interface for executing one trial of the benchmarked
// program and returning its captured standard output.
type Runner interface {
	Run(ctx context.Context) (string, error)
}

// execCommandContext allows mocking os/exec in tests.
var execCommandContext = exec.CommandContext

// ExecRunner implements Runner by invoking an external executable with no
// arguments. Standard output is captured for parsing and simultaneously
// streamed to Echo so the user can watch the run live.
type ExecRunner struct {
	// Path to the executable under test.
	Path string
	// Echo receives the live copy of the process output. May be nil.
	Echo io.Writer
	// Timeout bounds one trial. Zero means no limit.
	Timeout time.Duration
}

func NewExecRunner(path string, echo io.Writer, timeout time.Duration) *ExecRunner {
	return &ExecRunner{Path: path, Echo: echo, Timeout: timeout}
}

func (r *ExecRunner) Run(ctx context.Context) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := execCommandContext(ctx, r.Path)

	var out bytes.Buffer
	if r.Echo != nil {
		cmd.Stdout = io.MultiWriter(r.Echo, &out)
	} else {
		cmd.Stdout = &out
	}
	cmd.Stderr = r.Echo

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return out.String(), fmt.Errorf("trial timed out after %s: %w", r.Timeout, err)
		}
		return out.String(), fmt.Errorf("executable %s failed: %w", r.Path, err)
	}

	return out.String(), nil
}

// Batch invokes the runner once per trial, parsing each trial's output
// into a timing pair. Each trial blocks until the process exits and its
// output is fully captured before the next one starts. The first failing
// trial aborts the batch.
func Batch(ctx context.Context, runner Runner, trials int) (Series, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trial count must be >= 1, got %d", trials)
	}

	series := make(Series, 0, trials)
	for i := 0; i < trials; i++ {
		start := time.Now()
		output, err := runner.Run(ctx)
		if err != nil {
			telemetry.ObserveTrial(time.Since(start), false)
			return nil, fmt.Errorf("trial %d/%d: %w", i+1, trials, err)
		}

		pair, err := ParseTimings(output)
		if err != nil {
			telemetry.ObserveTrial(time.Since(start), false)
			return nil, fmt.Errorf("trial %d/%d: %w", i+1, trials, err)
		}

		telemetry.ObserveTrial(time.Since(start), true)
		slog.Debug("trial complete",
			"trial", i+1,
			"generate_ms", pair.Generate,
			"copy_ms", pair.Copy,
			"wall", time.Since(start))
		series = append(series, pair)
	}

	return series, nil
}
