// Package checker hands compiled scripts to the external Numscript checker
// and relays its verdict. The checker's output is treated as opaque text.
package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrCheckerUnavailable means the configured checker binary could not be started.
var ErrCheckerUnavailable = errors.New("script checker unavailable")

// ErrCheckFailed is returned by callers that treat a rejected script as a failure.
var ErrCheckFailed = errors.New("script rejected by the checker")

// Report is the checker's verdict on one script.
type Report struct {
	Passed      bool
	Diagnostics []string
	Output      string
}

type Checker struct {
	Command string
	Args    []string
	Timeout time.Duration
}

func New(command string, args []string, timeout time.Duration) *Checker {
	return &Checker{Command: command, Args: args, Timeout: timeout}
}

// Check writes the script to a temporary file and runs
// "<command> <args...> <file>". A non-zero exit status is a failed check,
// not an error.
func (c *Checker) Check(ctx context.Context, script string) (*Report, error) {
	f, err := os.CreateTemp("", "numscribe-*.num")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp script file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(script); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write temp script file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp script file: %w", err)
	}

	return c.CheckFile(ctx, f.Name())
}

// CheckFile runs the checker against a script already on disk.
func (c *Checker) CheckFile(ctx context.Context, path string) (*Report, error) {
	if c.Command == "" {
		return nil, fmt.Errorf("%w: no checker command configured", ErrCheckerUnavailable)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, c.Args...), path)
	cmd := exec.CommandContext(ctx, c.Command, args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("checker %s interrupted: %w", c.Command, ctx.Err())
	}

	report := &Report{
		Output:      out.String(),
		Diagnostics: diagnostics(out.String()),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		report.Passed = true
	case errors.As(err, &exitErr):
		report.Passed = false
	default:
		return nil, fmt.Errorf("%w: %s: %v", ErrCheckerUnavailable, c.Command, err)
	}

	return report, nil
}

func diagnostics(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
