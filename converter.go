package cookbook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		// cargo run spawns the converter as a child; kill the whole
		// group so cancellation does not leave grandchildren running.
		killProcessGroup(cmd.Process.Pid)
		return cmd.Process.Kill()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// recipeConverter produces LaTeX output for a single recipe file.
type recipeConverter interface {
	ConvertRecipe(ctx context.Context, path string) (string, error)
}

// cookConverter invokes the CookCLI converter.
type cookConverter struct {
	runner        CommandRunner
	command       string
	cargoFallback bool
	timeout       time.Duration
}

func newCookConverter(cfg generatorConfig) *cookConverter {
	return &cookConverter{
		runner:        &ExecRunner{},
		command:       cfg.command,
		cargoFallback: cfg.cargoFallback,
		timeout:       cfg.timeout,
	}
}

// ConvertRecipe runs the converter and returns its raw LaTeX output.
// A missing binary is detected via exec.ErrNotFound and triggers a
// single cargo run fallback; every other failure is reported as
// ErrConverterFailed with the converter's stderr attached.
func (c *cookConverter) ConvertRecipe(ctx context.Context, path string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	stdout, stderr, err := c.runner.Run(ctx, c.command, "recipe", "-f", "latex", path)
	if err == nil {
		return stdout, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		if !c.cargoFallback {
			return "", fmt.Errorf("%w: %s", ErrConverterNotFound, c.command)
		}
		stdout, stderr, err = c.runner.Run(ctx, "cargo", "run", "--", "recipe", "-f", "latex", path)
		if err == nil {
			return stdout, nil
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: tried %s and cargo", ErrConverterNotFound, c.command)
		}
	}

	return "", conversionError(stderr, err)
}

// conversionError wraps a failed invocation, keeping the converter's
// stderr for diagnosis.
func conversionError(stderr string, err error) error {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return fmt.Errorf("%w: %v", ErrConverterFailed, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrConverterFailed, stderr, err)
}
