// Package cmd provides helpers for executing external commands with
// context support and proper error reporting.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/wtsdev/wts/internal/log"
)

// RunContext executes a command in dir and returns stderr in the error
// message if it fails. An empty dir runs in the current directory.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return wrapErr(ctx, err, &stderr)
	}
	return nil
}

// OutputContext executes a command in dir and returns stdout, with stderr
// in the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr
	out, err := c.Output()
	if err != nil {
		return nil, wrapErr(ctx, err, &stderr)
	}
	return out, nil
}

// wrapErr converts a command failure into a readable error. Context
// deadline expiry is reported as a distinct timeout error rather than the
// generic "signal: killed" the process receives.
func wrapErr(ctx context.Context, err error, stderr *bytes.Buffer) error {
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return fmt.Errorf("command timed out: %w", ctxErr)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
