// Package terminal opens worktrees in terminal and editor backends.
//
// Each backend is a Provider with a static priority and a dynamic
// availability probe. The registry holds an explicit per-platform list;
// there is no runtime discovery.
package terminal

import "context"

// Provider priorities. Session multiplexers that can reuse the user's
// foreground session outrank dedicated GUI terminals, which outrank
// older fallback apps, which outrank side-effect-free fallbacks.
const (
	PriorityMultiplexer = 150
	PriorityTerminal    = 100
	PriorityFallbackApp = 50
	PriorityNoop        = 0
)

// Provider drives one terminal or editor backend.
type Provider interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// Priority ranks the provider during selection; higher wins.
	Priority() int

	// SupportsMode reports whether the backend can handle mode.
	SupportsMode(mode Mode) bool

	// IsAvailable probes whether the backend is installed or running.
	IsAvailable() bool

	// Open opens path. initCommand is the already-combined shell snippet
	// to run after changing into path; providers that spawn an
	// interactive shell keep it open after the snippet completes.
	// Failures are returned, never thrown past the provider boundary.
	Open(ctx context.Context, path string, mode Mode, initCommand string) error
}

// shellCommand wraps an init snippet so the spawned shell stays
// interactive after the snippet completes.
func shellCommand(initCommand string) string {
	if initCommand == "" {
		return ""
	}
	return initCommand + "; exec $SHELL"
}
