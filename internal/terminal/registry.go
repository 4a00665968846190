package terminal

import (
	"io"
	"runtime"
)

// Registry holds the providers available to this process, in registration
// order. At most one instance per backend is registered.
type Registry struct {
	providers []Provider
}

// NewRegistry creates a registry with the given providers.
func NewRegistry(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// Register appends a provider. Registration order breaks priority ties.
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	return r.providers
}

// Select returns the best provider for mode: the highest-priority
// registered provider that supports the mode and is available. Ties go to
// the first-registered provider. Returns nil when none qualify.
func (r *Registry) Select(mode Mode) Provider {
	var best Provider
	for _, p := range r.providers {
		if !p.SupportsMode(mode) || !p.IsAvailable() {
			continue
		}
		if best == nil || p.Priority() > best.Priority() {
			best = p
		}
	}
	return best
}

// DefaultRegistry builds the static provider list for the current
// platform. echoOut receives the path printed by the echo provider.
func DefaultRegistry(echoOut io.Writer) *Registry {
	return registryForPlatform(runtime.GOOS, echoOut)
}

// registryForPlatform is the explicit per-platform registration list.
func registryForPlatform(goos string, echoOut io.Writer) *Registry {
	r := NewRegistry()

	switch goos {
	case "darwin":
		r.Register(newTmuxProvider())
		r.Register(newITermProvider())
		r.Register(newAppleTerminalProvider())
	case "windows":
		r.Register(newWindowsTerminalProvider())
	default: // linux and the rest of the unixes
		r.Register(newTmuxProvider())
		r.Register(newGnomeTerminalProvider())
	}

	r.Register(newEditorProvider("vscode", "code", ModeVSCode))
	r.Register(newEditorProvider("cursor", "cursor", ModeCursor))
	r.Register(newEchoProvider(echoOut))
	r.Register(newInplaceProvider())

	return r
}
